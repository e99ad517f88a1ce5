package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the identity of the caller. Authentication itself is
// handled upstream; this layer only requires the header to be a valid UUID.
const userIDHeader = "X-User-Id"

// Server handles HTTP requests for the order management API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	decideOrderHandler       commands.DecideOrderCommandHandler
	changeOrderJobHandler    commands.ChangeOrderJobCommandHandler

	// Query handlers
	getOrdersPageHandler queries.GetOrdersPageQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getLastOrdersHandler queries.GetLastOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	decideOrderHandler commands.DecideOrderCommandHandler,
	changeOrderJobHandler commands.ChangeOrderJobCommandHandler,
	getOrdersPageHandler queries.GetOrdersPageQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getLastOrdersHandler queries.GetLastOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		decideOrderHandler:       decideOrderHandler,
		changeOrderJobHandler:    changeOrderJobHandler,
		getOrdersPageHandler:     getOrdersPageHandler,
		getOrderHandler:          getOrderHandler,
		getLastOrdersHandler:     getLastOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/last", s.GetLastOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/orders/:id/decision", s.DecideOrder)
	api.PUT("/orders/:id/job", s.ChangeOrderJob)
}

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	JobID string `json:"jobId"`
}

// ChangeOrderStatusRequest is the body of PUT /api/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// DecideOrderRequest is the body of PUT /api/orders/:id/decision.
type DecideOrderRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

// ChangeOrderJobRequest is the body of PUT /api/orders/:id/job.
type ChangeOrderJobRequest struct {
	JobID string `json:"jobId"`
}

// OrderResponse is the aggregate projection returned by the command endpoints.
type OrderResponse struct {
	ID              int64   `json:"id"`
	UserID          string  `json:"userId"`
	JobID           string  `json:"jobId"`
	Status          string  `json:"status"`
	StatusCode      int     `json:"statusCode"`
	StatusLabel     string  `json:"statusLabel"`
	OrderedAt       string  `json:"orderedAt"`
	StatusChangedAt *string `json:"statusChangedAt"`
}

// CreateOrder handles POST /api/orders - places a new order for a job.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, err := s.callerID(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + req.JobID,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(userID, jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// ChangeOrderStatus handles PUT /api/orders/:id/status - moves an order to a
// new lifecycle status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	if _, err := s.callerID(ctx); err != nil {
		return err
	}

	orderID, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req ChangeOrderStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DecideOrder handles PUT /api/orders/:id/decision - closes an in-progress
// order as completed or rejected.
func (s *Server) DecideOrder(ctx echo.Context) error {
	if _, err := s.callerID(ctx); err != nil {
		return err
	}

	orderID, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req DecideOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDecideOrderCommand(orderID, req.IsCompleted)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid decision data: " + err.Error(),
		})
	}

	decided, err := s.decideOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(decided))
}

// ChangeOrderJob handles PUT /api/orders/:id/job - repoints a freshly created
// order at a different job.
func (s *Server) ChangeOrderJob(ctx echo.Context) error {
	if _, err := s.callerID(ctx); err != nil {
		return err
	}

	orderID, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req ChangeOrderJobRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + req.JobID,
		})
	}

	cmd, err := commands.NewChangeOrderJobCommand(orderID, jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + err.Error(),
		})
	}

	updated, err := s.changeOrderJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetOrders handles GET /api/orders - retrieves one page of the caller's
// orders. Supported query parameters: status, search, categoryId,
// masterOrders, pageNumber, pageSize.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := s.callerID(ctx)
	if err != nil {
		return err
	}

	filter := queries.OrdersFilter{}
	if v := ctx.QueryParam("status"); v != "" {
		filter.Status = &v
	}
	if v := ctx.QueryParam("search"); v != "" {
		filter.Search = &v
	}
	if v := ctx.QueryParam("categoryId"); v != "" {
		categoryID, convErr := strconv.Atoi(v)
		if convErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid category ID: " + v,
			})
		}
		filter.CategoryID = &categoryID
	}
	filter.MasterOrders = ctx.QueryParam("masterOrders") == "true"

	pageNumber, err := queryInt(ctx, "pageNumber", 0)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid page number",
		})
	}
	pageSize, err := queryInt(ctx, "pageSize", 10)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid page size",
		})
	}

	query, err := queries.NewGetOrdersPageQuery(userID, filter, pageNumber, pageSize)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid listing parameters: " + err.Error(),
		})
	}

	page, err := s.getOrdersPageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, page)
}

// GetOrder handles GET /api/orders/:id - retrieves one order with its job
// and owning-user details.
func (s *Server) GetOrder(ctx echo.Context) error {
	if _, err := s.callerID(ctx); err != nil {
		return err
	}

	orderID, ok := s.orderID(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, details)
}

// GetLastOrders handles GET /api/orders/last - retrieves the caller's most
// recently placed closed orders.
func (s *Server) GetLastOrders(ctx echo.Context) error {
	userID, err := s.callerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetLastOrdersQuery(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	last, err := s.getLastOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, last)
}

// callerID extracts the caller identity from the X-User-Id header.
// A missing or malformed header short-circuits with a 401 response.
func (s *Server) callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing " + userIDHeader + " header",
		})
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid " + userIDHeader + " header",
		})
	}

	return userID, nil
}

// orderID parses the :id path parameter.
func (s *Server) orderID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// commandError maps application errors onto HTTP status codes:
// unknown objects are 404, rejected input and illegal transitions are 400,
// anything else is 500.
func (s *Server) commandError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrOrderNotEditable):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func queryInt(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func toOrderResponse(o *order.Order) OrderResponse {
	info := o.Status().Info()

	var statusChangedAt *string
	if ts := o.StatusChangedAt(); ts != nil {
		formatted := ts.UTC().Format(time.RFC3339)
		statusChangedAt = &formatted
	}

	return OrderResponse{
		ID:              o.ID(),
		UserID:          o.UserID().String(),
		JobID:           o.JobID().String(),
		Status:          o.Status().String(),
		StatusCode:      info.Code,
		StatusLabel:     info.Label,
		OrderedAt:       o.OrderedAt().UTC().Format(time.RFC3339),
		StatusChangedAt: statusChangedAt,
	}
}
