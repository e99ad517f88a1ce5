package cmd

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.OrderEventsPublisher
	table      order.TransitionTable
	closing    order.ClosingStatuses
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	brokers := strings.Split(configs.KafkaHost, ",")

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewOrderEventsPublisher(brokers, configs.KafkaOrderEventsTopic, logger),
		table:      order.DefaultTransitionTable(),
		closing:    order.DefaultClosingStatuses(),
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.table, c.closing, c.now)
}

func (c *CompositionRoot) CreateDecideOrderCommandHandler() commands.DecideOrderCommandHandler {
	return commands.NewDecideOrderCommandHandler(c.CreateChangeOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateChangeOrderJobCommandHandler() commands.ChangeOrderJobCommandHandler {
	return commands.NewChangeOrderJobCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateDispatchOutboxCommandHandler() commands.DispatchOutboxCommandHandler {
	return commands.NewDispatchOutboxCommandHandler(c.orderUoWFactory(), c.publisher, c.now)
}

func (c *CompositionRoot) CreateGetOrdersPageQueryHandler() queries.GetOrdersPageQueryHandler {
	return queries.NewGetOrdersPageQueryHandler(c.gormDB, c.table)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLastOrdersQueryHandler() queries.GetLastOrdersQueryHandler {
	return queries.NewGetLastOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
