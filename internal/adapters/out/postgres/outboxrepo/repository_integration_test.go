package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/core/domain/model/outbox"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OutboxRepositoryIntegrationTestSuite provides integration tests for
// OutboxRepository using PostgreSQL containers.
type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.OutboxMessageDTO{}))
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_messages").Error)
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) addMessage(key string, createdAt time.Time) outbox.Message {
	message := outbox.Message{
		Key:       key,
		Payload:   []byte(`{"type":"order_created"}`),
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.repository.Add(context.Background(), &message))
	suite.Require().Positive(message.ID)
	return message
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_AssignsGeneratedID() {
	first := suite.addMessage("1:CREATED", time.Now().UTC())
	second := suite.addMessage("2:CREATED", time.Now().UTC())

	suite.Greater(second.ID, first.ID)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_ReturnsOldestFirstUpToLimit() {
	ctx := context.Background()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	first := suite.addMessage("1:CREATED", base)
	second := suite.addMessage("2:CREATED", base.Add(time.Second))
	suite.addMessage("3:CREATED", base.Add(2*time.Second))

	pending, err := suite.repository.GetUnpublished(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(first.ID, pending[0].ID)
	suite.Equal(second.ID, pending[1].ID)
	suite.False(pending[0].IsPublished())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_ExcludesFromPending() {
	ctx := context.Background()
	message := suite.addMessage("1:COMPLETED", time.Now().UTC())
	publishedAt := time.Date(2026, 8, 28, 12, 0, 1, 0, time.UTC)

	suite.Require().NoError(suite.repository.MarkPublished(ctx, message.ID, publishedAt))

	pending, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)

	var dto outboxrepo.OutboxMessageDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", message.ID).Error)
	suite.Require().NotNil(dto.PublishedAt)
	suite.WithinDuration(publishedAt, *dto.PublishedAt, time.Millisecond)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_UnknownID() {
	err := suite.repository.MarkPublished(context.Background(), 424242, time.Now().UTC())

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
