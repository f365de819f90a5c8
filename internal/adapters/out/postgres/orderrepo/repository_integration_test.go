package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(sequence int) *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := kernel.NewUUID()

	number, err := order.NewNumber(now, sequence)
	suite.Require().NoError(err)

	item, err := order.NewItem(
		kernel.NewUUID(), id,
		"P1", "", "Widget", "SKU-1", "",
		2, kernel.NewMoneyFromInt(600), kernel.ZeroMoney(),
	)
	suite.Require().NoError(err)

	totals, err := order.NewTotals(
		kernel.NewMoneyFromInt(1200), kernel.ZeroMoney(),
		kernel.NewMoneyFromInt(60), kernel.ZeroMoney(),
	)
	suite.Require().NoError(err)

	address, err := order.NewAddress("Jamie Doe", "555-0100", "1 Main St", "", "Springfield", "12345", "US")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		id, number, "user-1", []*order.Item{item}, totals, address,
		[]string{"WELCOME"}, "leave at door", now,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(aggregate))
	suite.Equal(aggregate.Number().String(), loaded.Number().String())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(1, loaded.Version())
	suite.Equal("user-1", loaded.OwnerID())
	suite.Equal([]string{"WELCOME"}, loaded.PromotionCodes())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(2, loaded.Items()[0].Quantity())
	suite.True(loaded.Items()[0].FinalAmount().IsEqual(kernel.NewMoneyFromInt(1200)))
	suite.True(loaded.Totals().TotalAmount().IsEqual(kernel.NewMoneyFromInt(1260)))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber() {
	ctx := context.Background()
	aggregate := suite.newOrder(7)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.GetByNumber(ctx, aggregate.Number())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.TransitionTo(order.Paid, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status())
	suite.Equal(2, loaded.Version())
	suite.NotNil(loaded.PaidAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.Require().NoError(first.TransitionTo(order.Paid, now))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.TransitionTo(order.Cancelled, now))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status(), "the first writer must win")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInDeliveredStatusBefore() {
	ctx := context.Background()
	now := time.Now().UTC()

	stale := suite.newOrder(1)
	suite.advanceToDelivered(stale, now.Add(-10*24*time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	fresh := suite.newOrder(2)
	suite.advanceToDelivered(fresh, now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	pending := suite.newOrder(3)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	cutoff := now.Add(-7 * 24 * time.Hour)
	results, err := suite.repository.GetAllInDeliveredStatusBefore(ctx, cutoff)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.True(results[0].IsEqual(stale))
}

func (suite *OrderRepositoryIntegrationTestSuite) advanceToDelivered(aggregate *order.Order, deliveredAt time.Time) {
	for _, status := range []order.Status{
		order.Paid, order.Confirmed, order.Processing, order.Shipped, order.Delivered,
	} {
		suite.Require().NoError(aggregate.TransitionTo(status, deliveredAt))
	}
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
