package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/inventoryrepo"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
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

// InventoryRepositoryIntegrationTestSuite verifies ledger persistence
// against a PostgreSQL container.
type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inventoryrepo.GormInventoryRepository
	tracker    *MockAggregateTracker
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&inventoryrepo.TransactionDTO{}))
}

func (suite *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_transactions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = inventoryrepo.NewGormInventoryRepository(suite.db, suite.tracker)
}

func (suite *InventoryRepositoryIntegrationTestSuite) newTransaction(
	txType inventory.TransactionType,
	change, before int,
) *inventory.Transaction {
	ref, err := inventory.NewReference(inventory.ReferenceSystem, "")
	suite.Require().NoError(err)

	tx, err := inventory.NewTransaction(inventory.NewTransactionParams{
		ID:             kernel.NewUUID(),
		ProductID:      "P1",
		VariantID:      "",
		Type:           txType,
		QuantityChange: change,
		BeforeQuantity: before,
		Reference:      ref,
		Note:           "test entry",
	}, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return tx
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAppendAndGetLatest_ChainSurvives() {
	ctx := context.Background()

	initial := suite.newTransaction(inventory.TypeInitial, 10, 0)
	suite.Require().NoError(suite.repository.Append(ctx, initial))

	sale := suite.newTransaction(inventory.TypeSale, -3, 10)
	suite.Require().NoError(suite.repository.Append(ctx, sale))

	latest, err := suite.repository.GetLatest(ctx, "P1", "")
	suite.Require().NoError(err)

	suite.True(latest.IsEqual(sale))
	suite.Equal(inventory.TypeSale, latest.Type())
	suite.Equal(10, latest.BeforeQuantity())
	suite.Equal(7, latest.AfterQuantity())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetLatest_EmptyKey() {
	_, err := suite.repository.GetLatest(context.Background(), "P-missing", "")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetLatest_SeparatesVariants() {
	ctx := context.Background()

	base := suite.newTransaction(inventory.TypeInitial, 10, 0)
	suite.Require().NoError(suite.repository.Append(ctx, base))

	ref, err := inventory.NewReference(inventory.ReferenceSystem, "")
	suite.Require().NoError(err)
	variant, err := inventory.NewTransaction(inventory.NewTransactionParams{
		ID:             kernel.NewUUID(),
		ProductID:      "P1",
		VariantID:      "V2",
		Type:           inventory.TypeInitial,
		QuantityChange: 4,
		BeforeQuantity: 0,
		Reference:      ref,
	}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(ctx, variant))

	latest, err := suite.repository.GetLatest(ctx, "P1", "")
	suite.Require().NoError(err)
	suite.Equal(10, latest.AfterQuantity())

	latestVariant, err := suite.repository.GetLatest(ctx, "P1", "V2")
	suite.Require().NoError(err)
	suite.Equal(4, latestVariant.AfterQuantity())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestLockKey_ReleasedOnCommit() {
	ctx := context.Background()

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	locked := inventoryrepo.NewGormInventoryRepository(tx, suite.tracker)
	suite.Require().NoError(locked.LockKey(ctx, "P1", ""))
	suite.Require().NoError(tx.Commit().Error)

	tx2 := suite.db.Begin()
	suite.Require().NoError(tx2.Error)
	defer tx2.Rollback()
	second := inventoryrepo.NewGormInventoryRepository(tx2, suite.tracker)
	suite.Require().NoError(second.LockKey(ctx, "P1", ""))
}

func (suite *InventoryRepositoryIntegrationTestSuite) appendAt(
	ctx context.Context,
	txType inventory.TransactionType,
	change, before int,
	at time.Time,
) {
	ref, err := inventory.NewReference(inventory.ReferenceSystem, "")
	suite.Require().NoError(err)

	tx, err := inventory.NewTransaction(inventory.NewTransactionParams{
		ID:             kernel.NewUUID(),
		ProductID:      "P1",
		VariantID:      "",
		Type:           txType,
		QuantityChange: change,
		BeforeQuantity: before,
		Reference:      ref,
	}, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(ctx, tx))
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestStatistics_HonorsPeriodBounds() {
	ctx := context.Background()

	day1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	suite.appendAt(ctx, inventory.TypeInitial, 10, 0, day1)
	suite.appendAt(ctx, inventory.TypeSale, -3, 10, day2)
	suite.appendAt(ctx, inventory.TypeSale, -2, 7, day3)
	suite.appendAt(ctx, inventory.TypeReturn, 1, 5, day3)

	handler := queries.NewGetInventoryStatisticsQueryHandler(suite.db)

	all, err := queries.NewGetInventoryStatisticsQuery("P1", "", nil, nil)
	suite.Require().NoError(err)
	resp, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Equal(5, resp.TotalSales)
	suite.Equal(1, resp.TotalReturns)
	suite.Equal(int64(4), resp.TransactionCount)
	suite.Equal(6, resp.CurrentStock)

	from := day2
	to := day2.Add(time.Hour)
	bounded, err := queries.NewGetInventoryStatisticsQuery("P1", "", &from, &to)
	suite.Require().NoError(err)
	resp, err = handler.Handle(ctx, bounded)
	suite.Require().NoError(err)
	suite.Equal(3, resp.TotalSales)
	suite.Equal(0, resp.TotalReturns)
	suite.Equal(int64(1), resp.TransactionCount)
	suite.Require().NotNil(resp.LastTransactionAt)
	suite.WithinDuration(day2, *resp.LastTransactionAt, time.Second)
	suite.Equal(6, resp.CurrentStock, "stock stays the latest ledger level")
}

func TestInventoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}
