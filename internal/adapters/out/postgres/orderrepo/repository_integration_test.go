package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, including line set round trips.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsIDAndTracks() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Positive(testOrder.ID())
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	ctx := context.Background()

	var invalid order.Order
	err := suite.repository.Add(ctx, &invalid)

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsLines() {
	ctx := context.Background()

	original := suite.addTestOrder(ctx)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.Status(), retrieved.Status())
	suite.True(original.TotalAmount().Equal(retrieved.TotalAmount()))

	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal(int64(7), retrieved.Lines()[0].ProductID())
	suite.Equal(2, retrieved.Lines()[0].Quantity())
	suite.True(retrieved.Lines()[0].UnitPrice().Equal(decimal.RequireFromString("9.99")))
	suite.Equal(int64(8), retrieved.Lines()[1].ProductID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 12345)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLineSetAndStatus() {
	ctx := context.Background()

	original := suite.addTestOrder(ctx)

	newLine, err := order.RestoreLine(0, 9, 4, decimal.RequireFromString("2.50"))
	suite.Require().NoError(err)

	updated, err := order.RestoreOrder(
		original.ID(), original.CustomerID(), original.Date(),
		order.Confirmed, decimal.RequireFromString("10.00"), []order.Line{newLine},
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", updated.ID(), updated).Once()
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Confirmed, retrieved.Status())
	suite.True(retrieved.TotalAmount().Equal(decimal.RequireFromString("10.00")))
	suite.Require().Len(retrieved.Lines(), 1)
	suite.Equal(int64(9), retrieved.Lines()[0].ProductID())
	suite.Equal(4, retrieved.Lines()[0].Quantity())

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(1), lineCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	line, err := order.RestoreLine(0, 7, 2, decimal.RequireFromString("9.99"))
	suite.Require().NoError(err)

	phantom, err := order.RestoreOrder(777, 42, time.Now(), order.Pending, decimal.Zero, []order.Line{line})
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, phantom)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLines() {
	ctx := context.Background()

	original := suite.addTestOrder(ctx)

	suite.Require().NoError(suite.repository.Delete(ctx, original.ID()))

	suite.assertOrderCount(0)
	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(0), lineCount)

	err := suite.repository.Delete(ctx, original.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()

	original := suite.addTestOrder(ctx)

	exists, err := suite.repository.Exists(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, 12345)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByDateRange_FiltersByPlacementDate() {
	ctx := context.Background()

	old := suite.addTestOrderWithDate(ctx, time.Now().AddDate(0, 0, -10))
	recent := suite.addTestOrderWithDate(ctx, time.Now().AddDate(0, 0, -1))

	orders, err := suite.repository.GetAllByDateRange(ctx, time.Now().AddDate(0, 0, -3), time.Now())
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(recent.ID(), orders[0].ID())
	suite.NotEqual(old.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsOrdersWithLines() {
	ctx := context.Background()

	suite.addTestOrder(ctx)
	suite.addTestOrder(ctx)

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	suite.Len(orders[0].Lines(), 2)
	suite.Less(orders[0].ID(), orders[1].ID())
}

// createTestOrder builds a priced two-line order not yet persisted.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	line1, err := order.RestoreLine(0, 7, 2, decimal.RequireFromString("9.99"))
	suite.Require().NoError(err)
	line2, err := order.RestoreLine(0, 8, 1, decimal.RequireFromString("5.00"))
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		0, 42, time.Now(), order.Pending,
		decimal.RequireFromString("24.98"), []order.Line{line1, line2},
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrder(ctx context.Context) *order.Order {
	return suite.addTestOrderWithDate(ctx, time.Now())
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrderWithDate(
	ctx context.Context, date time.Time,
) *order.Order {
	testOrder := suite.createTestOrder()
	testOrder.ChangeDate(date)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
