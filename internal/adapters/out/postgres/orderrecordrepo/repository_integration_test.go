package orderrecordrepo_test

import (
	"context"
	"testing"
	"time"

	"seeder/internal/adapters/out/postgres/orderrecordrepo"
	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRecordRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrecordrepo.GormOrderRecordRepository
}

func (suite *OrderRecordRepositoryTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrecordrepo.OrderRecordDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrecordrepo.NewGormOrderRecordRepository(db, &mockAggregateTracker{})
}

func (suite *OrderRecordRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRecordRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE seeded_orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRecordRepositoryTestSuite) newOrder(totalSteps int) *order.Order {
	rate, err := kernel.NewMoney(2500)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), rate, kernel.Card, totalSteps)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRecordRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	original := suite.newOrder(12)

	err := suite.repo.Add(ctx, original)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(original.ID()))
	suite.Equal(order.Active, restored.Status())
	suite.Equal(int64(2500), restored.RatePerStep().Amount())
	suite.Equal(kernel.Card, restored.PaymentMethod())
	suite.Equal(1, restored.PaidSteps())
	suite.Equal(12, restored.TotalSteps())
}

func (suite *OrderRecordRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRecordRepositoryTestSuite) TestAdd_UnconstructedOrderRejected() {
	var o order.Order

	err := suite.repo.Add(context.Background(), &o)

	suite.Require().Error(err)
	suite.Equal(order.ErrOrderIsNotConstructed, err)
}

func (suite *OrderRecordRepositoryTestSuite) TestUpdate_PersistsProgression() {
	ctx := context.Background()
	o := suite.newOrder(3)

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	_, err = o.RecordPayment()
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(2, restored.PaidSteps())
	suite.Equal(order.Active, restored.Status())
}

func (suite *OrderRecordRepositoryTestSuite) TestUpdate_NotFound() {
	err := suite.repo.Update(context.Background(), suite.newOrder(2))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRecordRepositoryTestSuite) TestGetAllActive_FiltersSettled() {
	ctx := context.Background()

	active := suite.newOrder(12)
	settled := suite.newOrder(1) // single step order is born settled

	suite.Require().NoError(suite.repo.Add(ctx, active))
	suite.Require().NoError(suite.repo.Add(ctx, settled))

	orders, err := suite.repo.GetAllActive(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(active.ID()))
}

func (suite *OrderRecordRepositoryTestSuite) TestPurgeAll() {
	ctx := context.Background()

	for range 3 {
		suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder(6)))
	}

	purged, err := suite.repo.PurgeAll(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(3), purged)

	orders, err := suite.repo.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRecordRepositoryTestSuite) TestPurgeAll_EmptyLedger() {
	purged, err := suite.repo.PurgeAll(context.Background())

	suite.Require().NoError(err)
	suite.Zero(purged)
}

func TestOrderRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRecordRepositoryTestSuite))
}
