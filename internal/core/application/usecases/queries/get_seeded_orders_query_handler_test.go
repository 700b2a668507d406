package queries_test

import (
	"context"
	"testing"
	"time"

	"seeder/internal/adapters/out/postgres/orderrecordrepo"
	"seeder/internal/core/application/usecases/queries"
	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetSeededOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetSeededOrdersQueryHandler
	repo      *orderrecordrepo.GormOrderRecordRepository
}

func (suite *GetSeededOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetSeededOrdersQueryHandler(db)
	suite.repo = orderrecordrepo.NewGormOrderRecordRepository(db, &mockAggregateTracker{})
}

func (suite *GetSeededOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetSeededOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE seeded_orders").Error)
}

func (suite *GetSeededOrdersQueryHandlerTestSuite) addOrder(totalSteps int) *order.Order {
	rate, err := kernel.NewMoney(2500)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), rate, kernel.Wallet, totalSteps)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), o))
	return o
}

func (suite *GetSeededOrdersQueryHandlerTestSuite) TestHandle_EmptyLedger() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetSeededOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetSeededOrdersQueryHandlerTestSuite) TestHandle_ReturnsRecordedOrders() {
	active := suite.addOrder(4)
	settled := suite.addOrder(1)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetSeededOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[string]queries.GetSeededOrdersQueryResponse, len(result))
	for _, record := range result {
		byID[record.ID.String()] = record
	}

	activeRecord := byID[active.ID().String()]
	suite.Equal("Active", activeRecord.Status)
	suite.Equal(1, activeRecord.PaidSteps)
	suite.Equal(4, activeRecord.TotalSteps)
	// three unpaid steps at 25.00
	suite.Equal(int64(7500), activeRecord.RemainingAmount)

	settledRecord := byID[settled.ID().String()]
	suite.Equal("Settled", settledRecord.Status)
	suite.Zero(settledRecord.RemainingAmount)
}

func (suite *GetSeededOrdersQueryHandlerTestSuite) TestHandle_UnconstructedQueryRejected() {
	var query queries.GetSeededOrdersQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetSeededOrdersQueryIsNotConstructed)
}

func TestGetSeededOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSeededOrdersQueryHandlerTestSuite))
}
