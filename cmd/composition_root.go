package cmd

import (
	"strconv"
	"time"

	"seeder/internal/adapters/out/backendhttp"
	"seeder/internal/adapters/out/postgres"
	"seeder/internal/core/application/usecases/commands"
	"seeder/internal/core/application/usecases/queries"
	"seeder/internal/core/domain/services"
	"seeder/internal/pkg/pacing"
	"seeder/internal/pkg/stats"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	callStats  *stats.CallStats
	backend    *backendhttp.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	callStats := stats.NewCallStats()

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		callStats:  callStats,
		backend: backendhttp.NewClient(
			configs.BackendURL,
			configs.BackendToken,
			backendhttp.WithCallStats(callStats),
		),
	}
}

// CallStats exposes the latency collector shared by every backend call, so
// main can print percentiles next to the run report.
func (c *CompositionRoot) CallStats() *stats.CallStats {
	return c.callStats
}

func (c *CompositionRoot) CreateSubmitBatchCommandHandler() commands.SubmitBatchCommandHandler {
	return commands.NewSubmitBatchCommandHandler(c.backend, c.createSubmitPacer())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.backend, c.createProgressionPacer())
}

func (c *CompositionRoot) CreateRunSeedingCommandHandler() commands.RunSeedingCommandHandler {
	return commands.NewRunSeedingCommandHandler(
		c.CreateSubmitBatchCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		services.NewDefaultProgressionBander(),
		c.createOrderRecordUoWFactory(),
	)
}

func (c *CompositionRoot) CreatePurgeSeedDataCommandHandler() commands.PurgeSeedDataCommandHandler {
	return commands.NewPurgeSeedDataCommandHandler(c.createOrderRecordUoWFactory())
}

func (c *CompositionRoot) CreateGetSeededOrdersQueryHandler() queries.GetSeededOrdersQueryHandler {
	return queries.NewGetSeededOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createOrderRecordUoWFactory() commands.OrderRecordUoWFactory {
	return FuncOrderRecordUoWFactory(func() commands.OrderRecordUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createSubmitPacer() *pacing.RandomDelayPacer {
	minDelay := durationMsOrDefault(c.configs.SubmitMinDelayMs, pacing.DefaultMinDelay)
	maxDelay := durationMsOrDefault(c.configs.SubmitMaxDelayMs, pacing.DefaultMaxDelay)

	pacer, err := pacing.NewRandomDelayPacer(minDelay, maxDelay)
	if err != nil {
		pacer, _ = pacing.NewRandomDelayPacer(pacing.DefaultMinDelay, pacing.DefaultMaxDelay)
	}
	return pacer
}

func (c *CompositionRoot) createProgressionPacer() *pacing.RandomDelayPacer {
	delay := durationMsOrDefault(c.configs.ProgressionDelayMs, pacing.DefaultProgressionDelay)

	pacer, err := pacing.NewFixedDelayPacer(delay)
	if err != nil {
		pacer, _ = pacing.NewFixedDelayPacer(pacing.DefaultProgressionDelay)
	}
	return pacer
}

func durationMsOrDefault(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

type FuncOrderRecordUoWFactory func() commands.OrderRecordUoW

func (f FuncOrderRecordUoWFactory) Create() commands.OrderRecordUoW {
	return f()
}
