package jobs

import (
	"context"
	"log/slog"
	"sync"

	"seeder/internal/core/application/usecases/commands"
	"seeder/internal/core/domain/model/fixture"

	"github.com/robfig/cron/v3"
)

// ReseedJob executes a full seeding run on a cron schedule. When purge-first
// is enabled, each cycle wipes the seed ledger before submitting, so the
// backend only ever holds one generation of seeded data that this process
// can account for.
type ReseedJob struct {
	runHandler   commands.RunSeedingCommandHandler
	purgeHandler commands.PurgeSeedDataCommandHandler
	pool         []fixture.Address
	plans        []fixture.Plan
	schedule     string
	purgeFirst   bool
	cron         *cron.Cron
	logger       *slog.Logger

	// a run paced at hundreds of calls can outlast the cron interval;
	// overlapping runs would double-submit, so late triggers are skipped
	running sync.Mutex
}

// NewReseedJob creates a reseed job from an already wired pipeline handler.
// The schedule is a standard five-field cron expression.
func NewReseedJob(
	runHandler commands.RunSeedingCommandHandler,
	purgeHandler commands.PurgeSeedDataCommandHandler,
	pool []fixture.Address,
	plans []fixture.Plan,
	schedule string,
	purgeFirst bool,
	logger *slog.Logger,
) *ReseedJob {
	return &ReseedJob{
		runHandler:   runHandler,
		purgeHandler: purgeHandler,
		pool:         pool,
		plans:        plans,
		schedule:     schedule,
		purgeFirst:   purgeFirst,
		cron:         cron.New(),
		logger:       logger.With("component", "reseed_job"),
	}
}

// Start schedules the job. Returns an error for an invalid cron expression.
func (j *ReseedJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reseed job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job. A run already in flight finishes on its own.
func (j *ReseedJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reseed job stopped")
}

func (j *ReseedJob) runOnce() {
	if !j.running.TryLock() {
		j.logger.Info("Previous seeding run still in flight, skipping this trigger")
		return
	}
	defer j.running.Unlock()

	ctx := context.Background()

	if j.purgeFirst {
		removed, err := j.purgeHandler.Handle(ctx, commands.NewPurgeSeedDataCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Ledger purge failed, skipping this cycle", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Seed ledger purged", "removed", removed)
	}

	cmd, err := commands.NewRunSeedingCommand(j.pool, j.plans)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build seeding command", "error", err)
		return
	}

	report, err := j.runHandler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Seeding run failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Seeding run finished",
		"attempted", report.Attempted,
		"created", report.Created,
		"failed", report.Failed,
		"steps_paid", report.StepsPaid,
		"halted_by_step_limit", report.HaltedByStepLimit,
	)
}
