// Package jobs provides the scheduled background tasks of the seeder.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ReseedJob - Runs on a configurable cron schedule to execute a full
// seeding run, optionally purging the seed ledger first so every cycle
// starts from a clean slate.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reseedJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reseed job uses a standard five-field cron expression, typically a
// nightly schedule like "0 3 * * *". Seeding runs are long (every outbound
// call is paced), so a run still in flight when the next trigger fires is
// skipped rather than overlapped.
//
// # Error Handling
//
// A failed run is logged and the job waits for the next trigger; unit-level
// failures inside a run are part of the run report, not job errors.
package jobs
