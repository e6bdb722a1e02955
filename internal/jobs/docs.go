// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// AbandonedOrdersJob cancels orders that were created but never confirmed
// within a configurable time to live. It runs on a six-field cron schedule
// (seconds first), by default once a minute.
//
// # Usage
//
//	job, err := jobs.NewAbandonedOrdersJob(handler, jobs.AbandonedOrdersConfig{
//		Schedule: "0 * * * * *",
//		TTL:      2 * time.Hour,
//	}, logger)
//	manager := jobs.NewJobManager(logger, job)
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick; it never stops the
// scheduler or the process.
package jobs
