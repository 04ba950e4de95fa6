// Package jobs provides scheduled background tasks for the order tracking
// system, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LowStockMonitorJob - periodically reports products at or below the
// configured stock threshold so restocking can happen before orders fail.
//
// 2. OrderDigestJob - once a day summarizes the orders placed during the
// previous 24 hours.
//
// Jobs are managed through JobManager, which starts and stops them as a unit:
//
//	jobManager := jobs.NewJobManager(lowStockJob, digestJob)
//	if err := jobManager.StartAll(); err != nil {
//	    log.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
package jobs
