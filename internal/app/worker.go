package app

import (
	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/guttosm/quote-optimizer/internal/worker"
)

// InitializeWorkerPool starts the background optimization pool. Successful
// jobs are recorded in runs.
func InitializeWorkerPool(cfg config.WorkerConfig, runner worker.Runner, runs service.RunService) *worker.Pool {
	poolCfg := worker.Config{
		PoolSize:         cfg.PoolSize,
		QueueSize:        cfg.QueueSize,
		ProgressInterval: cfg.ProgressInterval,
		JobRetention:     cfg.JobRetention,
	}
	return worker.NewPool(runner, poolCfg, worker.WithCompletionHook(recordJob(runs)))
}

// recordJob returns a completion hook storing each succeeded job as a run.
func recordJob(runs service.RunService) worker.CompletionFunc {
	return func(job *worker.Job) {
		if runs == nil {
			return
		}
		snap := job.Snapshot()
		if snap.Status != worker.StatusSucceeded || snap.Result == nil {
			return
		}
		runs.RecordAsync(service.NewRun(model.SourceJob, job.RequestID, job.Input(), *snap.Result, job.Duration()))
	}
}
