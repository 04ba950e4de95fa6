package jobs

import (
	"context"

	"ordertrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// LowStockMonitorJob runs every five minutes and logs every product whose
// stock is at or below the configured threshold.
type LowStockMonitorJob struct {
	handler   queries.GetLowStockProductsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewLowStockMonitorJob creates a low stock monitoring job.
func NewLowStockMonitorJob(
	handler queries.GetLowStockProductsQueryHandler,
	threshold int,
	logger *zap.Logger,
) *LowStockMonitorJob {
	return &LowStockMonitorJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "low_stock_monitor_job")),
	}
}

// Start schedules the job to run every five minutes.
func (j *LowStockMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("low stock monitor started", zap.Int("threshold", j.threshold))
	return nil
}

// Stop stops the job.
func (j *LowStockMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.Info("low stock monitor stopped")
}

func (j *LowStockMonitorJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetLowStockProductsQuery(j.threshold)
	if err != nil {
		j.logger.Error("failed to build low stock query", zap.Error(err))
		return
	}

	products, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.Error("low stock check failed", zap.Error(err))
		return
	}

	for _, p := range products {
		j.logger.Warn("product running low on stock",
			zap.Int64("product_id", p.ID),
			zap.String("name", p.Name),
			zap.Int("stock", p.Stock),
		)
	}
}
