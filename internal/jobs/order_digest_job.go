package jobs

import (
	"context"
	"time"

	"ordertrack/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderDigestJob runs daily at midnight and logs a summary of the orders
// placed during the previous 24 hours.
type OrderDigestJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *zap.Logger
}

// NewOrderDigestJob creates a daily order digest job.
func NewOrderDigestJob(uowFactory ports.UnitOfWorkFactory, logger *zap.Logger) *OrderDigestJob {
	return &OrderDigestJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With(zap.String("component", "order_digest_job")),
	}
}

// Start schedules the job to run daily at midnight.
func (j *OrderDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order digest job started")
	return nil
}

// Stop stops the job.
func (j *OrderDigestJob) Stop() {
	j.cron.Stop()
	j.logger.Info("order digest job stopped")
}

func (j *OrderDigestJob) run() {
	ctx := context.Background()
	end := time.Now()
	start := end.Add(-24 * time.Hour)

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.Error("failed to begin digest read", zap.Error(err))
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllByDateRange(ctx, start, end)
	if err != nil {
		j.logger.Error("order digest failed", zap.Error(err))
		return
	}

	total := decimal.Zero
	cancelled := 0
	for _, o := range orders {
		if o.IsCancelled() {
			cancelled++
			continue
		}
		total = total.Add(o.TotalAmount())
	}

	j.logger.Info("daily order digest",
		zap.Time("from", start),
		zap.Time("to", end),
		zap.Int("orders", len(orders)),
		zap.Int("cancelled", cancelled),
		zap.String("total_amount", total.String()),
	)
}
