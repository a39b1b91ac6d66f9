package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs the per-status order rollup. It is
// observational only: it holds no locks and mutates nothing, so operators
// can watch the lifecycle distribution drift in the service log.
type OrderStatsJob struct {
	handler queries.GetOrderStatsQueryHandler
	actor   user.Snapshot
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a job that reports order statistics every minute.
// The rollup query is reserved to staff, so the job runs under a synthetic
// technician identity.
func NewOrderStatsJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) (*OrderStatsJob, error) {
	actor, err := user.NewSnapshot(
		kernel.NewUUID(),
		"Order",
		"Stats",
		"order-stats-job@ordering.internal",
		"",
		user.Technician,
	)
	if err != nil {
		return nil, err
	}

	return &OrderStatsJob{
		handler: handler,
		actor:   actor,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_stats_job"),
	}, nil
}

// Start begins the stats job, reporting at the top of every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOrderStatsQuery(j.actor)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed to build query", "error", err)
			return
		}

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		for _, row := range stats {
			j.logger.InfoContext(ctx, "Order stats",
				"status", row.Status.String(),
				"count", row.Count,
				"totalPrice", row.TotalPrice,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (reporting every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
