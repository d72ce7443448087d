package jobs

import (
	"context"
	"log/slog"

	"purchase/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrphanSweepJob periodically reports purchase headers that have no line items.
// Such headers are the observable outcome of the non-atomic two-phase create:
// the header write succeeded and the item write did not. The sweep surfaces
// them so an operator or an outer layer can reconcile; it never deletes or
// repairs on its own.
type OrphanSweepJob struct {
	handler queries.GetOrphanedPurchasesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrphanSweepJob creates a job reporting orphaned purchase headers.
func NewOrphanSweepJob(handler queries.GetOrphanedPurchasesQueryHandler, logger *slog.Logger) *OrphanSweepJob {
	return &OrphanSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "orphan_sweep_job"),
	}
}

// Start begins the orphan sweep to run every minute.
func (j *OrphanSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrphanedPurchasesQuery()

		orphans, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Orphan sweep failed", "error", err)
			return
		}

		for _, orphan := range orphans {
			j.logger.WarnContext(ctx, "Purchase header has no line items",
				"purchase_id", orphan.ID.String(),
				"amount", orphan.Amount.String(),
				"currency", orphan.Currency,
				"status", orphan.Status.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan sweep job started (running every minute)")
	return nil
}

// Stop stops the orphan sweep job.
func (j *OrphanSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orphan sweep job stopped")
}
