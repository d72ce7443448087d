package queries

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrphanedPurchasesQueryHandler finds purchase headers with no line items.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetOrphanedPurchasesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrphanedPurchasesQueryHandler creates a handler for the orphan report.
// Requires a GORM database connection for query execution.
func NewGetOrphanedPurchasesQueryHandler(db *gorm.DB) GetOrphanedPurchasesQueryHandler {
	return GetOrphanedPurchasesQueryHandler{db: db}
}

// Handle executes the query. Returns the orphaned headers in ascending id order.
func (h GetOrphanedPurchasesQueryHandler) Handle(
	ctx context.Context,
	query GetOrphanedPurchasesQuery,
) ([]GetOrphanedPurchasesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orphans := make([]GetOrphanedPurchasesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.amount,
			p.currency,
			p.status
		FROM purchases p
		LEFT JOIN purchased_products pp ON pp.purchase_id = p.id
		WHERE pp.id IS NULL
		ORDER BY p.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orphan GetOrphanedPurchasesQueryResponse
		var id uuid.UUID
		var amount decimal.Decimal
		var status int

		err = rows.Scan(
			&id,
			&amount,
			&orphan.Currency,
			&status,
		)
		if err != nil {
			return nil, err
		}

		purchaseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orphan.ID = purchaseID
		orphan.Amount = amount
		orphan.Status = purchase.Status(status)
		orphans = append(orphans, orphan)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orphans, nil
}
