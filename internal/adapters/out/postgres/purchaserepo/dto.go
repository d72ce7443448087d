// Package purchaserepo provides data transfer objects and mapping functions for
// purchase header persistence. This package implements the repository pattern for
// the purchase aggregate's header, handling the conversion between the domain
// entity and its database representation. Line items are persisted separately
// by productrepo and are never written through this package.
package purchaserepo

import (
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseDTO represents the database structure for persisting purchase headers.
type PurchaseDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount        decimal.Decimal `gorm:"type:numeric(19,4)"`
	Currency      string
	PaymentMethod string `gorm:"column:payment_method"`
	Status        int
}

// TableName specifies the database table name for purchase headers.
// Overrides GORM's default naming convention to use "purchases".
func (PurchaseDTO) TableName() string {
	return "purchases"
}

// fromDomain converts a purchase aggregate to its header database representation.
// Line items carried by the aggregate are deliberately not mapped.
func fromDomain(aggregate *purchase.Purchase) PurchaseDTO {
	return PurchaseDTO{
		ID:            aggregate.ID().Bytes(),
		Amount:        aggregate.Amount(),
		Currency:      aggregate.Currency(),
		PaymentMethod: aggregate.Method().String(),
		Status:        int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a header-only purchase aggregate.
// The returned aggregate carries no line items; the assembly layer joins them.
func toDomain(dto PurchaseDTO) (*purchase.Purchase, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	method, err := purchase.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return purchase.RestorePurchase(
		id,
		dto.Amount,
		dto.Currency,
		method,
		purchase.Status(dto.Status),
		nil,
	)
}
