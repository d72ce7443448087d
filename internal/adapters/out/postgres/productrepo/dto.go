// Package productrepo provides data transfer objects and mapping functions for
// purchased line item persistence. Items live in their own table and reference
// their owning purchase header through the purchase_id column; the reference is
// an association key only, not an ownership relation at the storage layer.
package productrepo

import (
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting purchased line items.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Reference  string
	Quantity   int
	Price      decimal.Decimal `gorm:"type:numeric(19,4)"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for line items.
// Overrides GORM's default naming convention to use "purchased_products".
func (ProductDTO) TableName() string {
	return "purchased_products"
}

// fromDomain converts a line item to its database representation.
func fromDomain(product *purchase.Product) ProductDTO {
	return ProductDTO{
		ID:         product.ID().Bytes(),
		Name:       product.Name(),
		Reference:  product.Reference(),
		Quantity:   product.Quantity(),
		Price:      product.Price(),
		PurchaseID: product.PurchaseID().Bytes(),
	}
}

// toDomain converts a database DTO to a line item using RestoreProduct.
func toDomain(dto ProductDTO) (*purchase.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	purchaseID, err := kernel.UUIDFromBytes(dto.PurchaseID[:])
	if err != nil {
		return nil, err
	}

	return purchase.RestoreProduct(
		id,
		dto.Name,
		dto.Reference,
		dto.Quantity,
		dto.Price,
		purchaseID,
	)
}
