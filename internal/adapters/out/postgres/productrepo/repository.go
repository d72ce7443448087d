package productrepo

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM line item repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// AddAll saves a batch of line items to the database.
// Every item must already carry its owning purchase id: an item without a
// back-reference cannot exist in persisted form.
func (r *GormProductRepository) AddAll(ctx context.Context, products []*purchase.Product) error {
	dtos := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
		if err := product.PurchaseID().Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("purchaseId", err)
		}
		dtos = append(dtos, fromDomain(product))
	}

	if len(dtos) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	return nil
}

// GetAllByPurchaseID retrieves all line items belonging to a purchase header,
// in ascending item id order.
func (r *GormProductRepository) GetAllByPurchaseID(
	ctx context.Context,
	purchaseID kernel.UUID,
) ([]*purchase.Product, error) {
	if err := purchaseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "purchase_id = ?", purchaseID.Bytes()).Error; err != nil {
		return nil, err
	}

	products := make([]*purchase.Product, 0, len(dtos))
	for _, dto := range dtos {
		product, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
