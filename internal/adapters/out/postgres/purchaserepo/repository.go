package purchaserepo

import (
	"context"
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM.
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GORM purchase header repository.
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// Add saves a new purchase header to the database.
func (r *GormPurchaseRepository) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update saves an existing purchase header to the database.
func (r *GormPurchaseRepository) Update(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PurchaseDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a purchase header by ID.
func (r *GormPurchaseRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every purchase header in ascending id order.
func (r *GormPurchaseRepository) GetAll(ctx context.Context) ([]*purchase.Purchase, error) {
	var dtos []PurchaseDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	purchases := make([]*purchase.Purchase, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, nil
}
