// Package postgres provides the GORM-backed storage adapters for the purchase
// service and the provider that hands out repository instances.
//
// The header and line-item repositories are deliberately not coordinated by a
// transaction: the aggregate is written through two independent operations
// (store header, then store items associated to the header id) with no
// atomicity guarantee. A failure between the two phases leaves a header with
// no items, an observable outcome that the orphan sweep reports rather than a
// state silently masked by an ambient transaction.
package postgres

import (
	"purchase/internal/adapters/out/postgres/productrepo"
	"purchase/internal/adapters/out/postgres/purchaserepo"
	"purchase/internal/core/ports"

	"gorm.io/gorm"
)

// GormRepositories provides repository instances bound to a shared GORM
// database connection. The connection pool underneath is concurrency-safe and
// is invoked per call; no state is held across operation boundaries.
type GormRepositories struct {
	db *gorm.DB
}

// NewGormRepositories creates a repository provider over the given connection.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	repos := NewGormRepositories(db)
//	header, err := repos.PurchaseRepository().Get(ctx, id)
func NewGormRepositories(db *gorm.DB) *GormRepositories {
	return &GormRepositories{db: db}
}

// PurchaseRepository returns the purchase header repository.
func (r *GormRepositories) PurchaseRepository() ports.PurchaseRepository {
	return purchaserepo.NewGormPurchaseRepository(r.db)
}

// ProductRepository returns the line item repository.
func (r *GormRepositories) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(r.db)
}
