package cmd

import (
	"purchase/internal/adapters/out/postgres"
	"purchase/internal/core/application/assembly"
	"purchase/internal/core/application/usecases/commands"
	"purchase/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	repositories *postgres.GormRepositories
	assembler    *assembly.Assembler
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	repositories := postgres.NewGormRepositories(gormDB)
	assembler := assembly.NewAssembler(
		repositories.PurchaseRepository(),
		repositories.ProductRepository(),
	)
	return CompositionRoot{
		gormDB:       gormDB,
		repositories: repositories,
		assembler:    assembler,
	}
}

func (c *CompositionRoot) CreateCreatePurchaseCommandHandler() commands.CreatePurchaseCommandHandler {
	return commands.NewCreatePurchaseCommandHandler(
		c.repositories.PurchaseRepository(),
		c.repositories.ProductRepository(),
		c.assembler,
	)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(
		c.repositories.PurchaseRepository(),
		c.assembler,
	)
}

func (c *CompositionRoot) CreateChangePaymentMethodCommandHandler() commands.ChangePaymentMethodCommandHandler {
	return commands.NewChangePaymentMethodCommandHandler(
		c.repositories.PurchaseRepository(),
		c.assembler,
	)
}

func (c *CompositionRoot) CreateGetPurchaseQueryHandler() queries.GetPurchaseQueryHandler {
	return queries.NewGetPurchaseQueryHandler(c.assembler)
}

func (c *CompositionRoot) CreateGetAllPurchasesQueryHandler() queries.GetAllPurchasesQueryHandler {
	return queries.NewGetAllPurchasesQueryHandler(c.assembler)
}

func (c *CompositionRoot) CreateGetOrphanedPurchasesQueryHandler() queries.GetOrphanedPurchasesQueryHandler {
	return queries.NewGetOrphanedPurchasesQueryHandler(c.gormDB)
}
