package commands_test

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"

	"github.com/stretchr/testify/mock"
)

type MockHeaderStore struct{ mock.Mock }

func (m *MockHeaderStore) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockHeaderStore) Update(ctx context.Context, aggregate *purchase.Purchase) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockProductStore struct{ mock.Mock }

func (m *MockProductStore) AddAll(ctx context.Context, products []*purchase.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

// MockAssembler mocks only the Assemble read; Disassemble and StampProducts
// are pure slice operations and run for real so handlers see consistent data.
type MockAssembler struct{ mock.Mock }

func (m *MockAssembler) Assemble(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.Purchase), args.Error(1)
}

func (m *MockAssembler) Disassemble(aggregate *purchase.Purchase) (*purchase.Purchase, []*purchase.Product) {
	return aggregate.WithProducts(nil), aggregate.Products()
}

func (m *MockAssembler) StampProducts(
	headerID kernel.UUID,
	products []*purchase.Product,
) ([]*purchase.Product, error) {
	stamped := make([]*purchase.Product, 0, len(products))
	for _, product := range products {
		s, err := product.WithPurchaseID(headerID)
		if err != nil {
			return nil, err
		}
		stamped = append(stamped, s)
	}
	return stamped, nil
}
