package http

import (
	"purchase/internal/core/domain/model/purchase"

	"github.com/shopspring/decimal"
)

// Error is the wire representation of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatePurchaseRequest is the body of POST /api/v1/purchases.
// Id, amount, and status are read-only and never accepted from callers.
type CreatePurchaseRequest struct {
	Currency          string           `json:"currency"`
	PaymentMethod     string           `json:"paymentMethod"`
	PurchasedProducts []ProductRequest `json:"purchasedProducts"`
}

// ProductRequest describes one line item of a purchase to be created.
type ProductRequest struct {
	Name      string          `json:"name"`
	Reference string          `json:"reference"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/purchases/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ChangePaymentMethodRequest is the body of PATCH /api/v1/purchases/:id/payment-method.
type ChangePaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// PurchaseResponse is the wire representation of a purchase aggregate.
type PurchaseResponse struct {
	ID                string            `json:"id"`
	Amount            decimal.Decimal   `json:"amount"`
	Currency          string            `json:"currency"`
	PaymentMethod     string            `json:"paymentMethod"`
	Status            string            `json:"status"`
	PurchasedProducts []ProductResponse `json:"purchasedProducts"`
}

// ProductResponse is the wire representation of a purchased line item.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Reference  string          `json:"reference"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	PurchaseID string          `json:"purchaseId"`
}

// toPurchaseResponse maps a purchase aggregate to its wire representation.
func toPurchaseResponse(aggregate *purchase.Purchase) PurchaseResponse {
	products := make([]ProductResponse, 0, len(aggregate.Products()))
	for _, product := range aggregate.Products() {
		products = append(products, ProductResponse{
			ID:         product.ID().String(),
			Name:       product.Name(),
			Reference:  product.Reference(),
			Quantity:   product.Quantity(),
			Price:      product.Price(),
			PurchaseID: product.PurchaseID().String(),
		})
	}

	return PurchaseResponse{
		ID:                aggregate.ID().String(),
		Amount:            aggregate.Amount(),
		Currency:          aggregate.Currency(),
		PaymentMethod:     aggregate.Method().String(),
		Status:            aggregate.Status().String(),
		PurchasedProducts: products,
	}
}
