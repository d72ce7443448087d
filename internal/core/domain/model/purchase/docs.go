// Package purchase provides domain entities and business logic for purchase
// management. It implements the Purchase aggregate root composed of purchased
// product line items, with lifecycle management and payment state transitions.
//
// The package includes:
//   - Purchase: The aggregate root managing identity, derived amount, currency,
//     payment method, and payment status
//   - Product: A purchased line item with a non-owning back-reference to its header
//   - Status: A state machine that enforces the payment status order
//   - PaymentMethod: The fixed enumeration of accepted payment methods
//
// Key business rules:
//   - A purchase must contain at least one line item
//   - The amount is derived once at creation as the sum of line totals
//   - Payment status follows a strict order: IN_PROGRESS -> AUTHORIZED -> CAPTURED
//   - The payment method can only change while the purchase is IN_PROGRESS
//   - Currency, line items, and amount are fixed after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package purchase
