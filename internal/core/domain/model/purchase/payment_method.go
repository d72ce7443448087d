package purchase

import (
	"fmt"

	"purchase/internal/pkg/errs"
)

// PaymentMethod represents the means of payment selected for a purchase.
// It is a fixed enumeration; the method can only be changed while the
// purchase is still in the InProgress status.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// CreditCard pays by credit card.
	CreditCard

	// Paypal pays through a PayPal account.
	Paypal
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "UNKNOWN",
		CreditCard:           "CREDIT_CARD",
		Paypal:               "PAYPAL",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		CreditCard: "CREDIT_CARD",
		Paypal:     "PAYPAL",
	}
}

// PaymentMethodFromString parses a wire/storage representation into a PaymentMethod.
// Accepted values are "CREDIT_CARD" and "PAYPAL".
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire name of the payment method ("CREDIT_CARD", "PAYPAL")
// or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
