package commands_test

import (
	"testing"

	"purchase/internal/core/application/usecases/commands"
	"purchase/internal/core/domain/model/purchase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductLine(t *testing.T) {
	t.Run("should create line with valid parameters", func(t *testing.T) {
		line, err := commands.NewProductLine("Cable", "CB-004", 4, decimal.RequireFromString("3.1"))

		require.NoError(t, err)
		assert.Equal(t, "Cable", line.Name())
		assert.Equal(t, "CB-004", line.Reference())
		assert.Equal(t, 4, line.Quantity())
		assert.True(t, line.Price().Equal(decimal.RequireFromString("3.1")))
		require.NoError(t, line.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := commands.NewProductLine("", "CB-004", 1, decimal.NewFromInt(5))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should reject empty reference", func(t *testing.T) {
		_, err := commands.NewProductLine("Cable", "", 1, decimal.NewFromInt(5))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reference")
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := commands.NewProductLine("Cable", "CB-004", 0, decimal.NewFromInt(5))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		_, err := commands.NewProductLine("Cable", "CB-004", 1, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should reject line created without constructor", func(t *testing.T) {
		line := commands.ProductLine{}

		err := line.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProductLineIsNotConstructed)
	})
}

func TestNewCreatePurchaseCommand(t *testing.T) {
	validLine := func(t *testing.T) commands.ProductLine {
		t.Helper()
		line, err := commands.NewProductLine("Cable", "CB-004", 1, decimal.NewFromInt(5))
		require.NoError(t, err)
		return line
	}

	t.Run("should create command with valid parameters", func(t *testing.T) {
		lines := []commands.ProductLine{validLine(t)}

		cmd, err := commands.NewCreatePurchaseCommand("EUR", purchase.CreditCard, lines)

		require.NoError(t, err)
		assert.Equal(t, "EUR", cmd.Currency())
		assert.Equal(t, purchase.CreditCard, cmd.Method())
		assert.Len(t, cmd.Lines(), 1)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should accept empty line list", func(t *testing.T) {
		// The aggregate rejects empty purchases; the command does not pre-empt it.
		cmd, err := commands.NewCreatePurchaseCommand("EUR", purchase.CreditCard, nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Lines())
	})

	t.Run("should reject empty currency", func(t *testing.T) {
		lines := []commands.ProductLine{validLine(t)}

		_, err := commands.NewCreatePurchaseCommand("", purchase.CreditCard, lines)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency")
	})

	t.Run("should reject invalid payment method", func(t *testing.T) {
		lines := []commands.ProductLine{validLine(t)}

		_, err := commands.NewCreatePurchaseCommand("EUR", purchase.PaymentMethodUnknown, lines)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment method is invalid")
	})

	t.Run("should reject unconstructed line", func(t *testing.T) {
		lines := []commands.ProductLine{{}}

		_, err := commands.NewCreatePurchaseCommand("EUR", purchase.CreditCard, lines)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProductLineIsNotConstructed)
	})

	t.Run("should reject command created without constructor", func(t *testing.T) {
		cmd := commands.CreatePurchaseCommand{}

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreatePurchaseCommandIsNotConstructed)
	})
}
