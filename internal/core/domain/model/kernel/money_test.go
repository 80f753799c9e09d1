package kernel_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with valid amount and currency", func(t *testing.T) {
		amount := decimal.NewFromFloat(1000.00)

		m, err := kernel.NewMoney(amount, "USD")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.Amount().Equal(amount))
		assert.Equal(t, "USD", m.Currency())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero, "EUR")

		require.NoError(t, err)
		assert.True(t, m.Amount().IsZero())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), "USD")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("should fail with lowercase currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(10), "usd")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "currency")
	})

	t.Run("should fail with wrong length currency", func(t *testing.T) {
		for _, currency := range []string{"", "US", "USDT"} {
			_, err := kernel.NewMoney(decimal.NewFromInt(10), currency)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with non-letter characters", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(10), "U5D")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should be equal by value", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromFloat(99.90), "USD")
		b, _ := kernel.NewMoney(decimal.NewFromFloat(99.90), "USD")

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("should compare amounts numerically regardless of scale", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.RequireFromString("100"), "USD")
		b, _ := kernel.NewMoney(decimal.RequireFromString("100.00"), "USD")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should differ by amount", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(100), "USD")
		b, _ := kernel.NewMoney(decimal.NewFromInt(101), "USD")

		assert.False(t, a.IsEqual(b))
	})

	t.Run("should differ by currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.NewFromInt(100), "USD")
		b, _ := kernel.NewMoney(decimal.NewFromInt(100), "EUR")

		assert.False(t, a.IsEqual(b))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should pass for constructed money", func(t *testing.T) {
		m, _ := kernel.NewMoney(decimal.NewFromInt(1), "USD")

		require.NoError(t, m.Validate())
	})

	t.Run("should fail for zero value", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(decimal.RequireFromString("1000.5"), "USD")

	assert.Equal(t, "1000.5 USD", m.String())
}
