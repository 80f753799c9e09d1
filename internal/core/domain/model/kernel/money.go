package kernel

import (
	"fmt"

	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// the NewMoney constructor. It is returned when validating a zero value.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object holding a non-negative amount and a 3-letter
// uppercase ISO currency code.
//
// Money follows these invariants:
//   - The amount is never negative
//   - The currency is exactly three uppercase ASCII letters
//   - Instances are immutable once constructed and compared by value
type Money struct {
	amount   decimal.Decimal
	currency string

	guard ConstructorGuard
}

// NewMoney creates a Money value after validating the amount and currency.
// A negative amount or a malformed currency code yields a ValueIsInvalidError.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	if !isValidCurrency(currency) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a 3-letter uppercase code", currency))
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    NewConstructorGuard(),
	}, nil
}

func isValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for i := 0; i < len(currency); i++ {
		if currency[i] < 'A' || currency[i] > 'Z' {
			return false
		}
	}
	return true
}

// Amount returns the monetary amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter uppercase currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount) && m.currency == other.currency
}

// String formats the value as "<amount> <currency>", e.g. "1000.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
