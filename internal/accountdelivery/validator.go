package accountdelivery

import (
	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/currencypkg"
	"github.com/go-playground/validator/v10"
)

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return currencypkg.IsSupportedCurrency(c)
	}
	return false
}

// ValidAccountType validates whether the value is a known account type.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return domain.AccountType(t).Valid()
	}
	return false
}
