package entrydelivery

import (
	"github.com/finvera/ledger-core/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ValidEntryType validates whether the value is a known journal entry type.
var ValidEntryType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return domain.EntryType(t).Valid()
	}
	return false
}
