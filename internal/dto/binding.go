package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// RegisterValidations installs the ledger enum validations on gin's binding
// engine. Must be called once before any request is bound.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.ValidAccountType(domain.AccountType(fl.Field().String()))
	}); err != nil {
		return err
	}
	return v.RegisterValidation("transactiontype", func(fl validator.FieldLevel) bool {
		return domain.ValidTransactionType(domain.TransactionType(fl.Field().String()))
	})
}
