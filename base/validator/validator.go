package validator

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress reports whether address is a 0x prefixed 20 byte hex
// address. Checksum casing is not enforced, wallets send both forms.
func IsValidAddress(address string) bool {
	return len(address) == common.AddressLength*2+2 && common.IsHexAddress(address)
}

// NewCustomValidator adapts a go-playground validator to echo's
// Validator interface so `validate` struct tags run on bind targets.
func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v: v}
}

type CustomValidator struct {
	v *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
