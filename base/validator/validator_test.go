package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type validatorSuite struct {
	suite.Suite
}

func TestValidator(t *testing.T) {
	suite.Run(t, new(validatorSuite))
}

func (s *validatorSuite) TestIsValidAddress() {
	cases := []struct {
		desc    string
		address string
		valid   bool
	}{
		{"too short", "0x000", false},
		{"missing prefix", "939ae6a4c8dfdbb1f7085189574f0a938013952a", false},
		{"checksum casing", "0x939ae6A4C8dfDBB1f7085189574F0A938013952A", true},
		{"all lower case", "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", true},
		{"not hex", "0xzz9ae6a4c8dfdbb1f7085189574f0a938013952b", false},
	}
	for _, c := range cases {
		s.Equal(c.valid, IsValidAddress(c.address), c.desc)
	}
}

func (s *validatorSuite) TestValidateStruct() {
	type bid struct {
		Amount string `validate:"required"`
	}
	v := NewCustomValidator(validator.New())
	s.NoError(v.Validate(bid{Amount: "1000"}))
	s.Error(v.Validate(bid{}))
}
