package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RUB amounts arrive as strings with at most two decimal places.
const amountRegex = `^\d+(\.\d{1,2})?$`

const AmountTag = "amount"

var valid = map[string]func(fl validator.FieldLevel) bool{
	AmountTag: ValidateAmount,
}

var amountPattern = regexp.MustCompile(amountRegex)

func ValidateAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	if !amountPattern.MatchString(amount) {
		return false
	}
	return amount != "0" && amount != "0.0" && amount != "0.00"
}
