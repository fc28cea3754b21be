package validate

import (
	"fmt"

	"github.com/ShiraazMoollatjie/goluhn"
)

const cardDigits = 8

func IsLuhn(s string) bool {
	return goluhn.Validate(s) == nil
}

// CardCode turns a sequence value into a card number: the value padded to
// eight digits followed by its Luhn check digit.
func CardCode(seq int64) (string, error) {
	if seq <= 0 {
		return "", fmt.Errorf("card sequence must be positive, got %d", seq)
	}
	_, code, err := goluhn.Calculate(fmt.Sprintf("%0*d", cardDigits, seq))
	if err != nil {
		return "", fmt.Errorf("can't calculate check digit: %w", err)
	}
	return code, nil
}
