package catalog

import (
	"fmt"
	"net/mail"
	"strings"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
)

func requireText(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}

func requireID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func requireNonNegative(dst *kernel.Money, name string, amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", amount))
	}
	*dst = amount
	return nil
}

// parseEmail accepts a bare address and stores it lower-cased.
func parseEmail(dst *string, value string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Name != "" {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", value))
	}
	*dst = strings.ToLower(addr.Address)
	return nil
}
