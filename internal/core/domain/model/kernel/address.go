package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

var (
	postalCodePattern = regexp.MustCompile(`^(\d{5})-?(\d{3})$`)
	statePattern      = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// Address is the structured delivery destination of an order.
// The postal code is stored normalized as "NNNNN-NNN" and the state as two
// upper-case letters.
type Address struct { //nolint:recvcheck //using for validation
	street       string
	number       string
	neighborhood string
	city         string
	state        string
	postalCode   string

	guard guard.ConstructorGuard
}

// NewAddress validates every field and returns all failures joined.
//
// Example:
//
//	addr, err := kernel.NewAddress("Av. Paulista", "1578", "Bela Vista", "São Paulo", "SP", "01310200")
//	// addr.PostalCode() == "01310-200"
func NewAddress(street, number, neighborhood, city, state, postalCode string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setRequired(&a.street, "street", street),
		a.setRequired(&a.number, "number", number),
		a.setRequired(&a.neighborhood, "neighborhood", neighborhood),
		a.setRequired(&a.city, "city", city),
		a.setState(state),
		a.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate rejects the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string       { return a.street }
func (a Address) Number() string       { return a.number }
func (a Address) Neighborhood() string { return a.neighborhood }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
func (a Address) PostalCode() string   { return a.postalCode }

// IsEqual compares all fields.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.number == other.number &&
		a.neighborhood == other.neighborhood &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode
}

// String renders a single-line address, e.g. "Av. Paulista, 1578 - Bela Vista, São Paulo/SP 01310-200".
func (a Address) String() string {
	return fmt.Sprintf("%s, %s - %s, %s/%s %s",
		a.street, a.number, a.neighborhood, a.city, a.state, a.postalCode)
}

func (a *Address) setRequired(field *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.TrimSpace(state)
	if !statePattern.MatchString(state) {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a two letter state code", state))
	}
	a.state = strings.ToUpper(state)
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	m := postalCodePattern.FindStringSubmatch(strings.TrimSpace(postalCode))
	if m == nil {
		return errs.NewValueIsInvalidErrorWithCause("postal code", fmt.Errorf("%q is not in NNNNN-NNN format", postalCode))
	}
	a.postalCode = m[1] + "-" + m[2]
	return nil
}
