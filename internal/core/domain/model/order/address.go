package order

import "commerce/internal/pkg/errs"

// Address is the shipping address snapshot captured at order creation.
// It is immutable: address-book edits after checkout never affect an
// existing order.
type Address struct {
	recipient  string
	phone      string
	line1      string
	line2      string
	city       string
	postalCode string
	country    string
}

// NewAddress creates a validated shipping address snapshot.
// Recipient, the first address line, and the city are required; the rest is
// carrier-dependent detail.
func NewAddress(recipient, phone, line1, line2, city, postalCode, country string) (Address, error) {
	if recipient == "" {
		return Address{}, errs.NewValueIsRequiredError("recipient")
	}
	if line1 == "" {
		return Address{}, errs.NewValueIsRequiredError("address line1")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		recipient:  recipient,
		phone:      phone,
		line1:      line1,
		line2:      line2,
		city:       city,
		postalCode: postalCode,
		country:    country,
	}, nil
}

// Validate ensures the address was created via NewAddress.
func (a Address) Validate() error {
	if a.recipient == "" {
		return errs.NewValueIsRequiredError("address must be created via NewAddress")
	}
	return nil
}

// Recipient returns the receiving person's name.
func (a Address) Recipient() string { return a.recipient }

// Phone returns the contact phone number.
func (a Address) Phone() string { return a.phone }

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the optional second address line.
func (a Address) Line2() string { return a.line2 }

// City returns the city.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }
