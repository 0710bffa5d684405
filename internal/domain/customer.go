package domain

import "strings"

// CustomerInfo contact details entered on the first wizard step.
type CustomerInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

// MissingFields returns the required fields that are empty, in form order.
func (c CustomerInfo) MissingFields() []Field {
	values := map[Field]string{
		FieldFirstName:    c.FirstName,
		FieldLastName:     c.LastName,
		FieldPhoneNumber:  c.PhoneNumber,
		FieldEmail:        c.Email,
		FieldAddressLine1: c.AddressLine1,
		FieldPostalCode:   c.PostalCode,
		FieldCity:         c.City,
		FieldCountry:      c.Country,
	}

	var missing []Field
	for _, f := range CustomerInfoRequiredFields {
		if isBlank(values[f]) {
			missing = append(missing, f)
		}
	}
	return missing
}

// FullName returns "First Last".
func (c CustomerInfo) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CustomerInfoTouched tracks which customer fields the user has visited.
type CustomerInfoTouched struct {
	FirstName    bool `json:"firstName"`
	LastName     bool `json:"lastName"`
	PhoneNumber  bool `json:"phoneNumber"`
	Email        bool `json:"email"`
	AddressLine1 bool `json:"addressLine1"`
	PostalCode   bool `json:"postalCode"`
	City         bool `json:"city"`
	Country      bool `json:"country"`
}

// Touch marks the field as touched. Unknown fields are ignored.
func (t *CustomerInfoTouched) Touch(f Field) {
	if p := t.flag(f); p != nil {
		*p = true
	}
}

// IsTouched reports whether the field was touched.
func (t *CustomerInfoTouched) IsTouched(f Field) bool {
	if p := t.flag(f); p != nil {
		return *p
	}
	return false
}

func (t *CustomerInfoTouched) flag(f Field) *bool {
	switch f {
	case FieldFirstName:
		return &t.FirstName
	case FieldLastName:
		return &t.LastName
	case FieldPhoneNumber:
		return &t.PhoneNumber
	case FieldEmail:
		return &t.Email
	case FieldAddressLine1:
		return &t.AddressLine1
	case FieldPostalCode:
		return &t.PostalCode
	case FieldCity:
		return &t.City
	case FieldCountry:
		return &t.Country
	default:
		return nil
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
