package domain

// ReservationDetails trip details entered on the second wizard step.
type ReservationDetails struct {
	JettyLocation      JettyLocation `json:"jettyLocation"`
	BookingDate        Date          `json:"bookingDate"`
	NumberOfPassengers int           `json:"numberOfPassengers"`
	PackageType        string        `json:"packageType"` // opaque catalog id
	AddOns             []string      `json:"addOns"`
}

// MissingFields returns the required fields that are empty.
// Zero passengers counts as empty.
func (r ReservationDetails) MissingFields() []Field {
	var missing []Field
	if r.JettyLocation == "" {
		missing = append(missing, FieldJettyLocation)
	}
	if r.BookingDate.IsZero() {
		missing = append(missing, FieldBookingDate)
	}
	if r.NumberOfPassengers <= 0 {
		missing = append(missing, FieldNumberOfPassengers)
	}
	if isBlank(r.PackageType) {
		missing = append(missing, FieldPackageType)
	}
	return missing
}

// HasAddOn reports whether id is selected.
func (r ReservationDetails) HasAddOn(id string) bool {
	for _, a := range r.AddOns {
		if a == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the add-on slice.
func (r ReservationDetails) Clone() ReservationDetails {
	out := r
	if r.AddOns != nil {
		out.AddOns = append([]string(nil), r.AddOns...)
	}
	return out
}

// ReservationTouched tracks which reservation fields the user has visited.
type ReservationTouched struct {
	JettyLocation      bool `json:"jettyLocation"`
	BookingDate        bool `json:"bookingDate"`
	NumberOfPassengers bool `json:"numberOfPassengers"`
	PackageType        bool `json:"packageType"`
}

// Touch marks the field as touched. Unknown fields are ignored.
func (t *ReservationTouched) Touch(f Field) {
	if p := t.flag(f); p != nil {
		*p = true
	}
}

// IsTouched reports whether the field was touched.
func (t *ReservationTouched) IsTouched(f Field) bool {
	if p := t.flag(f); p != nil {
		return *p
	}
	return false
}

func (t *ReservationTouched) flag(f Field) *bool {
	switch f {
	case FieldJettyLocation:
		return &t.JettyLocation
	case FieldBookingDate:
		return &t.BookingDate
	case FieldNumberOfPassengers:
		return &t.NumberOfPassengers
	case FieldPackageType:
		return &t.PackageType
	default:
		return nil
	}
}

// SearchParams hero-search values carried into the reservation step.
type SearchParams struct {
	JettyPoint  string `json:"jettyPoint"`
	BookingDate string `json:"bookingDate"`
	Passengers  int    `json:"passengers"`
}
