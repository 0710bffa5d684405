package domain

// AddOn extra service that can be attached to a reservation.
type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AddOnCatalog fixed list of add-ons, read-only.
var AddOnCatalog = []AddOn{
	{ID: "lifejacket", Name: "Life jacket & Safety equipments", Price: 10},
	{ID: "snorkeling", Name: "Snorkeling in water garden", Price: 10},
	{ID: "boattour", Name: "Boat tour around Pulau Kapas", Price: 25},
	{ID: "lunch", Name: "Lunch Set", Price: 10},
	{ID: "guide", Name: "Tourist Guide", Price: 10},
}

// LookupAddOn finds an add-on by id.
func LookupAddOn(id string) (AddOn, bool) {
	for _, a := range AddOnCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// NormalizeAddOns drops duplicates and ids missing from the catalog while
// keeping the first-seen order. The dropped unknown ids are returned separately.
func NormalizeAddOns(ids []string) (known []string, unknown []string) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := LookupAddOn(id); !ok {
			unknown = append(unknown, id)
			continue
		}
		known = append(known, id)
	}
	return known, unknown
}

// AddOnsTotal sums the catalog prices of ids. Unknown ids contribute 0 and are
// reported back; duplicates are counted once.
func AddOnsTotal(ids []string) (total float64, unknown []string) {
	known, unknown := NormalizeAddOns(ids)
	for _, id := range known {
		a, _ := LookupAddOn(id)
		total += a.Price
	}
	return total, unknown
}
