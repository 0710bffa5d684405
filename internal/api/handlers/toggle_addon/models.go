package toggle_addon

// ToggleAddOnResponse HTTP response model
type ToggleAddOnResponse struct {
	AddOnID     string   `json:"addOnId"`
	Selected    bool     `json:"selected"`
	AddOns      []string `json:"addOns"`
	TotalAmount float64  `json:"totalAmount"`
}
