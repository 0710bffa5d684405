package domain

// OtherOptions optional preferences entered on the third wizard step.
type OtherOptions struct {
	AlternativeDate1 Date   `json:"alternativeDate1"`
	AlternativeDate2 Date   `json:"alternativeDate2"`
	Remarks          string `json:"remarks"`
}
