package inquiry_view

import (
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

// CatalogView блок выбора пакета на шаге reservation-details
type CatalogView struct {
	Status   catalog.Status         `json:"status"`
	Message  string                 `json:"message,omitempty"`
	Packages []domain.PackageOption `json:"packages"`
}

// InfoView шаг customer-info
type InfoView struct {
	ActiveStep   domain.Step                `json:"activeStep"`
	CustomerInfo domain.CustomerInfo        `json:"customerInfo"`
	Touched      domain.CustomerInfoTouched `json:"touched"`
	FieldErrors  []domain.Field             `json:"fieldErrors"`
}

// ReservationView шаг reservation-details
type ReservationView struct {
	ActiveStep         domain.Step               `json:"activeStep"`
	ReservationDetails domain.ReservationDetails `json:"reservationDetails"`
	Touched            domain.ReservationTouched `json:"touched"`
	FieldErrors        []domain.Field            `json:"fieldErrors"`
	Catalog            CatalogView               `json:"catalog"`
	SelectedPackage    *domain.PackageOption     `json:"selectedPackage,omitempty"`
	AddOnCatalog       []domain.AddOn            `json:"addOnCatalog"`
	JettyLocations     []domain.JettyLocation    `json:"jettyLocations"`
	MinDate            domain.Date               `json:"minDate"`
	MaxDate            domain.Date               `json:"maxDate"`
	TotalAmount        float64                   `json:"totalAmount"`
}

// OptionsView шаг other-options
type OptionsView struct {
	ActiveStep      domain.Step         `json:"activeStep"`
	OtherOptions    domain.OtherOptions `json:"otherOptions"`
	TotalAmount     float64             `json:"totalAmount"`
	Submitting      bool                `json:"submitting"`
	SubmissionError string              `json:"submissionError,omitempty"`
}

// SummaryView шаг подтверждения
type SummaryView struct {
	Confirmation *domain.BookingConfirmation `json:"confirmation"`
	Jetty        *domain.JettyInfo           `json:"jetty,omitempty"`
	Currency     string                      `json:"currency"`
}

// StateResponse полное состояние сессии
type StateResponse struct {
	SessionID string `json:"sessionId,omitempty"`
	wizard.State
	Catalog CatalogView `json:"catalog"`
}

func NewCatalogView(snap catalog.Snapshot) CatalogView {
	pkgs := snap.Packages
	if pkgs == nil {
		pkgs = []domain.PackageOption{}
	}
	return CatalogView{Status: snap.Status, Message: snap.Message, Packages: pkgs}
}

func NewStateResponse(sessionID string, st wizard.State) StateResponse {
	if st.FieldErrors == nil {
		st.FieldErrors = []domain.Field{}
	}
	return StateResponse{SessionID: sessionID, State: st, Catalog: NewCatalogView(st.Catalog)}
}

func NewInfoView(st wizard.State, fieldErrors []domain.Field) InfoView {
	return InfoView{
		ActiveStep:   st.ActiveStep,
		CustomerInfo: st.CustomerInfo,
		Touched:      st.CustomerTouched,
		FieldErrors:  nonNil(fieldErrors),
	}
}

func NewReservationView(st wizard.State, fieldErrors []domain.Field, now time.Time) ReservationView {
	first, last := domain.BookingWindow(domain.DateOf(now))
	if st.ReservationDetails.AddOns == nil {
		st.ReservationDetails.AddOns = []string{}
	}
	return ReservationView{
		ActiveStep:         st.ActiveStep,
		ReservationDetails: st.ReservationDetails,
		Touched:            st.ReservationTouched,
		FieldErrors:        nonNil(fieldErrors),
		Catalog:            NewCatalogView(st.Catalog),
		SelectedPackage:    st.SelectedPackage,
		AddOnCatalog:       domain.AddOnCatalog,
		JettyLocations:     domain.JettyLocations,
		MinDate:            first,
		MaxDate:            last,
		TotalAmount:        st.TotalAmount,
	}
}

func NewOptionsView(st wizard.State) OptionsView {
	return OptionsView{
		ActiveStep:      st.ActiveStep,
		OtherOptions:    st.OtherOptions,
		TotalAmount:     st.TotalAmount,
		Submitting:      st.Submitting,
		SubmissionError: st.SubmissionError,
	}
}

func NewSummaryView(conf *domain.BookingConfirmation) SummaryView {
	view := SummaryView{Confirmation: conf, Currency: domain.DefaultCurrency}
	if info, ok := domain.LookupJettyInfo(conf.ReservationDetails.JettyLocation); ok {
		view.Jetty = &info
	}
	return view
}

func nonNil(fields []domain.Field) []domain.Field {
	if fields == nil {
		return []domain.Field{}
	}
	return fields
}
