package domain

// Ограничения бронирования
const (
	MinPassengers          = 0
	MaxPassengers          = 20
	BookingHorizonMonths   = 3 // бронировать можно не дальше чем на 3 месяца вперед
	MinBookingLeadDays     = 1 // самая ранняя дата - завтра
	MaxRemarksLength       = 500
	BookingIDPrefix        = "BK"
	DefaultCurrency        = "RM"
	DefaultPassengersCount = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
