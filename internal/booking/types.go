package booking

import (
	"time"
	"travel/internal/flight"
)

type Kind string

const (
	KindFlight Kind = "flight"
	KindHotel  Kind = "hotel"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

type Passengers struct {
	Adults   uint32 `json:"adults" binding:"min=1"`
	Children uint32 `json:"children"`
	Infants  uint32 `json:"infants"`
}

func (p Passengers) Total() int {
	return int(p.Adults + p.Children + p.Infants)
}

type FlightOffer struct {
	Outbound flight.Direction  `json:"outbound"`
	Return   *flight.Direction `json:"return,omitempty"`
}

type HotelOffer struct {
	HotelID    string `json:"hotel_id" binding:"required"`
	HotelName  string `json:"hotel_name"`
	PackageKey string `json:"package_key" binding:"required"`
	RoomName   string `json:"room_name"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	Rooms      int    `json:"rooms" binding:"min=1"`
}

type Guest struct {
	Title          string `json:"title" binding:"required,oneof=mr mrs ms miss mstr"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Type           string `json:"type" binding:"required,oneof=adult child infant"`
	BirthDate      string `json:"birth_date"`
	Nationality    string `json:"nationality" binding:"omitempty,len=2"`
	PassportNumber string `json:"passport_number"`
}

type Contact struct {
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	CountryCode string `json:"country_code"`
}

// Draft is the user's in-progress booking. It lives in the session store
// only; the supplier booking API owns the durable record.
type Draft struct {
	ID          int64        `json:"id,omitempty"`
	Reference   string       `json:"reference,omitempty"`
	Kind        Kind         `json:"kind"`
	Flight      *FlightOffer `json:"flight,omitempty"`
	Hotel       *HotelOffer  `json:"hotel,omitempty"`
	Passengers  Passengers   `json:"passengers"`
	Price       float64      `json:"price"`
	Currency    string       `json:"currency"`
	CurrencyID  int          `json:"currency_id"`
	Guests      []Guest      `json:"guests,omitempty"`
	Contact     *Contact     `json:"contact,omitempty"`
	Status      Status       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	SubmittedAt *time.Time   `json:"submitted_at,omitempty"`
}

type StartRequest struct {
	Kind       Kind         `json:"kind" binding:"required,oneof=flight hotel"`
	Flight     *FlightOffer `json:"flight"`
	Hotel      *HotelOffer  `json:"hotel"`
	Passengers Passengers   `json:"passengers"`
	Price      float64      `json:"price" binding:"gte=0"`
	Currency   string       `json:"currency"`
	CurrencyID int          `json:"currency_id"`
}

type SubmitRequest struct {
	Guests  []Guest `json:"guests" binding:"required,min=1,dive"`
	Contact Contact `json:"contact"`
}
