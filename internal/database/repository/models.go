package repository

import "time"

// BookingStatus is the lifecycle tag of a booking.
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// TrackingStatus is the fulfilment-progress tag of a booking.
type TrackingStatus string

const (
	TrackingConfirmed  TrackingStatus = "confirmed"
	TrackingAssigned   TrackingStatus = "assigned"
	TrackingInProgress TrackingStatus = "in_progress"
	TrackingCompleted  TrackingStatus = "completed"
)

// PaymentStatus is derived from the payment method chosen at submission.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

// Booking represents a persisted booking row. ServiceTitle and Price are
// snapshots of the catalog entry at creation/edit time so the record stays
// displayable even if the catalog changes later.
type Booking struct {
	ID             string
	ServiceID      string
	ServiceTitle   string
	Price          int
	Date           string // "2006-01-02"
	Time           string // "15:04"
	Name           string
	Phone          string
	Wilaya         string
	Address        string
	Status         BookingStatus
	TrackingStatus TrackingStatus
	PaymentMethod  string
	PaymentStatus  PaymentStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
