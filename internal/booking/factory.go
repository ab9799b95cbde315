package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nadhifstar/nadhif/internal/catalog"
	"github.com/nadhifstar/nadhif/internal/database/repository"
)

var (
	// ErrServiceNotFound means the draft references a service id the catalog
	// doesn't know. No wizard session may start for such an id.
	ErrServiceNotFound = errors.New("service not found")

	// ErrUnknownPaymentMethod means the chosen payment method id is not in
	// the catalog's method list.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// Draft is the wizard's mutable, unpersisted working copy of booking fields.
type Draft struct {
	ServiceID string
	Date      string
	Time      string
	Name      string
	Phone     string
	Wilaya    string
	Address   string
}

// NewDraft returns an empty draft for a fresh session. The service id is
// fixed for the session and the region defaults to the first catalog region.
func NewDraft(serviceID, defaultRegion string) Draft {
	return Draft{ServiceID: serviceID, Wilaya: defaultRegion}
}

// DraftFrom pre-seeds a draft from an existing record for edit mode.
func DraftFrom(b repository.Booking) Draft {
	return Draft{
		ServiceID: b.ServiceID,
		Date:      b.Date,
		Time:      b.Time,
		Name:      b.Name,
		Phone:     b.Phone,
		Wilaya:    b.Wilaya,
		Address:   b.Address,
	}
}

// Reconcile merges a completed draft with catalog data and, when editing,
// the prior record's identity into a persistable booking.
//
// Service title and price are re-resolved from the catalog and snapshotted
// into the record. A new record gets a fresh id, status "upcoming", tracking
// "confirmed" and createdAt = now; an edit keeps the existing id, createdAt,
// status and tracking while every draft-derived field is overwritten.
// Payment status derives from the method: pay-later methods yield "pending",
// everything else recognized yields "paid".
func Reconcile(cat *catalog.Catalog, draft Draft, existing *repository.Booking, paymentMethodID string, now time.Time) (repository.Booking, error) {
	svc, ok := cat.Lookup(draft.ServiceID)
	if !ok {
		return repository.Booking{}, ErrServiceNotFound
	}
	method, ok := cat.Method(paymentMethodID)
	if !ok {
		return repository.Booking{}, ErrUnknownPaymentMethod
	}

	paymentStatus := repository.PaymentPaid
	if method.PayLater {
		paymentStatus = repository.PaymentPending
	}

	b := repository.Booking{
		ID:             uuid.NewString(),
		ServiceID:      draft.ServiceID,
		ServiceTitle:   svc.Title,
		Price:          svc.PriceStart,
		Date:           draft.Date,
		Time:           draft.Time,
		Name:           draft.Name,
		Phone:          draft.Phone,
		Wilaya:         draft.Wilaya,
		Address:        draft.Address,
		Status:         repository.StatusUpcoming,
		TrackingStatus: repository.TrackingConfirmed,
		PaymentMethod:  method.ID,
		PaymentStatus:  paymentStatus,
		CreatedAt:      now,
	}
	if existing != nil {
		b.ID = existing.ID
		b.CreatedAt = existing.CreatedAt
		b.Status = existing.Status
		b.TrackingStatus = existing.TrackingStatus
	}
	return b, nil
}
