package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/nadhifstar/nadhif/internal/catalog"
	"github.com/nadhifstar/nadhif/internal/database"
	"github.com/nadhifstar/nadhif/internal/database/repository"
)

// ErrNotAtFinalStep means Submit was called before the wizard reached the
// payment step.
var ErrNotAtFinalStep = errors.New("wizard not at final step")

// Store is the persistence surface the wizard needs. repository.BookingRepo
// satisfies it; tests inject an in-memory fake.
type Store interface {
	List(ctx context.Context) ([]repository.Booking, error)
	Upsert(ctx context.Context, b repository.Booking) error
}

// ---------------------------------------------------------------------------
// Steps
// ---------------------------------------------------------------------------

// Step indexes the fixed four-step collection sequence.
type Step int

const (
	StepSchedule Step = iota
	StepLocation
	StepContact
	StepPayment

	stepCount
)

// StepCount returns the number of wizard steps.
func StepCount() int { return int(stepCount) }

func (s Step) String() string {
	switch s {
	case StepSchedule:
		return "schedule"
	case StepLocation:
		return "location"
	case StepContact:
		return "contact"
	case StepPayment:
		return "payment"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ---------------------------------------------------------------------------
// Wizard
// ---------------------------------------------------------------------------

// Wizard drives one booking session from entry to submission or abandonment.
// It is owned by exactly one session, advanced only by discrete user actions,
// and discarded once the session ends.
type Wizard struct {
	cat      *catalog.Catalog
	store    Store
	service  catalog.Service
	existing *repository.Booking
	draft    Draft
	step     Step
	methodID string
}

// NewWizard starts a session for the given service id, optionally pre-seeded
// from an existing record (edit mode). An unknown service id fails before
// any state exists.
func NewWizard(cat *catalog.Catalog, store Store, serviceID string, existing *repository.Booking) (*Wizard, error) {
	svc, ok := cat.Lookup(serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}
	draft := NewDraft(serviceID, cat.DefaultRegion())
	methodID := cat.DefaultPaymentMethod()
	if existing != nil {
		draft = DraftFrom(*existing)
		draft.ServiceID = serviceID
		if _, ok := cat.Method(existing.PaymentMethod); ok {
			methodID = existing.PaymentMethod
		}
	}
	return &Wizard{
		cat:      cat,
		store:    store,
		service:  svc,
		existing: existing,
		draft:    draft,
		methodID: methodID,
	}, nil
}

// Service returns the catalog entry the session was started for.
func (w *Wizard) Service() catalog.Service { return w.service }

// Draft returns the mutable working copy of the booking fields.
func (w *Wizard) Draft() *Draft { return &w.draft }

// Step returns the active step.
func (w *Wizard) Step() Step { return w.step }

// EditMode reports whether the session was pre-seeded from an existing record.
func (w *Wizard) EditMode() bool { return w.existing != nil }

// PaymentMethodID returns the currently selected payment method.
func (w *Wizard) PaymentMethodID() string { return w.methodID }

// SetPaymentMethod selects a payment method for the session.
func (w *Wizard) SetPaymentMethod(id string) { w.methodID = id }

// CanAdvance reports whether the active step's required fields are all
// non-empty. The payment step has no gating predicate.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepSchedule:
		return w.draft.Date != "" && w.draft.Time != ""
	case StepLocation:
		return w.draft.Wilaya != "" && w.draft.Address != ""
	case StepContact:
		return w.draft.Name != "" && w.draft.Phone != ""
	}
	return true
}

// Advance moves to the next step if the active step is complete, clamped at
// the payment step. It reports whether the transition was permitted;
// advancing past the last step is a permitted no-op.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	if w.step < stepCount-1 {
		w.step++
	}
	return true
}

// Retreat moves back one step. At step zero it reports false, which the
// caller interprets as abandoning the session.
func (w *Wizard) Retreat() bool {
	if w.step == 0 {
		return false
	}
	w.step--
	return true
}

// AtLastStep reports whether the session has reached the payment step.
func (w *Wizard) AtLastStep() bool { return w.step == stepCount-1 }

// Submit reconciles the draft into a record and upserts it. Permitted only
// at the payment step. On a store failure the wizard state is untouched so
// the caller can retry without re-entering data.
func (w *Wizard) Submit(ctx context.Context) (repository.Booking, error) {
	if !w.AtLastStep() {
		return repository.Booking{}, ErrNotAtFinalStep
	}
	b, err := Reconcile(w.cat, w.draft, w.existing, w.methodID, database.Now())
	if err != nil {
		return repository.Booking{}, err
	}
	if err := w.store.Upsert(ctx, b); err != nil {
		return repository.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	return b, nil
}
