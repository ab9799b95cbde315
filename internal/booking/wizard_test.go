package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/nadhifstar/nadhif/internal/catalog"
	"github.com/nadhifstar/nadhif/internal/database/repository"
)

// fakeStore is an in-memory Store that mimics the newest-first upsert
// convention: an upsert moves the record to the front.
type fakeStore struct {
	records []repository.Booking
	failErr error
}

func (f *fakeStore) List(_ context.Context) ([]repository.Booking, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.records, nil
}

func (f *fakeStore) Upsert(_ context.Context, b repository.Booking) error {
	if f.failErr != nil {
		return f.failErr
	}
	for i := range f.records {
		if f.records[i].ID == b.ID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			break
		}
	}
	f.records = append([]repository.Booking{b}, f.records...)
	return nil
}

func completeDraft(d *Draft) {
	d.Date = "2024-06-01"
	d.Time = "10:00"
	d.Address = "12 Rue X"
	d.Name = "Ali"
	d.Phone = "0550000000"
}

func TestWizardUnknownService(t *testing.T) {
	store := &fakeStore{}
	_, err := NewWizard(catalog.Default(), store, "unknown-id", nil)
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("err = %v, want ErrServiceNotFound", err)
	}
	if len(store.records) != 0 {
		t.Error("store mutated by failed session start")
	}
}

func TestWizardDefaults(t *testing.T) {
	w, err := NewWizard(catalog.Default(), &fakeStore{}, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	if w.Step() != StepSchedule {
		t.Errorf("initial step = %v, want schedule", w.Step())
	}
	if w.Draft().Wilaya != "الجزائر العاصمة" {
		t.Errorf("default region = %q", w.Draft().Wilaya)
	}
	if w.PaymentMethodID() != "cash" {
		t.Errorf("default payment method = %q, want cash", w.PaymentMethodID())
	}
	if w.EditMode() {
		t.Error("fresh session should not be in edit mode")
	}
}

func TestWizardStepGating(t *testing.T) {
	w, err := NewWizard(catalog.Default(), &fakeStore{}, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}

	// Scenario: date set, time empty -> refused.
	w.Draft().Date = "2024-06-01"
	if w.Advance() {
		t.Fatal("advance succeeded with empty time")
	}
	if w.Step() != StepSchedule {
		t.Fatalf("step = %v after refused advance, want schedule", w.Step())
	}

	w.Draft().Time = "10:00"
	if !w.Advance() {
		t.Fatal("advance refused with complete schedule step")
	}
	if w.Step() != StepLocation {
		t.Fatalf("step = %v, want location", w.Step())
	}
}

func TestWizardGatingPerStep(t *testing.T) {
	w, err := NewWizard(catalog.Default(), &fakeStore{}, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}

	w.Draft().Date = "2024-06-01"
	w.Draft().Time = "10:00"
	if !w.Advance() {
		t.Fatal("schedule step should pass")
	}

	// Location: region is pre-filled but address is empty.
	if w.Advance() {
		t.Fatal("location step passed with empty address")
	}
	w.Draft().Address = "12 Rue X"
	if !w.Advance() {
		t.Fatal("location step should pass")
	}

	if w.Advance() {
		t.Fatal("contact step passed with empty name/phone")
	}
	w.Draft().Name = "Ali"
	if w.Advance() {
		t.Fatal("contact step passed with empty phone")
	}
	w.Draft().Phone = "0550000000"
	if !w.Advance() {
		t.Fatal("contact step should pass")
	}

	if !w.AtLastStep() {
		t.Fatalf("step = %v, want payment", w.Step())
	}
	// Payment step has no gating predicate.
	if !w.CanAdvance() {
		t.Error("payment step should always allow advance")
	}
}

func TestWizardAdvanceClampedAtLastStep(t *testing.T) {
	w, err := NewWizard(catalog.Default(), &fakeStore{}, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	completeDraft(w.Draft())
	for i := 0; i < 10; i++ {
		w.Advance()
	}
	if !w.AtLastStep() {
		t.Fatalf("step = %v, want payment", w.Step())
	}
	if !w.Advance() {
		t.Error("advance past last step should be a permitted no-op")
	}
	if w.Step() != StepPayment {
		t.Errorf("step = %v after clamped advance, want payment", w.Step())
	}
}

func TestWizardRetreatAbandon(t *testing.T) {
	w, err := NewWizard(catalog.Default(), &fakeStore{}, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	if w.Retreat() {
		t.Error("retreat at step 0 should report abandonment")
	}

	completeDraft(w.Draft())
	w.Advance()
	if !w.Retreat() {
		t.Error("retreat from step 1 should succeed")
	}
	if w.Step() != StepSchedule {
		t.Errorf("step = %v, want schedule", w.Step())
	}
}

func TestWizardEditModePreseed(t *testing.T) {
	cat := catalog.Default()
	existing := repository.Booking{
		ID:             "b-1",
		ServiceID:      "deep-clean",
		Date:           "2024-06-01",
		Time:           "10:00",
		Name:           "Ali",
		Phone:          "0550000000",
		Wilaya:         "وهران",
		Address:        "12 Rue X",
		Status:         repository.StatusUpcoming,
		TrackingStatus: repository.TrackingConfirmed,
	}
	w, err := NewWizard(cat, &fakeStore{}, "deep-clean", &existing)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	if !w.EditMode() {
		t.Error("expected edit mode")
	}
	if w.Draft().Wilaya != "وهران" {
		t.Errorf("preseed wilaya = %q, want وهران", w.Draft().Wilaya)
	}
	if w.Draft().Name != "Ali" || w.Draft().Time != "10:00" {
		t.Error("draft not pre-seeded from existing record")
	}
	if w.Step() != StepSchedule {
		t.Errorf("edit mode starts at step %v, want schedule", w.Step())
	}
}

func TestWizardSubmitBeforeFinalStep(t *testing.T) {
	w, err := NewWizard(catalog.Default(), &fakeStore{}, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrNotAtFinalStep) {
		t.Fatalf("err = %v, want ErrNotAtFinalStep", err)
	}
}

func TestWizardSubmitSavesRecord(t *testing.T) {
	store := &fakeStore{}
	w, err := NewWizard(catalog.Default(), store, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	completeDraft(w.Draft())
	for !w.AtLastStep() {
		if !w.Advance() {
			t.Fatal("advance refused with complete draft")
		}
	}

	b, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("store has %d records, want 1", len(store.records))
	}
	if store.records[0].ID != b.ID {
		t.Error("stored record does not match submit result")
	}
	if b.PaymentStatus != repository.PaymentPending {
		t.Errorf("payment status = %q, want pending (cash default)", b.PaymentStatus)
	}
}

func TestWizardSubmitEditKeepsID(t *testing.T) {
	cat := catalog.Default()
	store := &fakeStore{}

	w, err := NewWizard(cat, store, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	completeDraft(w.Draft())
	for !w.AtLastStep() {
		w.Advance()
	}
	first, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Edit session: change only the time.
	w2, err := NewWizard(cat, store, first.ServiceID, &first)
	if err != nil {
		t.Fatalf("NewWizard (edit): %v", err)
	}
	w2.Draft().Time = "14:00"
	for !w2.AtLastStep() {
		w2.Advance()
	}
	second, err := w2.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit (edit): %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("edit changed id: %q -> %q", first.ID, second.ID)
	}
	if len(store.records) != 1 {
		t.Fatalf("store has %d records after edit, want 1", len(store.records))
	}
	if store.records[0].Time != "14:00" {
		t.Errorf("stored time = %q, want 14:00", store.records[0].Time)
	}
}

func TestWizardSubmitStoreFailure(t *testing.T) {
	store := &fakeStore{failErr: errors.New("disk full")}
	w, err := NewWizard(catalog.Default(), store, "deep-clean", nil)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}
	completeDraft(w.Draft())
	for !w.AtLastStep() {
		w.Advance()
	}

	if _, err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected submit failure")
	}
	// Wizard must stay retry-eligible: same step, draft intact.
	if !w.AtLastStep() {
		t.Errorf("step = %v after failed submit, want payment", w.Step())
	}
	if w.Draft().Name != "Ali" {
		t.Error("draft lost after failed submit")
	}

	// Clearing the fault lets the same session retry.
	store.failErr = nil
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("store has %d records after retry, want 1", len(store.records))
	}
}
