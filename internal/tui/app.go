package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadhifstar/nadhif/internal/booking"
	"github.com/nadhifstar/nadhif/internal/catalog"
	"github.com/nadhifstar/nadhif/internal/config"
	"github.com/nadhifstar/nadhif/internal/database/repository"
)

// Store is what the app needs from persistence: the wizard surface plus the
// status transitions driven from the bookings view.
type Store interface {
	booking.Store
	UpdateStatus(ctx context.Context, id string, status repository.BookingStatus) error
}

type view string

const (
	viewHome     view = "home"
	viewBookings view = "bookings"
	viewWizard   view = "wizard"
	viewConfirm  view = "confirm"
	viewSettings view = "settings"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type bookingsMsg []repository.Booking

type errMsg struct{ err error }

type submitDoneMsg struct {
	booking repository.Booking
	err     error
}

type cancelDoneMsg struct {
	id  string
	err error
}

// ---------------------------------------------------------------------------
// App
// ---------------------------------------------------------------------------

// App ties together the catalog, the booking store and the wizard sessions.
type App struct {
	ctx   context.Context
	cfg   config.Config
	cat   *catalog.Catalog
	store Store
	keys  keyMap

	view     view
	bookings []repository.Booking

	svcCursor int
	bkCursor  int

	// active wizard session; nil outside viewWizard
	wiz          *booking.Wizard
	inputs       []textinput.Model
	fieldIndex   int
	regionCursor int
	methodCursor int
	submitting   bool

	confirmed *repository.Booking

	status string
	width  int
	height int
}

// New builds the app. The store is injected so tests can run against an
// in-memory fake.
func New(ctx context.Context, cfg config.Config, cat *catalog.Catalog, store Store) *App {
	return &App{
		ctx:   ctx,
		cfg:   cfg,
		cat:   cat,
		store: store,
		keys:  newKeyMap(),
		view:  viewHome,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadBookings()
}

// loadBookings refreshes the list. A read failure degrades to an empty list
// with a status line; it never terminates the program.
func (a *App) loadBookings() tea.Cmd {
	return func() tea.Msg {
		list, err := a.store.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return bookingsMsg(list)
	}
}

// submitCmd runs the terminal wizard transition off the update loop.
func (a *App) submitCmd(w *booking.Wizard) tea.Cmd {
	return func() tea.Msg {
		b, err := w.Submit(a.ctx)
		return submitDoneMsg{booking: b, err: err}
	}
}

func (a *App) cancelCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := a.store.UpdateStatus(a.ctx, id, repository.StatusCancelled)
		return cancelDoneMsg{id: id, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bookingsMsg:
		return a.handleBookings(msg)
	case errMsg:
		return a.handleErr(msg)
	case submitDoneMsg:
		return a.handleSubmitDone(msg)
	case cancelDoneMsg:
		return a.handleCancelDone(msg)
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Message handlers
// ---------------------------------------------------------------------------

func (a *App) handleBookings(msg bookingsMsg) (tea.Model, tea.Cmd) {
	a.bookings = msg
	if a.bkCursor >= len(a.bookings) {
		a.bkCursor = 0
	}
	return a, nil
}

func (a *App) handleErr(_ errMsg) (tea.Model, tea.Cmd) {
	// An unreadable store reads as an empty one. The listing renders its
	// empty state and the user keeps going; nothing is surfaced.
	a.bookings = nil
	return a, nil
}

func (a *App) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	a.submitting = false
	if msg.err != nil {
		// Stay on the payment step with the draft intact so the user can retry.
		a.status = fmt.Sprintf("booking not saved: %v — press enter to retry", msg.err)
		return a, nil
	}
	confirmed := msg.booking
	a.confirmed = &confirmed
	a.wiz = nil
	a.inputs = nil
	a.view = viewConfirm
	a.status = ""
	return a, a.loadBookings()
}

func (a *App) handleCancelDone(msg cancelDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.status = fmt.Sprintf("cancel failed: %v", msg.err)
		return a, nil
	}
	a.status = a.tr("Booking cancelled.", "تم إلغاء الحجز.")
	return a, a.loadBookings()
}

// ---------------------------------------------------------------------------
// Wizard session plumbing
// ---------------------------------------------------------------------------

// startWizard opens a session for the selected service, optionally pre-seeded
// from an existing record.
func (a *App) startWizard(serviceID string, existing *repository.Booking) {
	w, err := booking.NewWizard(a.cat, a.store, serviceID, existing)
	if err != nil {
		// Unknown service is the one precondition surfaced to the user.
		suggestion := a.cat.Nearest(serviceID)
		if suggestion != "" {
			a.status = fmt.Sprintf("%s %q (%s %q?)",
				a.tr("unknown service", "الخدمة غير موجودة"), serviceID,
				a.tr("did you mean", "هل تقصد"), suggestion)
		} else {
			a.status = fmt.Sprintf("%s %q", a.tr("unknown service", "الخدمة غير موجودة"), serviceID)
		}
		return
	}
	a.wiz = w
	a.view = viewWizard
	a.submitting = false
	a.regionCursor = a.regionIndex(w.Draft().Wilaya)
	a.methodCursor = a.methodIndex(w.PaymentMethodID())
	a.buildInputs()
	a.status = ""
}

// abandonWizard discards the session; nothing is persisted.
func (a *App) abandonWizard() {
	a.wiz = nil
	a.inputs = nil
	a.view = viewHome
	a.status = a.tr("Booking abandoned.", "تم التراجع عن الحجز.")
}

// buildInputs rebuilds the text inputs for the active step from the draft.
func (a *App) buildInputs() {
	d := a.wiz.Draft()
	a.fieldIndex = 0
	a.inputs = nil

	mk := func(placeholder, value string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = limit
		in.Prompt = "> "
		return in
	}

	switch a.wiz.Step() {
	case booking.StepSchedule:
		a.inputs = []textinput.Model{
			mk("2024-06-01", d.Date, 10),
			mk("10:00", d.Time, 5),
		}
	case booking.StepLocation:
		a.inputs = []textinput.Model{
			mk(a.tr("street, building, floor", "الشارع، العمارة، الطابق"), d.Address, 120),
		}
	case booking.StepContact:
		a.inputs = []textinput.Model{
			mk(a.tr("full name", "الاسم الكامل"), d.Name, 60),
			mk("05xxxxxxxx", d.Phone, 15),
		}
	case booking.StepPayment:
		// method selection only, no free-text input
	}
	if len(a.inputs) > 0 {
		a.inputs[0].Focus()
	}
}

// syncDraft copies the current input values back into the wizard draft.
func (a *App) syncDraft() {
	d := a.wiz.Draft()
	switch a.wiz.Step() {
	case booking.StepSchedule:
		d.Date = a.inputs[0].Value()
		d.Time = a.inputs[1].Value()
	case booking.StepLocation:
		// Wilaya is written by the selector keys only: a stored region that
		// has since left the catalog survives until the user changes it.
		d.Address = a.inputs[0].Value()
	case booking.StepContact:
		d.Name = a.inputs[0].Value()
		d.Phone = a.inputs[1].Value()
	}
}

func (a *App) regionIndex(region string) int {
	for i, r := range a.cat.Regions() {
		if r == region {
			return i
		}
	}
	return 0
}

func (a *App) methodIndex(id string) int {
	for i, pm := range a.cat.PaymentMethods() {
		if pm.ID == id {
			return i
		}
	}
	return 0
}

// tr picks the label for the configured UI language. Business logic never
// branches on language; only labels do.
func (a *App) tr(en, ar string) string {
	if a.cfg.UI.Language == "en" {
		return en
	}
	return ar
}
