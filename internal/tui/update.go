package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadhifstar/nadhif/internal/booking"
	"github.com/nadhifstar/nadhif/internal/config"
)

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	switch a.view {
	case viewHome:
		return a.updateHome(msg)
	case viewBookings:
		return a.updateBookings(msg)
	case viewWizard:
		return a.updateWizard(msg)
	case viewConfirm:
		return a.updateConfirm(msg)
	case viewSettings:
		return a.updateSettings(msg)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Home (service catalog)
// ---------------------------------------------------------------------------

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.svcCursor > 0 {
			a.svcCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.svcCursor < len(a.cat.Services())-1 {
			a.svcCursor++
		}
	case key.Matches(msg, a.keys.Enter):
		svc := a.cat.Services()[a.svcCursor]
		a.startWizard(svc.ID, nil)
	case key.Matches(msg, a.keys.Bookings):
		a.view = viewBookings
		a.status = ""
		return a, a.loadBookings()
	case key.Matches(msg, a.keys.Settings):
		a.view = viewSettings
		a.status = ""
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Bookings list
// ---------------------------------------------------------------------------

func (a *App) updateBookings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Back):
		a.view = viewHome
		a.status = ""
	case key.Matches(msg, a.keys.Up):
		if a.bkCursor > 0 {
			a.bkCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.bkCursor < len(a.bookings)-1 {
			a.bkCursor++
		}
	case key.Matches(msg, a.keys.Edit):
		if a.bkCursor < len(a.bookings) {
			b := a.bookings[a.bkCursor]
			a.startWizard(b.ServiceID, &b)
		}
	case key.Matches(msg, a.keys.Cancel):
		if a.bkCursor < len(a.bookings) {
			return a, a.cancelCmd(a.bookings[a.bkCursor].ID)
		}
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Wizard
// ---------------------------------------------------------------------------

func (a *App) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.submitting {
		// One transition at a time: keys are ignored while a submit is in flight.
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.syncDraft()
		if !a.wiz.Retreat() {
			a.abandonWizard()
			return a, nil
		}
		a.buildInputs()
		return a, nil

	case "enter":
		a.syncDraft()
		if a.wiz.AtLastStep() {
			a.submitting = true
			a.status = a.tr("Confirming booking…", "جاري تأكيد الحجز…")
			return a, a.submitCmd(a.wiz)
		}
		if !a.wiz.Advance() {
			a.status = a.tr("Fill the required fields first.", "يرجى ملء الحقول المطلوبة أولاً.")
			return a, nil
		}
		a.status = ""
		a.buildInputs()
		return a, nil

	case "tab", "shift+tab", "up", "down":
		if a.wiz.Step() == booking.StepPayment {
			methods := a.cat.PaymentMethods()
			switch msg.String() {
			case "up", "shift+tab":
				if a.methodCursor > 0 {
					a.methodCursor--
				}
			default:
				if a.methodCursor < len(methods)-1 {
					a.methodCursor++
				}
			}
			a.wiz.SetPaymentMethod(methods[a.methodCursor].ID)
			return a, nil
		}
		if len(a.inputs) > 1 {
			a.inputs[a.fieldIndex].Blur()
			switch msg.String() {
			case "up", "shift+tab":
				a.fieldIndex = (a.fieldIndex - 1 + len(a.inputs)) % len(a.inputs)
			default:
				a.fieldIndex = (a.fieldIndex + 1) % len(a.inputs)
			}
			a.inputs[a.fieldIndex].Focus()
		}
		return a, nil

	case "left", "right":
		if a.wiz.Step() == booking.StepLocation {
			regions := a.cat.Regions()
			if msg.String() == "left" {
				a.regionCursor = (a.regionCursor - 1 + len(regions)) % len(regions)
			} else {
				a.regionCursor = (a.regionCursor + 1) % len(regions)
			}
			a.wiz.Draft().Wilaya = regions[a.regionCursor]
			return a, nil
		}
	}

	if len(a.inputs) > 0 {
		var cmd tea.Cmd
		a.inputs[a.fieldIndex], cmd = a.inputs[a.fieldIndex].Update(msg)
		a.syncDraft()
		return a, cmd
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Confirmation
// ---------------------------------------------------------------------------

func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.confirmed = nil
		a.view = viewBookings
		return a, a.loadBookings()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func (a *App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Back):
		a.view = viewHome
		a.status = ""
	case key.Matches(msg, a.keys.Language):
		if a.cfg.UI.Language == "ar" {
			a.cfg.UI.Language = "en"
		} else {
			a.cfg.UI.Language = "ar"
		}
		if err := config.Save(a.cfg); err != nil {
			a.status = "could not save settings: " + err.Error()
		} else {
			a.status = a.tr("Language saved.", "تم حفظ اللغة.")
		}
	}
	return a, nil
}
