package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/nadhifstar/nadhif/internal/booking"
	"github.com/nadhifstar/nadhif/internal/database/repository"
)

const appName = "Nadhif Star"

func (a *App) View() string {
	var body string
	switch a.view {
	case viewHome:
		body = a.homeView()
	case viewBookings:
		body = a.bookingsView()
	case viewWizard:
		body = a.wizardView()
	case viewConfirm:
		body = a.confirmView()
	case viewSettings:
		body = a.settingsView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		"",
		body,
		"",
		statusStyle.Render(a.status),
		a.renderFooter(),
	)
}

func (a *App) renderHeader() string {
	title := headerAppStyle.Render(appName)
	var sub string
	switch a.view {
	case viewHome:
		sub = a.tr("Services", "الخدمات")
	case viewBookings:
		sub = a.tr("My Bookings", "حجوزاتي")
	case viewWizard:
		sub = a.tr("Book a Service", "حجز خدمة")
	case viewConfirm:
		sub = a.tr("Confirmed", "تم التأكيد")
	case viewSettings:
		sub = a.tr("Settings", "الإعدادات")
	}
	return headerBarStyle.Render(title + "  " + dimStyle.Render("· "+sub))
}

func (a *App) renderFooter() string {
	var bindings []key.Binding
	switch a.view {
	case viewHome:
		bindings = a.keys.homeHelp()
	case viewBookings:
		bindings = a.keys.bookingsHelp()
	case viewWizard:
		bindings = a.keys.wizardHelp()
	default:
		bindings = []key.Binding{a.keys.Enter, a.keys.Back, a.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, dimStyle.Render(h.Desc)))
	}
	return footerStyle.Render(strings.Join(parts, "  •  "))
}

// ---------------------------------------------------------------------------
// Home
// ---------------------------------------------------------------------------

func (a *App) homeView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(a.tr("Choose your service", "اختر خدمتك")) + "\n\n")

	for i, svc := range a.cat.Services() {
		prefix := "  "
		line := fmt.Sprintf("%s  %s", svc.Title, priceStyle.Render(
			fmt.Sprintf("%d %s", svc.PriceStart, a.cfg.UI.CurrencySymbol)))
		if i == a.svcCursor {
			prefix = cursorStyle.Render("> ")
			line += "\n" + dimStyle.Render("    "+svc.Description)
		}
		sb.WriteString(prefix + line + "\n")
	}
	return sectionBoxStyle.Render(sb.String())
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

func (a *App) bookingsView() string {
	if len(a.bookings) == 0 {
		return sectionBoxStyle.Render(dimStyle.Render(
			a.tr("No bookings yet.", "حجوزاتك فارغة.")))
	}

	var sb strings.Builder
	for i, b := range a.bookings {
		prefix := "  "
		if i == a.bkCursor {
			prefix = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s  %s %s  %s  %s",
			b.ServiceTitle,
			b.Date, b.Time,
			a.renderStatus(b.Status),
			priceStyle.Render(fmt.Sprintf("%d %s", b.Price, a.cfg.UI.CurrencySymbol)))
		if i == a.bkCursor {
			line += "\n" + dimStyle.Render(fmt.Sprintf("    %s — %s  ·  %s  ·  %s",
				b.Wilaya, b.Address, string(b.TrackingStatus), string(b.PaymentStatus)))
		}
		sb.WriteString(prefix + line + "\n")
	}
	return sectionBoxStyle.Render(sb.String())
}

func (a *App) renderStatus(s repository.BookingStatus) string {
	switch s {
	case repository.StatusUpcoming:
		return warnStyle.Render(a.tr("upcoming", "قادم"))
	case repository.StatusCompleted:
		return stepDoneStyle.Render(a.tr("completed", "مكتمل"))
	case repository.StatusCancelled:
		return dangerStyle.Render(a.tr("cancelled", "ملغى"))
	}
	return string(s)
}

// ---------------------------------------------------------------------------
// Wizard
// ---------------------------------------------------------------------------

func (a *App) stepTitle(s booking.Step) string {
	switch s {
	case booking.StepSchedule:
		return a.tr("Schedule", "الموعد")
	case booking.StepLocation:
		return a.tr("Location", "العنوان")
	case booking.StepContact:
		return a.tr("Contact", "الاتصال")
	case booking.StepPayment:
		return a.tr("Payment", "الدفع")
	}
	return s.String()
}

// stepIndicator renders the four-step progress strip.
func (a *App) stepIndicator() string {
	parts := make([]string, 0, booking.StepCount())
	for i := 0; i < booking.StepCount(); i++ {
		s := booking.Step(i)
		label := a.stepTitle(s)
		switch {
		case s == a.wiz.Step():
			parts = append(parts, stepActiveStyle.Render("● "+label))
		case s < a.wiz.Step():
			parts = append(parts, stepDoneStyle.Render("✓ "+label))
		default:
			parts = append(parts, stepTodoStyle.Render("○ "+label))
		}
	}
	return strings.Join(parts, dimStyle.Render(" ── "))
}

func (a *App) wizardView() string {
	svc := a.wiz.Service()
	head := titleStyle.Render(svc.Title) + "  " +
		priceStyle.Render(fmt.Sprintf("%d %s", svc.PriceStart, a.cfg.UI.CurrencySymbol))
	if a.wiz.EditMode() {
		head += "  " + warnStyle.Render(a.tr("(editing)", "(تعديل)"))
	}

	var body string
	switch a.wiz.Step() {
	case booking.StepSchedule:
		body = a.renderFields(
			[]string{a.tr("Date", "التاريخ"), a.tr("Time", "الوقت")})
	case booking.StepLocation:
		region := labelStyle.Render(a.tr("Wilaya", "الولاية")) + "  " +
			selectedStyle.Render(" "+a.wiz.Draft().Wilaya+" ") +
			dimStyle.Render("  ←/→")
		body = region + "\n\n" + a.renderFields([]string{a.tr("Address", "العنوان")})
	case booking.StepContact:
		body = a.renderFields(
			[]string{a.tr("Name", "الاسم"), a.tr("Phone", "الهاتف")})
	case booking.StepPayment:
		body = a.paymentView()
	}

	return head + "\n\n" + a.stepIndicator() + "\n\n" + sectionBoxStyle.Render(body)
}

func (a *App) renderFields(labels []string) string {
	var sb strings.Builder
	for i, in := range a.inputs {
		sb.WriteString(labelStyle.Render(labels[i]) + "\n")
		sb.WriteString(in.View() + "\n")
		if i < len(a.inputs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (a *App) paymentView() string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render(a.tr("Payment method", "طريقة الدفع")) + "\n")
	for i, pm := range a.cat.PaymentMethods() {
		prefix := "  "
		title := pm.TitleAr
		desc := pm.DescriptionAr
		if a.cfg.UI.Language == "en" {
			title = pm.TitleEn
			desc = pm.DescriptionEn
		}
		if i == a.methodCursor {
			prefix = cursorStyle.Render("> ")
			title += "  " + dimStyle.Render(desc)
		}
		sb.WriteString(prefix + title + "\n")
	}

	d := a.wiz.Draft()
	svc := a.wiz.Service()
	sb.WriteString("\n" + labelStyle.Render(a.tr("Summary", "الملخص")) + "\n")
	sb.WriteString(fmt.Sprintf("  %s\n", svc.Title))
	sb.WriteString(fmt.Sprintf("  %s %s\n", d.Date, d.Time))
	sb.WriteString(fmt.Sprintf("  %s — %s\n", d.Wilaya, d.Address))
	sb.WriteString(fmt.Sprintf("  %s  %s\n", d.Name, d.Phone))
	sb.WriteString("  " + priceStyle.Render(
		fmt.Sprintf("%d %s", svc.PriceStart, a.cfg.UI.CurrencySymbol)))

	if a.submitting {
		sb.WriteString("\n\n" + warnStyle.Render(a.tr("Confirming…", "جاري التأكيد…")))
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// Confirmation
// ---------------------------------------------------------------------------

func (a *App) confirmView() string {
	if a.confirmed == nil {
		return ""
	}
	b := a.confirmed
	var sb strings.Builder
	sb.WriteString(stepActiveStyle.Render("✓ "+a.tr("Booking confirmed!", "تم تأكيد الحجز!")) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s\n", titleStyle.Render(b.ServiceTitle)))
	sb.WriteString(fmt.Sprintf("%s %s\n", b.Date, b.Time))
	sb.WriteString(fmt.Sprintf("%s — %s\n", b.Wilaya, b.Address))
	sb.WriteString(fmt.Sprintf("%s  %s\n", b.Name, b.Phone))
	sb.WriteString(priceStyle.Render(fmt.Sprintf("%d %s", b.Price, a.cfg.UI.CurrencySymbol)) + "\n\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%s: %s", a.tr("reference", "المرجع"), b.ID)))
	return sectionBoxStyle.Render(sb.String())
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func (a *App) settingsView() string {
	var sb strings.Builder
	lang := a.tr("English", "العربية")
	sb.WriteString(labelStyle.Render(a.tr("Language", "اللغة")) + "  " + lang +
		dimStyle.Render("  (l)") + "\n\n")
	avatar := a.cfg.UI.Avatar
	if avatar == "" {
		avatar = dimStyle.Render(a.tr("not set", "غير محدد"))
	}
	sb.WriteString(labelStyle.Render(a.tr("Avatar", "الصورة الرمزية")) + "  " + avatar + "\n")
	sb.WriteString(labelStyle.Render(a.tr("Database", "قاعدة البيانات")) + "  " +
		dimStyle.Render(a.cfg.Database.Path) + "\n")
	sb.WriteString(labelStyle.Render(a.tr("Catalog", "الكتالوج")) + "  " +
		dimStyle.Render(a.cfg.Catalog.Path))
	return sectionBoxStyle.Render(sb.String())
}
