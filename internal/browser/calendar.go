package browser

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/ppl/internal/dates"
	"github.com/jeanpaul/ppl/internal/resolve"
	"github.com/jeanpaul/ppl/internal/ui"
)

var monthStyle = lipgloss.NewStyle().Width(22).MarginRight(1)

// renderCalendar lays the current year out as a 6x2 month grid, with today
// and every reminder-enabled anniversary highlighted, plus the upcoming list
// underneath in scheduler order.
func (m Model) renderCalendar() string {
	year := m.today.Year()

	marks := make(map[string]bool)
	for _, d := range m.sigDates {
		if !d.DoRemind {
			continue
		}
		orig, err := dates.ParseISO(d.Date)
		if err != nil {
			continue
		}
		marks[dates.FormatISO(dates.Anniversary(orig, year))] = true
	}

	months := make([]string, 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		months = append(months, monthStyle.Render(m.renderMonth(year, mo, marks)))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, months[:6]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, months[6:]...)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, "", m.renderUpcoming(year))
}

func (m Model) renderMonth(year int, month time.Month, marks map[string]bool) string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(month.String()) + "\n")
	b.WriteString(ui.DimStyle.Render("Mo Tu We Th Fr Sa Su") + "\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Weeks start on Monday.
	col := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", col))

	todayISO := m.today.Format(dates.ISO)
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= lastDay; day++ {
		iso := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		cell := fmt.Sprintf("%2d", day)
		switch {
		case iso == todayISO:
			cell = ui.TodayStyle.Render(cell)
		case marks[iso]:
			cell = ui.EventDayStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), " \n")
}

// renderUpcoming lists every reminder-enabled date normalized to this year,
// sorted by in-year date the same way the digest sorts.
func (m Model) renderUpcoming(year int) string {
	type entry struct {
		when time.Time
		line string
	}
	var items []entry
	for _, d := range m.sigDates {
		if !d.DoRemind {
			continue
		}
		orig, err := dates.ParseISO(d.Date)
		if err != nil {
			continue
		}
		ann := dates.Anniversary(orig, year)
		pres := resolve.SigDatePresentation(d, m.traitDefaults)
		items = append(items, entry{
			when: ann,
			line: fmt.Sprintf("%s %s %s %s", ann.Format("Jan 02"), pres.Symbol,
				ui.Colored(pres.Color, d.Event), m.personName(d.PplID)),
		})
	}
	if len(items) == 0 {
		return ui.DimStyle.Render("no reminder dates")
	}
	sort.Slice(items, func(i, j int) bool { return items[i].when.Before(items[j].when) })

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("upcoming") + "\n")
	for _, it := range items {
		b.WriteString(it.line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
