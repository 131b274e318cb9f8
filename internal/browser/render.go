package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/ppl/internal/resolve"
	"github.com/jeanpaul/ppl/internal/store"
	"github.com/jeanpaul/ppl/internal/ui"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs() + "\n\n")

	switch m.tab {
	case TabPpl:
		b.WriteString(m.renderPpl())
	case TabCalendar:
		b.WriteString(m.renderCalendar())
	case TabTierSettings:
		b.WriteString(m.renderTierSettings())
	case TabTraitSettings:
		b.WriteString(m.renderTraitSettings())
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, int(tabCount))
	for t := TabPpl; t < tabCount; t++ {
		label := " " + t.String() + " "
		if t == m.tab {
			parts = append(parts, ui.SelectedStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, ui.DimStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, "")
}

func (m Model) renderFooter() string {
	var help string
	switch {
	case m.mode == modeEditField:
		help = "tab next field · enter save · esc cancel"
	case m.mode == modeEditList:
		help = "↑/↓ record · enter edit · e/esc back"
	case m.tab == TabPpl:
		help = "↑/↓ person · tab view · e edit · c/d/l/i/r show/hide · q quit"
	default:
		help = "tab view · q quit"
	}
	line := ui.HelpStyle.Render(help)
	if m.status != "" {
		line += "\n" + ui.ErrorStyle.Render("! "+m.status)
	}
	return line
}

func (m Model) renderPpl() string {
	if len(m.people) == 0 {
		return ui.DimStyle.Render("no people yet, run init first")
	}

	left := ui.PaneBorderStyle.Render(m.renderPeopleList())

	var right string
	switch m.mode {
	case modeEditList:
		right = ui.EditPaneStyle.Render(m.renderEditList())
	case modeEditField:
		right = ui.EditPaneStyle.Render(m.renderEditField())
	default:
		right = ui.PaneBorderStyle.Render(m.renderDetail())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) renderPeopleList() string {
	var b strings.Builder
	for i, p := range m.people {
		cursor := "  "
		if i == m.personCursor {
			cursor = ">>"
		}
		name := p.DisplayName()
		if tiers := m.personTiers(p.ID); len(tiers) > 0 {
			pres := resolve.TierPresentation(tiers[0], m.tierDefaults)
			name = pres.Symbol + " " + ui.Colored(pres.Color, name)
		}
		if p.Me {
			name += " ⭐"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, name))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderDetail() string {
	p := m.selected()
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(p.Name))
	if p.Nick != nil {
		b.WriteString(ui.DimStyle.Render(" aka " + *p.Nick))
	}
	b.WriteString("\n")

	if m.showContacts {
		for _, c := range m.personContacts(p.ID) {
			pres := resolve.ContactPresentation(c, m.traitDefaults)
			label := c.Type
			if c.Designator != nil {
				label += " " + *c.Designator
			}
			b.WriteString(fmt.Sprintf("%s %s: %s\n", pres.Symbol, ui.Colored(pres.Color, label), c.Value))
		}
	}
	if m.showDates {
		for _, d := range m.personSigDates(p.ID) {
			pres := resolve.SigDatePresentation(d, m.traitDefaults)
			b.WriteString(fmt.Sprintf("%s %s: %s\n", pres.Symbol, ui.Colored(pres.Color, d.Event), d.Date))
		}
	}
	if m.showTraits {
		for _, t := range m.personTraits(p.ID) {
			pres := resolve.TraitPresentation(t, m.traitDefaults)
			b.WriteString(fmt.Sprintf("%s %s: %s\n", pres.Symbol, ui.Colored(pres.Color, t.Key), t.Value))
		}
	}
	if m.showTiers {
		for _, t := range m.personTiers(p.ID) {
			pres := resolve.TierPresentation(t, m.tierDefaults)
			b.WriteString(fmt.Sprintf("%s %s\n", pres.Symbol, ui.Colored(pres.Color, t.Name)))
		}
	}
	if m.showRelations {
		for _, r := range m.personRelations(p.ID) {
			b.WriteString(fmt.Sprintf("%s %s of %s\n", resolve.FallbackRelation, r.Type, m.personName(r.PplIDA)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) personName(id int64) string {
	for _, p := range m.people {
		if p.ID == id {
			return p.DisplayName()
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (m Model) renderEditList() string {
	if len(m.editables) == 0 {
		return ui.DimStyle.Render("nothing to edit")
	}
	var b strings.Builder
	for i, ed := range m.editables {
		cursor := "  "
		if i == m.editCursor {
			cursor = ">>"
		}
		parts := make([]string, 0, 3)
		for _, f := range ed.Fields() {
			parts = append(parts, fmt.Sprintf("%s=%s", f.Title, f.Value))
		}
		line := fmt.Sprintf("%s %s  %s", cursor, ui.TitleStyle.Render(ed.Kind()), strings.Join(parts, " "))
		if i == m.editCursor {
			line = ui.SelectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderEditField() string {
	ed := m.editables[m.editCursor]
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(fmt.Sprintf("editing %s", ed.Kind())) + "\n")
	for i, f := range ed.Fields() {
		style := ui.InputBorderStyle
		if i == m.focus {
			style = ui.InputActiveStyle
		}
		b.WriteString(ui.DimStyle.Render(f.Title) + "\n")
		b.WriteString(style.Render(m.inputs[i].View()) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTierSettings() string {
	if len(m.tierDefaults) == 0 {
		return ui.DimStyle.Render("no circles configured")
	}
	var b strings.Builder
	for _, d := range m.tierDefaults {
		b.WriteString(renderTierDefault(d) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTierDefault(d store.TierDefault) string {
	mark := "☐"
	if d.Enabled {
		mark = "✓"
	}
	symbol := resolve.FallbackGeneric
	if d.Symbol != nil {
		symbol = *d.Symbol
	}
	color := ""
	if d.Color != nil {
		color = *d.Color
	}
	line := fmt.Sprintf("%s %s %s", mark, symbol, ui.Colored(color, d.Key))
	if d.SigDateDelta != nil {
		line += ui.DimStyle.Render(fmt.Sprintf("  remind %dd ahead", *d.SigDateDelta))
	}
	if d.SigRemind != nil {
		line += ui.DimStyle.Render("  " + *d.SigRemind)
	}
	return line
}

func (m Model) renderTraitSettings() string {
	if len(m.traitDefaults) == 0 {
		return ui.DimStyle.Render("no fields configured")
	}
	var b strings.Builder
	for _, d := range m.traitDefaults {
		mark := "☐"
		if d.Enabled {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s %s", mark, d.Symbol, ui.Colored(d.Color, d.Key))
		switch {
		case d.IsDate:
			line += ui.DimStyle.Render("  (date)")
		case d.IsContact:
			line += ui.DimStyle.Render("  (contact)")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
