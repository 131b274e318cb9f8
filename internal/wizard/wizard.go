// Package wizard implements the one-time init flow: a linear sequence of
// guided data-entry screens that bootstraps the self person plus the starter
// tier and trait catalogs.
package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeanpaul/ppl/internal/store"
	"github.com/jeanpaul/ppl/internal/ui"
)

// Model is the wizard's bubbletea model. One screen per Step, one shared
// input buffer, cleared on every transition.
type Model struct {
	st  *store.Store
	log *zap.Logger

	step  Step
	input textinput.Model

	name    string
	nicks   []string
	bday    time.Time
	bdayErr string
	place   string
	ofPpl   []string
	withPpl []string

	tierList    []tierChoice
	tierCursor  int
	tierEditing bool

	traitList    []traitChoice
	traitCursor  int
	traitEditing bool

	review    []string // commit outcome log, shown on the Review screen
	committed bool

	width, height int
}

// New builds the wizard over an open store.
func New(st *store.Store, log *zap.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		st:        st,
		log:       log,
		step:      StepWelcome,
		input:     ti,
		tierList:  defaultTiers(),
		traitList: defaultTraits(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleEnter()

		case tea.KeyBackspace:
			if m.input.Value() == "" {
				m.retreat()
				return m, nil
			}

		case tea.KeyUp:
			switch {
			case m.step == StepTiers && !m.tierEditing:
				m.tierCursor = clamp(m.tierCursor-1, len(m.tierList))
				return m, nil
			case m.step == StepTraits && !m.traitEditing:
				m.traitCursor = clamp(m.traitCursor-1, len(m.traitList))
				return m, nil
			}

		case tea.KeyDown:
			switch {
			case m.step == StepTiers && !m.tierEditing:
				m.tierCursor = clamp(m.tierCursor+1, len(m.tierList))
				return m, nil
			case m.step == StepTraits && !m.traitEditing:
				m.traitCursor = clamp(m.traitCursor+1, len(m.traitList))
				return m, nil
			}

		case tea.KeyTab:
			switch m.step {
			case StepTiers:
				m.tierEditing = !m.tierEditing
				m.input.Reset()
				return m, nil
			case StepTraits:
				m.traitEditing = !m.traitEditing
				m.input.Reset()
				return m, nil
			}

		case tea.KeyCtrlD:
			if m.step == StepReview && !m.committed {
				m.commit()
				return m, nil
			}

		case tea.KeySpace:
			switch {
			case m.step == StepTiers && !m.tierEditing:
				m.tierList[m.tierCursor].Selected = !m.tierList[m.tierCursor].Selected
				return m, nil
			case m.step == StepTraits && !m.traitEditing:
				m.traitList[m.traitCursor].Selected = !m.traitList[m.traitCursor].Selected
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.step {
	case StepTiers:
		if m.tierEditing {
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				m.tierList = append(m.tierList, tierChoice{Name: name, Selected: true})
			}
			m.input.Reset()
			return m, nil
		}
	case StepTraits:
		if m.traitEditing {
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				m.traitList = append(m.traitList, traitChoice{Name: name, Selected: true})
			}
			m.input.Reset()
			return m, nil
		}
	case StepReview:
		if m.committed {
			return m, tea.Quit
		}
		return m, nil
	}

	if steps[m.step].advance(&m) {
		m.input.Reset()
		m.step++
	}
	return m, nil
}

// retreat moves one step back and clears whatever that step captured, so
// re-entry starts fresh.
func (m *Model) retreat() {
	if m.step == StepWelcome || m.committed {
		return
	}
	prev := m.step - 1
	steps[prev].reset(m)
	m.input.Reset()
	m.step = prev
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Step reports the current screen, for tests.
func (m Model) Step() Step { return m.step }

// Committed reports whether the Review screen has run its inserts.
func (m Model) Committed() bool { return m.committed }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("welcome to " + ui.TitleStyle.Render("ppl") + " your local, but everywhere lrm\n")
	b.WriteString(ui.HelpStyle.Render("press ") + ui.HelpKeyStyle.Render("Esc") +
		ui.HelpStyle.Render(" to cancel and quit, ") + ui.HelpKeyStyle.Render("Enter") +
		ui.HelpStyle.Render(" to submit and record your responses, ") + ui.HelpKeyStyle.Render("Backspace") +
		ui.HelpStyle.Render(" previous screen") + "\n\n")

	prompt := steps[m.step].prompt
	switch m.step {
	case StepWelcome:
		b.WriteString(ui.PromptStyle.Render(prompt) + "\n")

	case StepBirthday:
		b.WriteString(ui.PromptStyle.Render(prompt))
		if m.bdayErr != "" {
			b.WriteString(" " + ui.ErrorStyle.Render("> invalid ") + m.bdayErr)
		}
		b.WriteString("\n" + ui.InputActiveStyle.Render(m.input.View()) + "\n")

	case StepTiers:
		b.WriteString(ui.PromptStyle.Render(prompt) + " " + m.checklistHelp(countSelected(m.tierList), len(m.tierList)) + "\n")
		if m.tierEditing {
			b.WriteString(ui.InputActiveStyle.Render(m.input.View()) + "\n")
		} else {
			b.WriteString(m.renderTierList())
		}

	case StepTraits:
		b.WriteString(ui.PromptStyle.Render(prompt) + " " + m.checklistHelp(countSelectedTraits(m.traitList), len(m.traitList)) + "\n")
		if m.traitEditing {
			b.WriteString(ui.InputActiveStyle.Render(m.input.View()) + "\n")
		} else {
			b.WriteString(m.renderTraitList())
		}

	case StepReview:
		if m.committed {
			b.WriteString(ui.PromptStyle.Render("init complete, press Enter to exit") + "\n")
		} else {
			b.WriteString(ui.PromptStyle.Render(prompt) + "\n")
			b.WriteString(ui.HelpStyle.Render("if these look correct, press ") +
				ui.HelpKeyStyle.Render("Ctrl+D") + ui.HelpStyle.Render(" to complete init") + "\n")
		}

	default:
		b.WriteString(ui.PromptStyle.Render(prompt) + "\n")
		b.WriteString(ui.InputActiveStyle.Render(m.input.View()) + "\n")
	}

	b.WriteString(m.renderResponses())

	if m.step == StepReview && len(m.review) > 0 {
		b.WriteString("\n" + ui.DimStyle.Render("── log ──") + "\n")
		for _, line := range m.review {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func (m Model) checklistHelp(selected, total int) string {
	return ui.HelpStyle.Render("space") + " to select/deselect, " +
		ui.HelpStyle.Render("tab") + " to add new ones, " +
		ui.DimStyle.Render(fmt.Sprintf("%d/%d Selected", selected, total))
}

func (m Model) renderTierList() string {
	var b strings.Builder
	for i, t := range m.tierList {
		cursor := "  "
		if i == m.tierCursor {
			cursor = ">>"
		}
		if t.Selected {
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, ui.SelectedStyle.Render("✓ "+t.Name)))
		} else {
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, ui.DimStyle.Render("☐ "+t.Name)))
		}
	}
	return b.String()
}

func (m Model) renderTraitList() string {
	var b strings.Builder
	for i, t := range m.traitList {
		cursor := "  "
		if i == m.traitCursor {
			cursor = ">>"
		}
		label := fmt.Sprintf("%s %s", t.Symbol, t.Name)
		if t.Selected {
			b.WriteString(fmt.Sprintf("%s ✓ %s\n", cursor, ui.Colored(t.Color, label)))
		} else {
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, ui.DimStyle.Render("☐ "+label)))
		}
	}
	return b.String()
}

// renderResponses shows everything captured so far, growing step by step the
// way the answers accumulate.
func (m Model) renderResponses() string {
	type entry struct{ label, value string }
	var entries []entry

	entries = append(entries,
		entry{"name", m.name},
		entry{"nicks", strings.Join(m.nicks, ", ")},
	)
	if !m.bday.IsZero() {
		entries = append(entries, entry{"bday", m.bday.Format("2006-01-02")})
	}
	entries = append(entries, entry{"place", m.place})
	if m.step >= StepWith {
		entries = append(entries, entry{"of", strings.Join(m.ofPpl, ", ")})
	}
	if m.step >= StepTiers {
		entries = append(entries, entry{"with", strings.Join(m.withPpl, ", ")})
	}
	if m.step >= StepTraits {
		var names []string
		for _, t := range m.tierList {
			if t.Selected {
				names = append(names, t.Name)
			}
		}
		entries = append(entries, entry{"circles", strings.Join(names, ", ")})
	}
	if m.step >= StepReview {
		var names []string
		for _, t := range m.traitList {
			if t.Selected {
				names = append(names, t.Name)
			}
		}
		entries = append(entries, entry{"fields", strings.Join(names, ", ")})
	}

	var b strings.Builder
	wrote := false
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		if !wrote {
			b.WriteString("\n" + ui.DimStyle.Render("── responses ──") + "\n")
			wrote = true
		}
		b.WriteString(ui.TitleStyle.Render(e.label) + ": " + e.value + "\n")
	}
	return b.String()
}

func countSelected(list []tierChoice) int {
	n := 0
	for _, t := range list {
		if t.Selected {
			n++
		}
	}
	return n
}

func countSelectedTraits(list []traitChoice) int {
	n := 0
	for _, t := range list {
		if t.Selected {
			n++
		}
	}
	return n
}
