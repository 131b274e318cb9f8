// Package browser implements the steady-state TUI: a tabbed view over every
// person with inline editing of their records, a year calendar of reminder
// dates, and read-only dumps of the tier and trait catalogs.
package browser

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeanpaul/ppl/internal/store"
)

// Tab is one of the top-level views.
type Tab int

const (
	TabPpl Tab = iota
	TabCalendar
	TabTierSettings
	TabTraitSettings
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabPpl:
		return "Ppl"
	case TabCalendar:
		return "Calendar"
	case TabTierSettings:
		return "TierSettings"
	case TabTraitSettings:
		return "TraitSettings"
	}
	return "?"
}

// mode tracks where key events go on the Ppl tab.
type mode int

const (
	modeBrowse mode = iota
	modeEditList
	modeEditField
)

// Model is the browser's bubbletea model. All record lists are full table
// snapshots, reloaded after every write so derived presentation stays
// consistent with the store.
type Model struct {
	st  *store.Store
	log *zap.Logger

	tab  Tab
	mode mode

	people       []store.Person
	personCursor int

	contacts  []store.Contact
	sigDates  []store.SigDate
	traits    []store.Trait
	tiers     []store.Tier
	relations []store.Relation

	tierDefaults  []store.TierDefault
	traitDefaults []store.TraitDefault

	showContacts  bool
	showDates     bool
	showTraits    bool
	showTiers     bool
	showRelations bool

	editables  []Editable
	editCursor int

	inputs []textinput.Model
	focus  int
	status string

	today time.Time

	width, height int
}

// New builds the browser over an open store, loading every table up front.
func New(st *store.Store, log *zap.Logger) (Model, error) {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = "> "
	}

	m := Model{
		st:            st,
		log:           log,
		inputs:        inputs,
		showContacts:  true,
		showDates:     true,
		showTraits:    true,
		showTiers:     true,
		showRelations: true,
		today:         time.Now(),
	}
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reload refreshes every list from the store and clamps the cursors.
func (m *Model) reload() error {
	var err error
	if m.people, err = m.st.People(); err != nil {
		return err
	}
	if m.contacts, err = m.st.Contacts(); err != nil {
		return err
	}
	if m.sigDates, err = m.st.SigDates(); err != nil {
		return err
	}
	if m.traits, err = m.st.Traits(); err != nil {
		return err
	}
	if m.tiers, err = m.st.Tiers(); err != nil {
		return err
	}
	if m.relations, err = m.st.Relations(); err != nil {
		return err
	}
	if m.tierDefaults, err = m.st.TierDefaults(); err != nil {
		return err
	}
	if m.traitDefaults, err = m.st.TraitDefaults(); err != nil {
		return err
	}

	m.personCursor = clampCursor(m.personCursor, len(m.people))
	m.rebuildEditables()
	return nil
}

// selected returns the person under the cursor, nil when the store is empty.
func (m Model) selected() *store.Person {
	if len(m.people) == 0 {
		return nil
	}
	return &m.people[m.personCursor]
}

func (m Model) personTraits(id int64) []store.Trait {
	var out []store.Trait
	for _, t := range m.traits {
		if t.PplID == id && !t.Hidden {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) personTiers(id int64) []store.Tier {
	var out []store.Tier
	for _, t := range m.tiers {
		if t.PplID == id {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) personContacts(id int64) []store.Contact {
	var out []store.Contact
	for _, c := range m.contacts {
		if c.PplID == id {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) personSigDates(id int64) []store.SigDate {
	var out []store.SigDate
	for _, d := range m.sigDates {
		if d.PplID == id {
			out = append(out, d)
		}
	}
	return out
}

// personRelations returns the edges pointing at this person; the wizard and
// the add flow always record the self person on the B side.
func (m Model) personRelations(id int64) []store.Relation {
	var out []store.Relation
	for _, r := range m.relations {
		if r.PplIDB == id && !r.Superseded {
			out = append(out, r)
		}
	}
	return out
}

// rebuildEditables projects the selected person's visible records into the
// edit list, in the same order the detail pane renders them.
func (m *Model) rebuildEditables() {
	m.editables = nil
	p := m.selected()
	if p == nil {
		m.editCursor = 0
		return
	}
	if m.showContacts {
		for _, c := range m.personContacts(p.ID) {
			m.editables = append(m.editables, contactEditable{c: c})
		}
	}
	if m.showDates {
		for _, d := range m.personSigDates(p.ID) {
			m.editables = append(m.editables, sigDateEditable{d: d})
		}
	}
	if m.showTraits {
		for _, t := range m.personTraits(p.ID) {
			m.editables = append(m.editables, traitEditable{t: t})
		}
	}
	if m.showTiers {
		for _, t := range m.personTiers(p.ID) {
			m.editables = append(m.editables, tierEditable{t: t})
		}
	}
	if m.showRelations {
		for _, r := range m.personRelations(p.ID) {
			m.editables = append(m.editables, relationEditable{r: r})
		}
	}
	m.editCursor = clampCursor(m.editCursor, len(m.editables))
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
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			switch m.mode {
			case modeEditField:
				m.mode = modeEditList
				m.status = ""
				return m, nil
			case modeEditList:
				m.mode = modeBrowse
				m.status = ""
				return m, nil
			}
			return m, tea.Quit

		case tea.KeyTab:
			if m.mode == modeEditField {
				m.cycleFocus(1)
				return m, nil
			}
			m.tab = (m.tab + 1) % tabCount
			return m, nil

		case tea.KeyShiftTab:
			if m.mode == modeEditField {
				m.cycleFocus(-1)
				return m, nil
			}
			m.tab = (m.tab + tabCount - 1) % tabCount
			return m, nil

		case tea.KeyUp:
			m.move(-1)
			return m, nil

		case tea.KeyDown:
			m.move(1)
			return m, nil

		case tea.KeyEnter:
			return m.handleEnter()
		}

		if m.mode == modeEditField {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "e":
			if m.tab == TabPpl && m.selected() != nil {
				if m.mode == modeBrowse {
					m.mode = modeEditList
					m.rebuildEditables()
				} else {
					m.mode = modeBrowse
				}
				m.status = ""
			}
			return m, nil
		case "c":
			m.toggleCategory(&m.showContacts)
			return m, nil
		case "d":
			m.toggleCategory(&m.showDates)
			return m, nil
		case "r":
			m.toggleCategory(&m.showTraits)
			return m, nil
		case "i":
			m.toggleCategory(&m.showTiers)
			return m, nil
		case "l":
			m.toggleCategory(&m.showRelations)
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) toggleCategory(flag *bool) {
	if m.tab != TabPpl || m.mode == modeEditField {
		return
	}
	*flag = !*flag
	m.rebuildEditables()
}

func (m *Model) move(delta int) {
	if m.tab != TabPpl {
		return
	}
	switch m.mode {
	case modeBrowse:
		prev := m.personCursor
		m.personCursor = clampCursor(m.personCursor+delta, len(m.people))
		if m.personCursor != prev {
			m.editCursor = 0
			m.rebuildEditables()
		}
	case modeEditList:
		m.editCursor = clampCursor(m.editCursor+delta, len(m.editables))
	}
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.tab != TabPpl {
		return m, nil
	}
	switch m.mode {
	case modeEditList:
		if len(m.editables) == 0 {
			return m, nil
		}
		m.enterEditField()
		return m, nil
	case modeEditField:
		m.applyEdit()
		return m, nil
	}
	return m, nil
}

// enterEditField seeds the input widgets from the selected editable and
// focuses the first one.
func (m *Model) enterEditField() {
	ed := m.editables[m.editCursor]
	fields := ed.Fields()
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
		if i < len(fields) {
			m.inputs[i].SetValue(fields[i].Value)
		}
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.mode = modeEditField
	m.status = ""
}

func (m *Model) cycleFocus(delta int) {
	ed := m.editables[m.editCursor]
	n := ed.FieldCount()
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	m.inputs[m.focus].Focus()
}

// applyEdit writes the input values back through the editable's update
// operation. Failures land in the status line and keep the edit pane open;
// success reloads everything and drops back to the edit list.
func (m *Model) applyEdit() {
	ed := m.editables[m.editCursor]
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = m.inputs[i].Value()
	}
	if err := ed.Apply(m.st, values); err != nil {
		m.status = err.Error()
		if m.log != nil {
			m.log.Warn("edit failed",
				zap.String("kind", ed.Kind()),
				zap.Int64("id", ed.ID()),
				zap.Error(err))
		}
		return
	}
	if m.log != nil {
		m.log.Info("record updated",
			zap.String("kind", ed.Kind()),
			zap.Int64("id", ed.ID()))
	}
	m.status = ""
	if err := m.reload(); err != nil {
		m.status = err.Error()
		return
	}
	m.mode = modeEditList
}

func clampCursor(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
