package wizard

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/ppl/internal/store"
)

func setup(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "ppl.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s, nil), s
}

func key(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func enter(m Model) Model {
	return key(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = key(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func backspace(m Model) Model {
	return key(m, tea.KeyMsg{Type: tea.KeyBackspace})
}

func TestNameStepSplitsAliases(t *testing.T) {
	m, _ := setup(t)
	m = enter(m) // Welcome -> Name
	require.Equal(t, StepName, m.Step())

	m = typeText(m, "Ana,Annie,An")
	m = enter(m)

	require.Equal(t, StepBirthday, m.Step())
	require.Equal(t, "Ana", m.name)
	require.Equal(t, []string{"Annie", "An"}, m.nicks)
	require.Empty(t, m.input.Value())
}

func TestNameStepRequiresInput(t *testing.T) {
	m, _ := setup(t)
	m = enter(m)
	m = enter(m) // empty input does not advance
	require.Equal(t, StepName, m.Step())
}

func TestBirthdayParseFailureStaysInPlace(t *testing.T) {
	m, _ := setup(t)
	m = enter(m)
	m = typeText(m, "Ana")
	m = enter(m)

	m = typeText(m, "not a date")
	m = enter(m)
	require.Equal(t, StepBirthday, m.Step())
	require.NotEmpty(t, m.bdayErr)

	// Clear the buffer and enter a valid date; the error clears too.
	for range "not a date" {
		m = backspace(m)
	}
	m = typeText(m, "1990-05-12")
	m = enter(m)
	require.Equal(t, StepPlace, m.Step())
	require.Empty(t, m.bdayErr)
	require.Equal(t, "1990-05-12", m.bday.Format("2006-01-02"))
}

func TestRetreatClearsCapturedData(t *testing.T) {
	m, _ := setup(t)
	m = enter(m)
	m = typeText(m, "Ana")
	m = enter(m)
	m = typeText(m, "1990-05-12")
	m = enter(m)
	require.Equal(t, StepPlace, m.Step())

	// Backspace on an empty buffer retreats to Birthday and resets it.
	m = backspace(m)
	require.Equal(t, StepBirthday, m.Step())
	require.True(t, m.bday.IsZero())

	// One more goes back to Name and clears the name and aliases.
	m = backspace(m)
	require.Equal(t, StepName, m.Step())
	require.Empty(t, m.name)
	require.Empty(t, m.nicks)
}

func TestWithStepIsOptional(t *testing.T) {
	m, _ := setup(t)
	m = advanceToWith(m)
	require.Equal(t, StepWith, m.Step())

	m = enter(m) // empty input is allowed here
	require.Equal(t, StepTiers, m.Step())
	require.Empty(t, m.withPpl)
}

func TestTierChecklistToggleAndAdd(t *testing.T) {
	m, _ := setup(t)
	m = advanceToWith(m)
	m = enter(m)
	require.Equal(t, StepTiers, m.Step())

	require.True(t, m.tierList[0].Selected)
	m = key(m, tea.KeyMsg{Type: tea.KeySpace})
	require.False(t, m.tierList[0].Selected)

	m = key(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.tierCursor)

	// Tab switches to add-new-item entry; Enter appends pre-selected.
	m = key(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "Chess Club")
	m = enter(m)
	require.Equal(t, StepTiers, m.Step())
	last := m.tierList[len(m.tierList)-1]
	require.Equal(t, "Chess Club", last.Name)
	require.True(t, last.Selected)

	// Back to list mode, Enter advances.
	m = key(m, tea.KeyMsg{Type: tea.KeyTab})
	m = enter(m)
	require.Equal(t, StepTraits, m.Step())
}

func TestCommitWritesEverything(t *testing.T) {
	m, s := setup(t)
	m = enter(m)
	m = typeText(m, "Ana,Annie")
	m = enter(m)
	m = typeText(m, "1990-05-12")
	m = enter(m)
	m = typeText(m, "Lisbon")
	m = enter(m)
	m = typeText(m, "Maria,Jorge")
	m = enter(m)
	m = typeText(m, "Ben")
	m = enter(m)
	m = enter(m) // tiers
	m = enter(m) // traits
	require.Equal(t, StepReview, m.Step())

	m = key(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.Committed())

	self, err := s.Self()
	require.NoError(t, err)
	require.NotNil(t, self)
	require.Equal(t, "Ana", self.Name)
	require.NotEmpty(t, self.MetaDoc().InstallID)

	people, err := s.People()
	require.NoError(t, err)
	require.Len(t, people, 4) // self + 2 parents + 1 sibling

	traits, err := s.Traits()
	require.NoError(t, err)
	require.Len(t, traits, 1)
	require.Equal(t, "alias", traits[0].Key)
	require.Equal(t, "Annie", traits[0].Value)

	sds, err := s.SigDates()
	require.NoError(t, err)
	require.Len(t, sds, 1)
	require.Equal(t, "1990-05-12", sds[0].Date)
	require.True(t, sds[0].DoRemind)

	contacts, err := s.Contacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.Equal(t, "address", contacts[0].Type)
	require.Equal(t, "Lisbon", contacts[0].Value)

	rels, err := s.Relations()
	require.NoError(t, err)
	require.Len(t, rels, 3)
	parents := 0
	siblings := 0
	for _, r := range rels {
		switch r.Type {
		case "parent":
			parents++
			require.NotNil(t, r.DateEntered)
			require.Equal(t, "1990-05-12", *r.DateEntered)
		case "sibling":
			siblings++
		}
		require.Equal(t, self.ID, r.PplIDB)
	}
	require.Equal(t, 2, parents)
	require.Equal(t, 1, siblings)

	tierDefs, err := s.TierDefaults()
	require.NoError(t, err)
	require.Len(t, tierDefs, 5)

	traitDefs, err := s.TraitDefaults()
	require.NoError(t, err)
	require.Len(t, traitDefs, 7)
	for _, td := range traitDefs {
		require.True(t, td.Suggested)
		require.True(t, td.Enabled)
	}
}

func TestCommitRunsOnceAndRetreatLocksAfter(t *testing.T) {
	m, s := setup(t)
	m = enter(m)
	m = typeText(m, "Ana")
	m = enter(m)
	m = typeText(m, "1990-05-12")
	m = enter(m)
	m = typeText(m, "Lisbon")
	m = enter(m)
	m = typeText(m, "Maria")
	m = enter(m)
	m = enter(m) // with (empty)
	m = enter(m) // tiers
	m = enter(m) // traits

	m = key(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m = key(m, tea.KeyMsg{Type: tea.KeyCtrlD}) // second commit is ignored

	people, err := s.People()
	require.NoError(t, err)
	require.Len(t, people, 2)

	// No retreating out of a committed review screen.
	m = backspace(m)
	require.Equal(t, StepReview, m.Step())
}

func advanceToWith(m Model) Model {
	m = enter(m)
	m = typeText(m, "Ana")
	m = enter(m)
	m = typeText(m, "1990-05-12")
	m = enter(m)
	m = typeText(m, "Lisbon")
	m = enter(m)
	m = typeText(m, "Maria")
	m = enter(m)
	return m
}
