package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/ppl/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "ppl.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunAddAllFields(t *testing.T) {
	s := openTestStore(t)
	_, err := s.CreatePerson("Ana", true)
	require.NoError(t, err)

	report := runAdd(s, nil, "Cara,CC", addOptions{
		Tier:     "Friends",
		Phone:    "555-9876",
		Email:    "cara@example.com",
		From:     "Porto",
		Relation: "partner",
		Bday:     "1991-02-03",
	})

	for _, line := range report {
		require.True(t, strings.HasPrefix(line, "ok"), line)
	}

	people, err := s.People()
	require.NoError(t, err)
	require.Len(t, people, 2)

	traits, err := s.Traits()
	require.NoError(t, err)
	require.Len(t, traits, 2)
	require.Equal(t, "alias", traits[0].Key)
	require.Equal(t, "CC", traits[0].Value)
	require.Equal(t, "from", traits[1].Key)
	require.Equal(t, "Porto", traits[1].Value)

	tiers, err := s.Tiers()
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	require.Equal(t, "Friends", tiers[0].Name)

	contacts, err := s.Contacts()
	require.NoError(t, err)
	require.Len(t, contacts, 2) // phone, email
	for _, c := range contacts {
		require.NotNil(t, c.Designator)
		require.Equal(t, "primary", *c.Designator)
	}

	sds, err := s.SigDates()
	require.NoError(t, err)
	require.Len(t, sds, 1)
	require.Equal(t, "birthday", sds[0].Event)
	require.Equal(t, "1991-02-03", sds[0].Date)
	require.True(t, sds[0].DoRemind)

	self, err := s.Self()
	require.NoError(t, err)
	cara := people[1]
	rels, err := s.Relations()
	require.NoError(t, err)
	require.Len(t, rels, 1)
	require.Equal(t, "partner", rels[0].Type)
	require.Equal(t, self.ID, rels[0].PplIDA)
	require.Equal(t, cara.ID, rels[0].PplIDB)
}

func TestRunAddContinuesPastBadDate(t *testing.T) {
	s := openTestStore(t)
	_, err := s.CreatePerson("Ana", true)
	require.NoError(t, err)

	report := runAdd(s, nil, "Cara", addOptions{
		Bday:    "not a date",
		Wedding: "2015-06-20",
		Phone:   "555-9876",
	})

	var sawErr bool
	for _, line := range report {
		if strings.HasPrefix(line, "err bday") {
			sawErr = true
		}
	}
	require.True(t, sawErr)

	// The later fields still landed.
	sds, err := s.SigDates()
	require.NoError(t, err)
	require.Len(t, sds, 1)
	require.Equal(t, "wedding", sds[0].Event)
	require.False(t, sds[0].DoRemind)

	contacts, err := s.Contacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
}

func TestRunAddWithoutSelfStillAddsPerson(t *testing.T) {
	s := openTestStore(t)

	report := runAdd(s, nil, "Cara", addOptions{
		Phone:    "555-9876",
		Relation: "partner",
	})

	var sawRelErr bool
	for _, line := range report {
		if strings.HasPrefix(line, "err relation") {
			sawRelErr = true
		} else {
			require.True(t, strings.HasPrefix(line, "ok"), line)
		}
	}
	require.True(t, sawRelErr)

	people, err := s.People()
	require.NoError(t, err)
	require.Len(t, people, 1)

	contacts, err := s.Contacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	rels, err := s.Relations()
	require.NoError(t, err)
	require.Empty(t, rels)
}

func TestRunAddRequiresName(t *testing.T) {
	s := openTestStore(t)
	report := runAdd(s, nil, " , nope", addOptions{})
	require.Len(t, report, 1)
	require.True(t, strings.HasPrefix(report[0], "err person"))
}
