package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ppl.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesMigrations(t *testing.T) {
	s := setupStore(t)

	var version int
	require.NoError(t, s.Conn().QueryRow("PRAGMA user_version").Scan(&version))
	require.Equal(t, len(migrations), version)

	// Reopening an already-migrated database must be a no-op.
	s2, err := Open(s.Path)
	require.NoError(t, err)
	defer s2.Close()
}

func TestSelfPerson(t *testing.T) {
	s := setupStore(t)

	self, err := s.Self()
	require.NoError(t, err)
	require.Nil(t, self)

	me, err := s.CreatePerson("Ana", true)
	require.NoError(t, err)
	_, err = s.CreatePerson("Ben", false)
	require.NoError(t, err)

	self, err = s.Self()
	require.NoError(t, err)
	require.NotNil(t, self)
	require.Equal(t, me.ID, self.ID)
	require.True(t, self.Me)
}

func TestUpdatePersonSetsNick(t *testing.T) {
	s := setupStore(t)

	p, err := s.CreatePerson("Ana", false)
	require.NoError(t, err)

	nick := "Annie"
	require.NoError(t, s.UpdatePerson(p.ID, "Ana", &nick))

	got, err := s.GetPerson(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Annie", got.DisplayName())
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.UpdateTrait(999, "k", "v", false))
	require.NoError(t, s.UpdateContact(999, "phone", nil, "555"))
}

func TestTraitRoundTrip(t *testing.T) {
	s := setupStore(t)

	p, err := s.CreatePerson("Ana", false)
	require.NoError(t, err)
	tr, err := s.CreateTrait(p.ID, "from", "Lisbon", false)
	require.NoError(t, err)

	require.NoError(t, s.UpdateTrait(tr.ID, "hometown", "Porto", true))

	traits, err := s.Traits()
	require.NoError(t, err)
	require.Len(t, traits, 1)
	require.Equal(t, tr.ID, traits[0].ID)
	require.Equal(t, "hometown", traits[0].Key)
	require.Equal(t, "Porto", traits[0].Value)
	require.True(t, traits[0].Hidden)
}

func TestMergeMetaKeepsOtherKeys(t *testing.T) {
	s := setupStore(t)

	p, err := s.CreatePerson("Ana", true)
	require.NoError(t, err)

	require.NoError(t, s.MergeMeta(p.ID, func(m *PersonMeta) {
		m.InstallID = "abc-123"
	}))
	require.NoError(t, s.MergeMeta(p.ID, func(m *PersonMeta) {
		m.LastReminded = "2026-08-31"
	}))

	got, err := s.GetPerson(p.ID)
	require.NoError(t, err)
	meta := got.MetaDoc()
	require.Equal(t, "abc-123", meta.InstallID)
	require.Equal(t, "2026-08-31", meta.LastReminded)
}

func TestDefaultsCatalog(t *testing.T) {
	s := setupStore(t)

	delta := int64(7)
	_, err := s.CreateTierDefault("Family", true, true, nil, nil, &delta, nil)
	require.NoError(t, err)
	_, err = s.CreateTraitDefault("Birthday", true, true, true, false, "GOLD", "🎂")
	require.NoError(t, err)

	tiers, err := s.TierDefaults()
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	require.Equal(t, int64(7), *tiers[0].SigDateDelta)

	traits, err := s.TraitDefaults()
	require.NoError(t, err)
	require.Len(t, traits, 1)
	require.True(t, traits[0].IsDate)
	require.False(t, traits[0].IsContact)
}

func TestRelationsBetweenPeople(t *testing.T) {
	s := setupStore(t)

	me, err := s.CreatePerson("Ana", true)
	require.NoError(t, err)
	other, err := s.CreatePerson("Ben", false)
	require.NoError(t, err)

	entered := "2010-06-01"
	r, err := s.CreateRelation(me.ID, other.ID, "sibling", &entered, nil)
	require.NoError(t, err)

	require.NoError(t, s.UpdateRelation(r.ID, "partner", &entered, nil))

	rels, err := s.Relations()
	require.NoError(t, err)
	require.Len(t, rels, 1)
	require.Equal(t, "partner", rels[0].Type)
	require.Equal(t, me.ID, rels[0].PplIDA)
	require.Equal(t, other.ID, rels[0].PplIDB)
	require.False(t, rels[0].Superseded)
}

func TestContactDesignatorOptional(t *testing.T) {
	s := setupStore(t)
	p, err := s.CreatePerson("Ana", true)
	require.NoError(t, err)

	_, err = s.CreateContact(p.ID, "phone", nil, "555-1234")
	require.NoError(t, err)
	primary := "primary"
	c, err := s.CreateContact(p.ID, "email", &primary, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, c.Designator)
	require.Equal(t, "primary", *c.Designator)

	contacts, err := s.Contacts()
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	require.Nil(t, contacts[0].Designator)
	require.NotNil(t, contacts[1].Designator)
	require.Equal(t, "primary", *contacts[1].Designator)
}
