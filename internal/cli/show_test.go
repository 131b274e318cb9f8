package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/ppl/internal/store"
)

func seedShow(t *testing.T) *storeFixture {
	t.Helper()
	s := openTestStore(t)
	self, err := s.CreatePerson("Ana", true)
	require.NoError(t, err)
	other, err := s.CreatePerson("Ben", false)
	require.NoError(t, err)

	_, err = s.CreateContact(self.ID, "phone", nil, "555-1234")
	require.NoError(t, err)
	_, err = s.CreateSigDate(self.ID, "1990-05-12", "birthday", true)
	require.NoError(t, err)
	_, err = s.CreateTrait(self.ID, "alias", "Annie", false)
	require.NoError(t, err)
	_, err = s.CreateTrait(self.ID, "secret", "hush", true)
	require.NoError(t, err)
	_, err = s.CreateTier(self.ID, "Family")
	require.NoError(t, err)
	_, err = s.CreateRelation(other.ID, self.ID, "sibling", nil, nil)
	require.NoError(t, err)
	return &storeFixture{s: s, selfID: self.ID, otherID: other.ID}
}

type storeFixture struct {
	s       *store.Store
	selfID  int64
	otherID int64
}

func TestCollectDumpAggregates(t *testing.T) {
	fx := seedShow(t)

	dump, err := collectDump(fx.s, "")
	require.NoError(t, err)
	require.Len(t, dump, 2)

	ana := dump[0]
	require.Equal(t, "Ana", ana.Name)
	require.True(t, ana.Me)
	require.Equal(t, []string{"Family"}, ana.Circles)
	require.Len(t, ana.Contacts, 1)
	require.Len(t, ana.Dates, 1)
	require.Len(t, ana.Traits, 1) // hidden traits stay hidden
	require.Equal(t, "alias", ana.Traits[0].Key)
	require.Len(t, ana.Relations, 1)
	require.Equal(t, "Ben", ana.Relations[0].Of)
}

func TestCollectDumpFiltersByName(t *testing.T) {
	fx := seedShow(t)

	dump, err := collectDump(fx.s, "ben")
	require.NoError(t, err)
	require.Len(t, dump, 1)
	require.Equal(t, "Ben", dump[0].Name)

	dump, err = collectDump(fx.s, "nobody")
	require.NoError(t, err)
	require.Empty(t, dump)
}

func TestRenderMarkdownSections(t *testing.T) {
	fx := seedShow(t)
	dump, err := collectDump(fx.s, "ana")
	require.NoError(t, err)

	md := renderMarkdown(dump)
	require.Contains(t, md, "## Ana")
	require.Contains(t, md, "⭐")
	require.Contains(t, md, "*Family*")
	require.Contains(t, md, "**phone**: 555-1234")
	require.Contains(t, md, "**birthday**: 1990-05-12")
	require.Contains(t, md, "sibling of Ben")
	require.NotContains(t, md, "hush")
}

func TestExportWorkbook(t *testing.T) {
	fx := seedShow(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, exportWorkbook(fx.s, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t,
		[]string{"People", "Contacts", "Dates", "Traits", "Circles", "Relations"},
		f.GetSheetList())

	rows, err := f.GetRows("People")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 people
	require.Equal(t, "Ana", rows[1][0])
}
