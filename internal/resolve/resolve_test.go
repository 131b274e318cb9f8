package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/ppl/internal/store"
)

func strp(s string) *string { return &s }

func TestInstanceOverrideWins(t *testing.T) {
	catalog := []store.TierDefault{
		{Key: "Family", Symbol: strp("★"), Color: strp("GOLD")},
	}
	tier := store.Tier{Name: "Family", Symbol: strp("♥"), Color: strp("RED")}

	p := TierPresentation(tier, catalog)
	require.Equal(t, "♥", p.Symbol)
	require.Equal(t, "RED", p.Color)
}

func TestCatalogFillsUnsetFields(t *testing.T) {
	catalog := []store.TierDefault{
		{Key: "Family", Symbol: strp("★"), Color: strp("GOLD")},
	}
	tier := store.Tier{Name: "Family"}

	p := TierPresentation(tier, catalog)
	require.Equal(t, "★", p.Symbol)
	require.Equal(t, "GOLD", p.Color)
}

func TestFirstMatchingCatalogEntryWins(t *testing.T) {
	catalog := []Entry{
		{Key: "Family", Symbol: "★"},
		{Key: "Family", Symbol: "☆"},
	}
	p := Resolve("", "", "Family", catalog, FallbackGeneric)
	require.Equal(t, "★", p.Symbol)
}

func TestUnmatchedFallsThrough(t *testing.T) {
	tier := store.Tier{Name: "Chess Club"}
	p := TierPresentation(tier, nil)
	require.Equal(t, FallbackGeneric, p.Symbol)
	require.Equal(t, "", p.Color)
}

func TestContactMatchRestrictedToContactEntries(t *testing.T) {
	catalog := []store.TraitDefault{
		{Key: "phone", Enabled: true, IsDate: true, Symbol: "🎂"},  // wrong flag
		{Key: "phone", Enabled: true, IsContact: true, Symbol: "📞"},
	}
	c := store.Contact{Type: "phone"}
	p := ContactPresentation(c, catalog)
	require.Equal(t, "📞", p.Symbol)
}

func TestDisabledCatalogEntriesSkipped(t *testing.T) {
	catalog := []store.TraitDefault{
		{Key: "Birthday", Enabled: false, IsDate: true, Symbol: "🎂"},
	}
	d := store.SigDate{Event: "Birthday", DoRemind: true}
	p := SigDatePresentation(d, catalog)
	require.Equal(t, FallbackReminder, p.Symbol)
}

func TestSigDateFallbackDependsOnRemindFlag(t *testing.T) {
	quiet := store.SigDate{Event: "founding", DoRemind: false}
	require.Equal(t, FallbackDate, SigDatePresentation(quiet, nil).Symbol)

	loud := store.SigDate{Event: "founding", DoRemind: true}
	require.Equal(t, FallbackReminder, SigDatePresentation(loud, nil).Symbol)
}
