// Package resolve implements the presentation resolution policy shared by the
// browser, the calendar and the reminder digest: a record instance's own
// icon/color wins, else the first matching catalog entry by key, else a
// generic fallback.
package resolve

import "github.com/jeanpaul/ppl/internal/store"

// Entry is a normalized catalog row. Empty strings mean unset.
type Entry struct {
	Key    string
	Symbol string
	Color  string
}

// Presentation is a resolved icon/color pair ready for rendering.
type Presentation struct {
	Symbol string
	Color  string
}

// Resolve applies the instance > catalog > fallback policy. The first catalog
// entry whose Key equals key wins; later duplicates are ignored.
func Resolve(overrideSymbol, overrideColor, key string, catalog []Entry, fallbackSymbol string) Presentation {
	p := Presentation{Symbol: overrideSymbol, Color: overrideColor}
	for _, e := range catalog {
		if e.Key != key {
			continue
		}
		if p.Symbol == "" {
			p.Symbol = e.Symbol
		}
		if p.Color == "" {
			p.Color = e.Color
		}
		break
	}
	if p.Symbol == "" {
		p.Symbol = fallbackSymbol
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TierCatalog adapts the tier_defaults catalog.
func TierCatalog(defaults []store.TierDefault) []Entry {
	entries := make([]Entry, 0, len(defaults))
	for _, d := range defaults {
		entries = append(entries, Entry{Key: d.Key, Symbol: deref(d.Symbol), Color: deref(d.Color)})
	}
	return entries
}

// TraitCatalog adapts the trait_defaults catalog. Disabled rows are skipped;
// pass filters to restrict to date-flagged or contact-flagged entries, the
// way each record kind matches against the catalog.
func TraitCatalog(defaults []store.TraitDefault, dateOnly, contactOnly bool) []Entry {
	entries := make([]Entry, 0, len(defaults))
	for _, d := range defaults {
		if !d.Enabled {
			continue
		}
		if dateOnly && !d.IsDate {
			continue
		}
		if contactOnly && !d.IsContact {
			continue
		}
		entries = append(entries, Entry{Key: d.Key, Symbol: d.Symbol, Color: d.Color})
	}
	return entries
}

// Fallback glyphs per record kind.
const (
	FallbackGeneric  = "ℹ️"
	FallbackContact  = "📇"
	FallbackDate     = "📅"
	FallbackReminder = "⏰"
	FallbackRelation = "🫂"
)

// TierPresentation resolves a tier assignment against the tier catalog.
func TierPresentation(t store.Tier, defaults []store.TierDefault) Presentation {
	return Resolve(deref(t.Symbol), deref(t.Color), t.Name, TierCatalog(defaults), FallbackGeneric)
}

// TraitPresentation resolves a trait against plain (non-date, non-contact)
// catalog entries.
func TraitPresentation(t store.Trait, defaults []store.TraitDefault) Presentation {
	var plain []Entry
	for _, d := range defaults {
		if !d.IsDate && !d.IsContact {
			plain = append(plain, Entry{Key: d.Key, Symbol: d.Symbol, Color: d.Color})
		}
	}
	return Resolve("", "", t.Key, plain, FallbackGeneric)
}

// SigDatePresentation resolves a significant date against date-flagged
// catalog entries. Reminder-enabled dates get the alarm fallback.
func SigDatePresentation(d store.SigDate, defaults []store.TraitDefault) Presentation {
	fallback := FallbackDate
	if d.DoRemind {
		fallback = FallbackReminder
	}
	return Resolve("", "", d.Event, TraitCatalog(defaults, true, false), fallback)
}

// ContactPresentation resolves a contact against contact-flagged catalog
// entries, matched on the contact's type.
func ContactPresentation(c store.Contact, defaults []store.TraitDefault) Presentation {
	return Resolve("", "", c.Type, TraitCatalog(defaults, false, true), FallbackContact)
}
