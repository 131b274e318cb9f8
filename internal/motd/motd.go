// Package motd computes the daily reminder digest: upcoming recurring dates
// per person, filtered by a tier-derived notice window and per-person daily
// suppression. Computing, rendering and persisting the suppression stamp are
// kept separate so each is testable on its own.
package motd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jeanpaul/ppl/internal/dates"
	"github.com/jeanpaul/ppl/internal/store"
	"github.com/jeanpaul/ppl/internal/ui"
)

// Mode controls how often a person's reminders may be shown. Only OnlyOnce
// has distinct behavior today; the other declared modes all permit showing.
type Mode string

const (
	ModeOnlyOnce   Mode = "OnlyOnce"
	ModeOnceHourly Mode = "OnceHourly"
	ModeRandomly   Mode = "Randomly"
	ModeAlways     Mode = "Always"
	ModeNever      Mode = "Never"
)

// Reminder is one due date for one person.
type Reminder struct {
	Event   string
	Symbol  string // date-flagged catalog icon; empty means none matched
	DaysOut int
	Years   int
}

// PersonDigest groups a person's due reminders with the presentation and
// bookkeeping resolved for them.
type PersonDigest struct {
	PersonID   int64
	Name       string
	TierSymbol string
	TierColor  string
	Reminders  []Reminder
	NeedsStamp bool // write lastReminded=today after rendering
}

// Inputs is everything Compute reads. Today is passed in so tests can pin it.
type Inputs struct {
	People        []store.Person
	Dates         []store.SigDate
	Tiers         []store.Tier
	TierDefaults  []store.TierDefault
	TraitDefaults []store.TraitDefault
	Today         time.Time
}

// Compute produces the digest, person by person, in people order. People with
// no resolvable notice window and people suppressed for today are omitted.
func Compute(in Inputs) []PersonDigest {
	var out []PersonDigest
	for _, p := range in.People {
		var own []store.Tier
		for _, t := range in.Tiers {
			if t.PplID == p.ID {
				own = append(own, t)
			}
		}

		window, ok := resolveWindow(own, in.TierDefaults)
		if !ok {
			continue
		}
		mode := resolveMode(own, in.TierDefaults)

		if mode == ModeOnlyOnce && suppressedToday(p, in.Today) {
			continue
		}

		d := PersonDigest{
			PersonID:   p.ID,
			Name:       p.DisplayName(),
			TierSymbol: firstTierField(own, in.TierDefaults, func(t store.Tier) *string { return t.Symbol }, func(td store.TierDefault) *string { return td.Symbol }),
			TierColor:  firstTierField(own, in.TierDefaults, func(t store.Tier) *string { return t.Color }, func(td store.TierDefault) *string { return td.Color }),
		}

		seen := map[string]bool{}
		for _, sd := range in.Dates {
			if sd.PplID != p.ID || !sd.DoRemind {
				continue
			}
			r, due := dueReminder(sd, in.Today, window, in.TraitDefaults)
			if !due {
				continue
			}
			key := fmt.Sprintf("%s|%d|%d", r.Event, r.DaysOut, r.Years)
			if seen[key] {
				continue
			}
			seen[key] = true
			d.Reminders = append(d.Reminders, r)
		}

		if len(d.Reminders) == 0 {
			continue
		}
		sort.Slice(d.Reminders, func(i, j int) bool {
			return d.Reminders[i].DaysOut < d.Reminders[j].DaysOut
		})
		d.NeedsStamp = mode == ModeOnlyOnce
		out = append(out, d)
	}
	return out
}

// dueReminder applies the window test against this year's anniversary first,
// then next year's when this year's is already past. A date can be due via at
// most one of the two checks.
func dueReminder(sd store.SigDate, today time.Time, window int, traitDefaults []store.TraitDefault) (Reminder, bool) {
	orig, err := dates.ParseISO(sd.Date)
	if err != nil {
		return Reminder{}, false
	}

	symbol := ""
	for _, td := range traitDefaults {
		if td.IsDate && td.Enabled && td.Key == sd.Event {
			symbol = td.Symbol
			break
		}
	}

	anniv := dates.Anniversary(orig, today.Year())
	days := dates.DaysBetween(today, anniv)
	if days >= 0 && days <= window {
		return Reminder{Event: sd.Event, Symbol: symbol, DaysOut: days, Years: today.Year() - orig.Year()}, true
	}
	if days < 0 {
		next := dates.Anniversary(orig, today.Year()+1)
		days = dates.DaysBetween(today, next)
		if days >= 0 && days <= window {
			return Reminder{Event: sd.Event, Symbol: symbol, DaysOut: days, Years: today.Year() + 1 - orig.Year()}, true
		}
	}
	return Reminder{}, false
}

// resolveWindow scans the person's own tiers for the first non-null notice
// window, then the global catalog. First match wins; this is deliberately not
// a minimum or maximum across tiers.
func resolveWindow(own []store.Tier, defaults []store.TierDefault) (int, bool) {
	for _, t := range own {
		if t.SigDateDelta != nil {
			return int(*t.SigDateDelta), true
		}
	}
	for _, td := range defaults {
		if td.SigDateDelta != nil {
			return int(*td.SigDateDelta), true
		}
	}
	return 0, false
}

// resolveMode finds a suppression mode the same way: the catalog entries for
// the person's own tiers first, then the global catalog, defaulting OnlyOnce.
func resolveMode(own []store.Tier, defaults []store.TierDefault) Mode {
	for _, t := range own {
		for _, td := range defaults {
			if td.Key == t.Name && td.SigRemind != nil && *td.SigRemind != "" {
				return Mode(*td.SigRemind)
			}
		}
	}
	for _, td := range defaults {
		if td.SigRemind != nil && *td.SigRemind != "" {
			return Mode(*td.SigRemind)
		}
	}
	return ModeOnlyOnce
}

func firstTierField(own []store.Tier, defaults []store.TierDefault, f func(store.Tier) *string, g func(store.TierDefault) *string) string {
	for _, t := range own {
		if v := f(t); v != nil && *v != "" {
			return *v
		}
	}
	for _, td := range defaults {
		if v := g(td); v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

// suppressedToday reports whether the OnlyOnce bookkeeping blocks this run.
// A missing or unparseable stamp, or one earlier than today, permits showing.
func suppressedToday(p store.Person, today time.Time) bool {
	stamp := p.MetaDoc().LastReminded
	if stamp == "" {
		return false
	}
	last, err := dates.ParseISO(stamp)
	if err != nil {
		return false
	}
	return !last.Before(dates.Truncate(today))
}

// Render formats the digest for the console, one line per due date.
func Render(digests []PersonDigest) string {
	var b strings.Builder
	for _, d := range digests {
		name := d.Name
		if d.TierSymbol != "" {
			name = d.TierSymbol + " " + name
		}
		name = ui.Colored(d.TierColor, name)
		for _, r := range d.Reminders {
			icon := r.Symbol
			if icon == "" {
				icon = fmt.Sprintf("%dd", r.DaysOut)
			}
			years := "years"
			if r.Years == 1 {
				years = "year"
			}
			fmt.Fprintf(&b, "%s in %dd: %s %s (%d %s)\n", icon, r.DaysOut, r.Event, name, r.Years, years)
		}
	}
	return b.String()
}

// Persist writes lastReminded=today for every digest that needs the stamp,
// merging the single meta key.
func Persist(s *store.Store, digests []PersonDigest, today time.Time) error {
	stamp := dates.FormatISO(today)
	for _, d := range digests {
		if !d.NeedsStamp {
			continue
		}
		if err := s.MergeMeta(d.PersonID, func(m *store.PersonMeta) {
			m.LastReminded = stamp
		}); err != nil {
			return err
		}
	}
	return nil
}
