package wizard

import (
	"strings"
	"time"

	"github.com/jeanpaul/ppl/internal/dates"
)

// Step identifies one screen of the init wizard.
type Step int

const (
	StepWelcome Step = iota
	StepName
	StepBirthday
	StepPlace
	StepOf
	StepWith
	StepTiers
	StepTraits
	StepReview
)

// stepDef is one row of the wizard's state table. advance consumes the input
// buffer and captures the step's data, returning false to stay in place.
// reset clears the captured data; it runs when the user retreats back into
// the step so re-entry starts fresh.
type stepDef struct {
	prompt  string
	advance func(*Model) bool
	reset   func(*Model)
}

var steps = map[Step]stepDef{
	StepWelcome: {
		prompt:  "welcome",
		advance: func(m *Model) bool { return true },
		reset:   func(m *Model) {},
	},
	StepName: {
		prompt: "> your name? (aliases comma separated after it)",
		advance: func(m *Model) bool {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return false
			}
			tokens := strings.Split(text, ",")
			for i := range tokens {
				tokens[i] = strings.TrimSpace(tokens[i])
			}
			m.name = tokens[0]
			m.nicks = nil
			if len(tokens) > 1 {
				m.nicks = tokens[1:]
			}
			return true
		},
		reset: func(m *Model) {
			m.name = ""
			m.nicks = nil
		},
	},
	StepBirthday: {
		prompt: "> your bday?",
		advance: func(m *Model) bool {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return false
			}
			parsed, err := dates.Parse(text)
			if err != nil {
				m.bdayErr = err.Error()
				return false
			}
			m.bday = parsed
			m.bdayErr = ""
			return true
		},
		reset: func(m *Model) {
			m.bday = time.Time{}
			m.bdayErr = ""
		},
	},
	StepPlace: {
		prompt: "> born where?",
		advance: func(m *Model) bool {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return false
			}
			m.place = text
			return true
		},
		reset: func(m *Model) { m.place = "" },
	},
	StepOf: {
		prompt: "> born of? (comma separated)",
		advance: func(m *Model) bool {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return false
			}
			m.ofPpl = splitNames(text)
			return true
		},
		reset: func(m *Model) { m.ofPpl = nil },
	},
	StepWith: {
		// The one optional step: empty input advances with no siblings.
		prompt: "> born with? (comma separated, empty if none)",
		advance: func(m *Model) bool {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.withPpl = nil
				return true
			}
			m.withPpl = splitNames(text)
			return true
		},
		reset: func(m *Model) { m.withPpl = nil },
	},
	StepTiers: {
		prompt:  "which of these groupings do you want?",
		advance: func(m *Model) bool { return true },
		reset:   func(m *Model) {},
	},
	StepTraits: {
		prompt:  "which of these default fields do you want?",
		advance: func(m *Model) bool { return true },
		reset:   func(m *Model) {},
	},
	StepReview: {
		prompt:  "review your responses below :)",
		advance: func(m *Model) bool { return false },
		reset:   func(m *Model) {},
	},
}

func splitNames(text string) []string {
	parts := strings.Split(text, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// tierChoice is one row of the tier checklist.
type tierChoice struct {
	Name     string
	Selected bool
}

// traitChoice is one row of the trait-type checklist, carrying the catalog
// presentation that commit writes to trait_defaults.
type traitChoice struct {
	Name      string
	Symbol    string
	Color     string
	IsDate    bool
	IsContact bool
	Selected  bool
}

func defaultTiers() []tierChoice {
	names := []string{"Family", "Bests", "Friends", "Acquaintances", "CoWorkers"}
	choices := make([]tierChoice, 0, len(names))
	for _, n := range names {
		choices = append(choices, tierChoice{Name: n, Selected: true})
	}
	return choices
}

func defaultTraits() []traitChoice {
	return []traitChoice{
		{Name: "alias", Symbol: "🏷️", Color: "VIOLET", Selected: true},
		{Name: "birthday", Symbol: "🎂", Color: "GOLD", IsDate: true, Selected: true},
		{Name: "wedding", Symbol: "💒", Color: "WHITE", IsDate: true, Selected: true},
		{Name: "met", Symbol: "🤝", Color: "PINK", IsDate: true, Selected: true},
		{Name: "phone", Symbol: "📞", Color: "TEAL", IsContact: true, Selected: true},
		{Name: "address", Symbol: "📬", Color: "RED", IsContact: true, Selected: true},
		{Name: "email", Symbol: "📧", Color: "GREEN", IsContact: true, Selected: true},
	}
}
