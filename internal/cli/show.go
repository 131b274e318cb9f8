package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/ppl/internal/store"
)

var showYAML bool

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show everyone, or one person, with all their records",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		if _, err := requireSelf(s); err != nil {
			return err
		}

		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}
		dump, err := collectDump(s.st, filter)
		if err != nil {
			return err
		}
		if len(dump) == 0 {
			return fmt.Errorf("no person matching %q", filter)
		}

		if showYAML {
			out, err := yaml.Marshal(dump)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		}

		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return err
		}
		out, err := r.Render(renderMarkdown(dump))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "emit YAML instead of rendered markdown")
	rootCmd.AddCommand(showCmd)
}

type contactDump struct {
	Type       string  `yaml:"type"`
	Designator *string `yaml:"designator,omitempty"`
	Value      string  `yaml:"value"`
}

type dateDump struct {
	Event  string `yaml:"event"`
	Date   string `yaml:"date"`
	Remind bool   `yaml:"remind"`
}

type traitDump struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type relationDump struct {
	Type    string  `yaml:"type"`
	Of      string  `yaml:"of"`
	Entered *string `yaml:"entered,omitempty"`
	Ended   *string `yaml:"ended,omitempty"`
}

type personDump struct {
	Name      string         `yaml:"name"`
	Nick      *string        `yaml:"nick,omitempty"`
	Me        bool           `yaml:"me,omitempty"`
	Circles   []string       `yaml:"circles,omitempty"`
	Contacts  []contactDump  `yaml:"contacts,omitempty"`
	Dates     []dateDump     `yaml:"dates,omitempty"`
	Traits    []traitDump    `yaml:"traits,omitempty"`
	Relations []relationDump `yaml:"relations,omitempty"`
}

// collectDump aggregates every record under its person. An empty filter
// matches everyone; otherwise name and nickname match case-insensitively.
func collectDump(st *store.Store, filter string) ([]personDump, error) {
	people, err := st.People()
	if err != nil {
		return nil, err
	}
	contacts, err := st.Contacts()
	if err != nil {
		return nil, err
	}
	sigDates, err := st.SigDates()
	if err != nil {
		return nil, err
	}
	traits, err := st.Traits()
	if err != nil {
		return nil, err
	}
	tiers, err := st.Tiers()
	if err != nil {
		return nil, err
	}
	relations, err := st.Relations()
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(people))
	for _, p := range people {
		names[p.ID] = p.DisplayName()
	}

	var out []personDump
	for _, p := range people {
		if !matchPerson(p, filter) {
			continue
		}
		d := personDump{Name: p.Name, Nick: p.Nick, Me: p.Me}
		for _, t := range tiers {
			if t.PplID == p.ID {
				d.Circles = append(d.Circles, t.Name)
			}
		}
		for _, c := range contacts {
			if c.PplID == p.ID {
				d.Contacts = append(d.Contacts, contactDump{Type: c.Type, Designator: c.Designator, Value: c.Value})
			}
		}
		for _, sd := range sigDates {
			if sd.PplID == p.ID {
				d.Dates = append(d.Dates, dateDump{Event: sd.Event, Date: sd.Date, Remind: sd.DoRemind})
			}
		}
		for _, t := range traits {
			if t.PplID == p.ID && !t.Hidden {
				d.Traits = append(d.Traits, traitDump{Key: t.Key, Value: t.Value})
			}
		}
		for _, r := range relations {
			if r.PplIDB == p.ID && !r.Superseded {
				d.Relations = append(d.Relations, relationDump{
					Type:    r.Type,
					Of:      names[r.PplIDA],
					Entered: r.DateEntered,
					Ended:   r.DateEnded,
				})
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func matchPerson(p store.Person, filter string) bool {
	if filter == "" {
		return true
	}
	if strings.EqualFold(p.Name, filter) {
		return true
	}
	return p.Nick != nil && strings.EqualFold(*p.Nick, filter)
}

func renderMarkdown(dump []personDump) string {
	var b strings.Builder
	b.WriteString("# ppl\n\n")
	for _, d := range dump {
		b.WriteString("## " + d.Name)
		if d.Nick != nil {
			b.WriteString(" (aka " + *d.Nick + ")")
		}
		if d.Me {
			b.WriteString(" ⭐")
		}
		b.WriteString("\n\n")

		if len(d.Circles) > 0 {
			b.WriteString("*" + strings.Join(d.Circles, ", ") + "*\n\n")
		}
		for _, c := range d.Contacts {
			label := c.Type
			if c.Designator != nil {
				label += " (" + *c.Designator + ")"
			}
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", label, c.Value))
		}
		for _, sd := range d.Dates {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", sd.Event, sd.Date))
		}
		for _, t := range d.Traits {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", t.Key, t.Value))
		}
		for _, r := range d.Relations {
			b.WriteString(fmt.Sprintf("- %s of %s\n", r.Type, r.Of))
		}
		b.WriteString("\n")
	}
	return b.String()
}
