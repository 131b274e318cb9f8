package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/ppl/internal/dates"
	"github.com/jeanpaul/ppl/internal/store"
)

var addOpts addOptions

// addOptions carries the optional fields of a one-shot person insert.
type addOptions struct {
	Tier     string
	Phone    string
	Email    string
	Address  string
	From     string
	Relation string
	Bday     string
	Wedding  string
	Met      string
}

var addCmd = &cobra.Command{
	Use:   "add <name[,alias...]>",
	Short: "Add a person and any of their records in one shot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		report := runAdd(s.st, s.log, args[0], addOpts)
		for _, line := range report {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addOpts.Tier, "tier", "", "relationship circle to place them in")
	addCmd.Flags().StringVar(&addOpts.Phone, "phone", "", "phone number")
	addCmd.Flags().StringVar(&addOpts.Email, "email", "", "email address")
	addCmd.Flags().StringVar(&addOpts.Address, "address", "", "mailing address")
	addCmd.Flags().StringVar(&addOpts.From, "from", "", "where they are from")
	addCmd.Flags().StringVar(&addOpts.Relation, "relation", "", "relation type to you (parent, sibling, partner, ...)")
	addCmd.Flags().StringVar(&addOpts.Bday, "bday", "", "birthday, free-form date")
	addCmd.Flags().StringVar(&addOpts.Wedding, "wedding", "", "wedding date, free-form")
	addCmd.Flags().StringVar(&addOpts.Met, "met", "", "date you met, free-form")
	rootCmd.AddCommand(addCmd)
}

// runAdd creates the person then attempts every optional field on its own;
// one field failing never blocks the ones after it.
func runAdd(st *store.Store, log *zap.Logger, nameArg string, opts addOptions) []string {
	var report []string
	step := func(what string, err error) {
		if err != nil {
			report = append(report, fmt.Sprintf("err %s: %v", what, err))
			if log != nil {
				log.Warn("add step failed", zap.String("step", what), zap.Error(err))
			}
			return
		}
		report = append(report, fmt.Sprintf("ok  %s", what))
	}

	tokens := strings.Split(nameArg, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	name := tokens[0]
	if name == "" {
		return []string{"err person: name is required"}
	}

	p, err := st.CreatePerson(name, false)
	step(fmt.Sprintf("person %q", name), err)
	if err != nil {
		return report
	}

	for _, alias := range tokens[1:] {
		if alias == "" {
			continue
		}
		_, err := st.CreateTrait(p.ID, "alias", alias, false)
		step(fmt.Sprintf("alias %q", alias), err)
	}

	if opts.Tier != "" {
		_, err := st.CreateTier(p.ID, opts.Tier)
		step(fmt.Sprintf("circle %q", opts.Tier), err)
	}
	primary := "primary"
	if opts.Phone != "" {
		_, err := st.CreateContact(p.ID, "phone", &primary, opts.Phone)
		step("phone", err)
	}
	if opts.Email != "" {
		_, err := st.CreateContact(p.ID, "email", &primary, opts.Email)
		step("email", err)
	}
	if opts.Address != "" {
		_, err := st.CreateContact(p.ID, "address", &primary, opts.Address)
		step("address", err)
	}
	if opts.From != "" {
		_, err := st.CreateTrait(p.ID, "from", opts.From, false)
		step("from", err)
	}

	addDate := func(what, text, event string, remind bool) {
		t, err := dates.Parse(text)
		if err != nil {
			step(what, err)
			return
		}
		_, err = st.CreateSigDate(p.ID, dates.FormatISO(t), event, remind)
		step(what, err)
	}
	if opts.Bday != "" {
		addDate("bday", opts.Bday, "birthday", true)
	}
	if opts.Wedding != "" {
		addDate("wedding", opts.Wedding, "wedding", false)
	}
	if opts.Met != "" {
		addDate("met", opts.Met, "met", false)
	}

	if opts.Relation != "" {
		self, err := st.Self()
		if err == nil && self == nil {
			err = fmt.Errorf("no self person")
		}
		if err != nil {
			step(fmt.Sprintf("relation %q", opts.Relation), err)
		} else {
			_, err = st.CreateRelation(self.ID, p.ID, opts.Relation, nil, nil)
			step(fmt.Sprintf("relation %q", opts.Relation), err)
		}
	}

	return report
}
