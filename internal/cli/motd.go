package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeanpaul/ppl/internal/motd"
)

var motdCmd = &cobra.Command{
	Use:   "motd",
	Short: "Print today's reminder digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		if _, err := requireSelf(s); err != nil {
			return err
		}

		in := motd.Inputs{Today: time.Now()}
		if in.People, err = s.st.People(); err != nil {
			return err
		}
		if in.Dates, err = s.st.SigDates(); err != nil {
			return err
		}
		if in.Tiers, err = s.st.Tiers(); err != nil {
			return err
		}
		if in.TierDefaults, err = s.st.TierDefaults(); err != nil {
			return err
		}
		if in.TraitDefaults, err = s.st.TraitDefaults(); err != nil {
			return err
		}

		digests := motd.Compute(in)
		if out := motd.Render(digests); out != "" {
			fmt.Print(out)
		}
		return motd.Persist(s.st, digests, in.Today)
	},
}

func init() {
	rootCmd.AddCommand(motdCmd)
}
