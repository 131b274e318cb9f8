package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeanpaul/ppl/internal/resolve"
	"github.com/jeanpaul/ppl/internal/ui"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the configured relationship circles",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		if _, err := requireSelf(s); err != nil {
			return err
		}
		defaults, err := s.st.TierDefaults()
		if err != nil {
			return err
		}
		for _, d := range defaults {
			if !d.Enabled {
				continue
			}
			symbol := resolve.FallbackGeneric
			if d.Symbol != nil {
				symbol = *d.Symbol
			}
			color := ""
			if d.Color != nil {
				color = *d.Color
			}
			line := fmt.Sprintf("%s %s", symbol, ui.Colored(color, d.Key))
			if d.SigDateDelta != nil {
				line += fmt.Sprintf("  (remind %dd ahead)", *d.SigDateDelta)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "List the configured trait types",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		if _, err := requireSelf(s); err != nil {
			return err
		}
		defaults, err := s.st.TraitDefaults()
		if err != nil {
			return err
		}
		for _, d := range defaults {
			if !d.Enabled {
				continue
			}
			line := fmt.Sprintf("%s %s", d.Symbol, ui.Colored(d.Color, d.Key))
			switch {
			case d.IsDate:
				line += "  (date)"
			case d.IsContact:
				line += "  (contact)"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count what's stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		if _, err := requireSelf(s); err != nil {
			return err
		}

		people, err := s.st.People()
		if err != nil {
			return err
		}
		contacts, err := s.st.Contacts()
		if err != nil {
			return err
		}
		sigDates, err := s.st.SigDates()
		if err != nil {
			return err
		}
		traits, err := s.st.Traits()
		if err != nil {
			return err
		}
		tiers, err := s.st.Tiers()
		if err != nil {
			return err
		}
		relations, err := s.st.Relations()
		if err != nil {
			return err
		}

		fmt.Printf("people     %d\n", len(people))
		fmt.Printf("contacts   %d\n", len(contacts))
		fmt.Printf("dates      %d\n", len(sigDates))
		fmt.Printf("traits     %d\n", len(traits))
		fmt.Printf("circles    %d\n", len(tiers))
		fmt.Printf("relations  %d\n", len(relations))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tiersCmd, traitsCmd, statsCmd)
}
