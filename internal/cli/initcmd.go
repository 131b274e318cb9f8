package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeanpaul/ppl/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run the first-time setup wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		self, err := s.st.Self()
		if err != nil {
			return err
		}
		if self != nil {
			fmt.Printf("already initialized for %s, nothing to do\n", self.DisplayName())
			return nil
		}

		p := tea.NewProgram(wizard.New(s.st, s.log), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
