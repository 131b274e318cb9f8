package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/ppl/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.xlsx]",
	Short: "Export everything to a spreadsheet",
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

		path := "ppl.xlsx"
		if len(args) == 1 {
			path = args[0]
		}
		if err := exportWorkbook(s.st, path); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// exportWorkbook writes one sheet per entity, header row first.
func exportWorkbook(st *store.Store, path string) error {
	people, err := st.People()
	if err != nil {
		return err
	}
	contacts, err := st.Contacts()
	if err != nil {
		return err
	}
	sigDates, err := st.SigDates()
	if err != nil {
		return err
	}
	traits, err := st.Traits()
	if err != nil {
		return err
	}
	tiers, err := st.Tiers()
	if err != nil {
		return err
	}
	relations, err := st.Relations()
	if err != nil {
		return err
	}

	names := make(map[int64]string, len(people))
	for _, p := range people {
		names[p.ID] = p.DisplayName()
	}

	f := excelize.NewFile()
	defer f.Close()

	writeSheet := func(name string, header []interface{}, rows [][]interface{}) error {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := setRow(f, name, 1, header); err != nil {
			return err
		}
		for i, row := range rows {
			if err := setRow(f, name, i+2, row); err != nil {
				return err
			}
		}
		return nil
	}

	peopleRows := make([][]interface{}, 0, len(people))
	for _, p := range people {
		peopleRows = append(peopleRows, []interface{}{p.Name, deref(p.Nick), p.Me})
	}
	if err := writeSheet("People", []interface{}{"name", "nick", "me"}, peopleRows); err != nil {
		return err
	}

	contactRows := make([][]interface{}, 0, len(contacts))
	for _, c := range contacts {
		contactRows = append(contactRows, []interface{}{names[c.PplID], c.Type, deref(c.Designator), c.Value})
	}
	if err := writeSheet("Contacts", []interface{}{"person", "type", "designator", "value"}, contactRows); err != nil {
		return err
	}

	dateRows := make([][]interface{}, 0, len(sigDates))
	for _, d := range sigDates {
		dateRows = append(dateRows, []interface{}{names[d.PplID], d.Event, d.Date, d.DoRemind})
	}
	if err := writeSheet("Dates", []interface{}{"person", "event", "date", "remind"}, dateRows); err != nil {
		return err
	}

	traitRows := make([][]interface{}, 0, len(traits))
	for _, t := range traits {
		traitRows = append(traitRows, []interface{}{names[t.PplID], t.Key, t.Value, t.Hidden})
	}
	if err := writeSheet("Traits", []interface{}{"person", "key", "value", "hidden"}, traitRows); err != nil {
		return err
	}

	tierRows := make([][]interface{}, 0, len(tiers))
	for _, t := range tiers {
		tierRows = append(tierRows, []interface{}{names[t.PplID], t.Name})
	}
	if err := writeSheet("Circles", []interface{}{"person", "circle"}, tierRows); err != nil {
		return err
	}

	relationRows := make([][]interface{}, 0, len(relations))
	for _, r := range relations {
		relationRows = append(relationRows, []interface{}{names[r.PplIDA], r.Type, names[r.PplIDB], deref(r.DateEntered), deref(r.DateEnded)})
	}
	if err := writeSheet("Relations", []interface{}{"person", "type", "of", "entered", "ended"}, relationRows); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
