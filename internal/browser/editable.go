package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeanpaul/ppl/internal/dates"
	"github.com/jeanpaul/ppl/internal/store"
)

// Field is one editable slot of a record: a label and its current text.
type Field struct {
	Title string
	Value string
}

// Editable is the uniform edit-mode projection of a stored record. Each
// record kind implements its own field layout and write-back, so the edit
// pane can drive any of them with the same input widgets.
type Editable interface {
	Kind() string
	ID() int64
	Fields() []Field
	FieldCount() int
	Apply(st *store.Store, values []string) error
}

// optText renders an optional column for display and editing. Empty text
// maps back to null on write.
func optText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optFromText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optDateFromText parses optional free-text date input back to ISO, keeping
// empty as null.
func optDateFromText(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := dates.Parse(s)
	if err != nil {
		return nil, err
	}
	iso := dates.FormatISO(t)
	return &iso, nil
}

// traitEditable projects a trait's key/value pair. The hidden flag is not an
// edit slot; it survives the write unchanged.
type traitEditable struct {
	t store.Trait
}

func (e traitEditable) Kind() string { return "trait" }
func (e traitEditable) ID() int64    { return e.t.ID }
func (e traitEditable) Fields() []Field {
	return []Field{
		{Title: "key", Value: e.t.Key},
		{Title: "value", Value: e.t.Value},
	}
}
func (e traitEditable) FieldCount() int { return 2 }
func (e traitEditable) Apply(st *store.Store, values []string) error {
	key := strings.TrimSpace(values[0])
	if key == "" {
		return fmt.Errorf("trait key is required")
	}
	return st.UpdateTrait(e.t.ID, key, strings.TrimSpace(values[1]), e.t.Hidden)
}

type tierEditable struct {
	t store.Tier
}

func (e tierEditable) Kind() string { return "circle" }
func (e tierEditable) ID() int64    { return e.t.ID }
func (e tierEditable) Fields() []Field {
	return []Field{
		{Title: "name", Value: e.t.Name},
		{Title: "color", Value: optText(e.t.Color)},
		{Title: "symbol", Value: optText(e.t.Symbol)},
	}
}
func (e tierEditable) FieldCount() int { return 3 }
func (e tierEditable) Apply(st *store.Store, values []string) error {
	name := strings.TrimSpace(values[0])
	if name == "" {
		return fmt.Errorf("circle name is required")
	}
	return st.UpdateTier(e.t.ID, name, optFromText(values[1]), optFromText(values[2]))
}

type contactEditable struct {
	c store.Contact
}

func (e contactEditable) Kind() string { return "contact" }
func (e contactEditable) ID() int64    { return e.c.ID }
func (e contactEditable) Fields() []Field {
	return []Field{
		{Title: "type", Value: e.c.Type},
		{Title: "designator", Value: optText(e.c.Designator)},
		{Title: "value", Value: e.c.Value},
	}
}
func (e contactEditable) FieldCount() int { return 3 }
func (e contactEditable) Apply(st *store.Store, values []string) error {
	typ := strings.TrimSpace(values[0])
	if typ == "" {
		return fmt.Errorf("contact type is required")
	}
	return st.UpdateContact(e.c.ID, typ, optFromText(values[1]), strings.TrimSpace(values[2]))
}

type relationEditable struct {
	r store.Relation
}

func (e relationEditable) Kind() string { return "relation" }
func (e relationEditable) ID() int64    { return e.r.ID }
func (e relationEditable) Fields() []Field {
	return []Field{
		{Title: "type", Value: e.r.Type},
		{Title: "entered", Value: optText(e.r.DateEntered)},
		{Title: "ended", Value: optText(e.r.DateEnded)},
	}
}
func (e relationEditable) FieldCount() int { return 3 }
func (e relationEditable) Apply(st *store.Store, values []string) error {
	typ := strings.TrimSpace(values[0])
	if typ == "" {
		return fmt.Errorf("relation type is required")
	}
	entered, err := optDateFromText(values[1])
	if err != nil {
		return fmt.Errorf("entered date: %w", err)
	}
	ended, err := optDateFromText(values[2])
	if err != nil {
		return fmt.Errorf("ended date: %w", err)
	}
	return st.UpdateRelation(e.r.ID, typ, entered, ended)
}

type sigDateEditable struct {
	d store.SigDate
}

func (e sigDateEditable) Kind() string { return "date" }
func (e sigDateEditable) ID() int64    { return e.d.ID }
func (e sigDateEditable) Fields() []Field {
	return []Field{
		{Title: "event", Value: e.d.Event},
		{Title: "date", Value: e.d.Date},
		{Title: "remind", Value: strconv.FormatBool(e.d.DoRemind)},
	}
}
func (e sigDateEditable) FieldCount() int { return 3 }
func (e sigDateEditable) Apply(st *store.Store, values []string) error {
	event := strings.TrimSpace(values[0])
	if event == "" {
		return fmt.Errorf("event name is required")
	}
	t, err := dates.Parse(values[1])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	remind, err := strconv.ParseBool(strings.TrimSpace(values[2]))
	if err != nil {
		return fmt.Errorf("remind flag: %w", err)
	}
	return st.UpdateSigDate(e.d.ID, event, dates.FormatISO(t), remind)
}
