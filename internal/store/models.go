package store

import "encoding/json"

// Person is a row in the people table. Exactly one row has Me=true; it is
// created by the init wizard and anchors relation direction.
type Person struct {
	ID      int64
	Name    string
	Nick    *string
	Me      bool
	Meta    *string // JSON-encoded PersonMeta
	DateIns string
	DateUp  string
}

// DisplayName prefers the nickname when one is set.
func (p Person) DisplayName() string {
	if p.Nick != nil && *p.Nick != "" {
		return *p.Nick
	}
	return p.Name
}

// PersonMeta is the typed view of the people.meta document. Only these keys
// are ever read or written; unknown keys in stored documents survive a merge
// untouched.
type PersonMeta struct {
	LastReminded string `json:"last_reminded,omitempty"`
	InstallID    string `json:"install_id,omitempty"`
}

// MetaDoc decodes the person's meta document. A missing or malformed
// document decodes to the zero value.
func (p Person) MetaDoc() PersonMeta {
	var m PersonMeta
	if p.Meta != nil {
		_ = json.Unmarshal([]byte(*p.Meta), &m)
	}
	return m
}

// Contact is a row in the contacts table.
type Contact struct {
	ID         int64
	PplID      int64
	Type       string
	Designator *string
	Value      string
	DateAcq    *string
	DateIns    string
	DateUp     string
}

// SigDate is a row in the sig_dates table. Dates recur annually by
// convention; only month and day matter for scheduling.
type SigDate struct {
	ID       int64
	PplID    int64
	Date     string // ISO 2006-01-02
	Event    string
	DoRemind bool
	WithPpl  *string // JSON list of names
	DateIns  string
	DateUp   string
}

// Trait is a row in the traits table.
type Trait struct {
	ID      int64
	PplID   int64
	Key     string
	Value   string
	Hidden  bool
	DateIns string
	DateUp  string
}

// Tier is a person's membership in a relationship circle, with optional
// per-assignment presentation and reminder overrides.
type Tier struct {
	ID           int64
	PplID        int64
	Name         string
	Color        *string
	Symbol       *string
	SigDateDelta *int64 // reminder notice window in days
	DateIns      string
	DateUp       string
}

// Relation is a directed edge between two people (A relates to B).
type Relation struct {
	ID          int64
	PplIDA      int64
	PplIDB      int64
	Type        string
	DateEntered *string
	DateEnded   *string
	Superseded  bool
	DateIns     string
	DateUp      string
}

// TierDefault is a catalog row describing a known tier name and its default
// presentation and reminder policy.
type TierDefault struct {
	ID           int64
	Key          string
	Suggested    bool
	Enabled      bool
	Color        *string
	Symbol       *string
	SigDateDelta *int64
	SigRemind    *string // reminder mode, see motd
	DateIns      string
	DateUp       string
}

// TraitDefault is a catalog row describing how a trait key is labeled and
// iconified, and whether it denotes a date or a contact method.
type TraitDefault struct {
	ID        int64
	Key       string
	Suggested bool
	Enabled   bool
	IsDate    bool
	IsContact bool
	Color     string
	Symbol    string
	DateIns   string
	DateUp    string
}
