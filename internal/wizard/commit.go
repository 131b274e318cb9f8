package wizard

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeanpaul/ppl/internal/dates"
	"github.com/jeanpaul/ppl/internal/store"
)

// commit runs the Review screen's insert sequence. Every step's outcome is
// appended to the visible log; a failed step never blocks the ones after it,
// and nothing is rolled back.
func (m *Model) commit() {
	m.committed = true

	self, err := m.st.CreatePerson(m.name, true)
	m.report(fmt.Sprintf("self %q", m.name), err)
	if err != nil {
		// Without a self id the person-linked steps cannot run, but the
		// catalogs below still can.
		m.commitCatalogs()
		return
	}

	if err := m.st.MergeMeta(self.ID, func(meta *store.PersonMeta) {
		meta.InstallID = uuid.NewString()
	}); err != nil {
		m.report("install id", err)
	}

	for _, nick := range m.nicks {
		_, err := m.st.CreateTrait(self.ID, "alias", nick, false)
		m.report(fmt.Sprintf("alias %q", nick), err)
	}

	bday := dates.FormatISO(m.bday)
	_, err = m.st.CreateSigDate(self.ID, bday, "birthday", true)
	m.report("birthday", err)

	birthplace := "birthplace"
	_, err = m.st.CreateContact(self.ID, "address", &birthplace, m.place)
	m.report("birthplace", err)

	for _, name := range m.ofPpl {
		p, err := m.st.CreatePerson(name, false)
		m.report(fmt.Sprintf("person %q", name), err)
		if err != nil {
			continue
		}
		_, err = m.st.CreateRelation(p.ID, self.ID, "parent", &bday, nil)
		m.report(fmt.Sprintf("parent %q", name), err)
	}

	for _, name := range m.withPpl {
		p, err := m.st.CreatePerson(name, false)
		m.report(fmt.Sprintf("person %q", name), err)
		if err != nil {
			continue
		}
		_, err = m.st.CreateRelation(p.ID, self.ID, "sibling", nil, nil)
		m.report(fmt.Sprintf("sibling %q", name), err)
	}

	m.commitCatalogs()
}

func (m *Model) commitCatalogs() {
	for _, t := range m.tierList {
		if !t.Selected {
			continue
		}
		_, err := m.st.CreateTierDefault(t.Name, true, true, nil, nil, nil, nil)
		m.report(fmt.Sprintf("circle %q", t.Name), err)
	}

	for _, t := range m.traitList {
		_, err := m.st.CreateTraitDefault(t.Name, true, t.Selected, t.IsDate, t.IsContact, t.Color, t.Symbol)
		m.report(fmt.Sprintf("field %q", t.Name), err)
	}
}

func (m *Model) report(what string, err error) {
	if err != nil {
		m.review = append(m.review, fmt.Sprintf("err %s: %v", what, err))
		if m.log != nil {
			m.log.Warn("init step failed", zap.String("step", what), zap.Error(err))
		}
		return
	}
	m.review = append(m.review, fmt.Sprintf("ok  %s", what))
	if m.log != nil {
		m.log.Info("init step", zap.String("step", what))
	}
}
