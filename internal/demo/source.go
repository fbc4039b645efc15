package demo

import (
	_ "embed"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var rosterYAML []byte

// Source hands out roster records.
type Source struct {
	people []Person
}

// LoadSource parses the embedded roster and stamps each record with an ID.
func LoadSource() (*Source, error) {
	var doc struct {
		People []Person `yaml:"people"`
	}
	if err := yaml.Unmarshal(rosterYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	return NewSource(doc.People...), nil
}

// NewSource builds a source from explicit records. Records without an ID
// get a fresh one.
func NewSource(people ...Person) *Source {
	ps := make([]Person, len(people))
	copy(ps, people)
	for i := range ps {
		if ps[i].ID == uuid.Nil {
			ps[i].ID = uuid.New()
		}
	}
	return &Source{people: ps}
}

// Persons returns the roster as a restartable sequence. Each range walks
// the records from the start again.
func (s *Source) Persons() iter.Seq[Person] {
	return func(yield func(Person) bool) {
		for _, p := range s.people {
			if !yield(p) {
				return
			}
		}
	}
}

// FindByName returns the first person with the given name, or nil when
// no record matches.
func (s *Source) FindByName(name string) *Person {
	for p := range s.Persons() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}
