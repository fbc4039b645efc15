package demo

import (
	"fmt"

	"github.com/google/uuid"
)

// School is a place a person attends.
type School struct {
	Name string `yaml:"name"`
}

// Person is a roster record. School is nil when the person has none on file.
type Person struct {
	ID     uuid.UUID `yaml:"-"`
	Name   string    `yaml:"name"`
	School *School   `yaml:"school"`
}

// NotFoundError builds the failure raised when a roster lookup misses.
func NotFoundError(name string) error {
	return fmt.Errorf("Person '%s' not found.", name)
}
