package demo

import (
	"testing"

	"github.com/google/uuid"
)

func TestLoadSource_EmbeddedRoster(t *testing.T) {
	t.Parallel()
	src, err := LoadSource()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	john := src.FindByName("John")
	if john == nil {
		t.Fatal("expected John in the embedded roster")
	}
	if john.School != nil {
		t.Fatalf("expected John to have no school, got %+v", john.School)
	}

	jane := src.FindByName("Jane")
	if jane == nil {
		t.Fatal("expected Jane in the embedded roster")
	}
	if jane.School == nil || jane.School.Name != "Stanford" {
		t.Fatalf("expected Jane at Stanford, got %+v", jane.School)
	}
}

func TestNewSource_StampsMissingIDs(t *testing.T) {
	t.Parallel()
	fixed := uuid.New()
	src := NewSource(
		Person{Name: "A"},
		Person{ID: fixed, Name: "B"},
	)

	a := src.FindByName("A")
	if a == nil || a.ID == uuid.Nil {
		t.Fatalf("expected a fresh ID for A, got %+v", a)
	}
	b := src.FindByName("B")
	if b == nil || b.ID != fixed {
		t.Fatalf("expected B to keep its ID, got %+v", b)
	}
}

func TestPersons_Restartable(t *testing.T) {
	t.Parallel()
	src := NewSource(
		Person{Name: "A"},
		Person{Name: "B"},
		Person{Name: "C"},
	)

	count := func() int {
		n := 0
		for range src.Persons() {
			n++
		}
		return n
	}
	if first := count(); first != 3 {
		t.Fatalf("expected 3 on the first walk, got %d", first)
	}
	if second := count(); second != 3 {
		t.Fatalf("expected 3 on the second walk, got %d", second)
	}
}

func TestPersons_StopsOnBreak(t *testing.T) {
	t.Parallel()
	src := NewSource(
		Person{Name: "A"},
		Person{Name: "B"},
	)
	n := 0
	for range src.Persons() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("expected to see one record before breaking, got %d", n)
	}
}

func TestFindByName_Miss(t *testing.T) {
	t.Parallel()
	src := NewSource(Person{Name: "A"})
	if got := src.FindByName("Mike"); got != nil {
		t.Fatalf("expected nil for an absent name, got %+v", got)
	}
}

func TestNotFoundError_Message(t *testing.T) {
	t.Parallel()
	err := NotFoundError("Mike")
	if err.Error() != "Person 'Mike' not found." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
