package pipe

import "testing"

func TestIfDo_ReturnsSubjectAndGates(t *testing.T) {
	t.Parallel()
	calls := 0
	out := IfDo(true, func() { calls++ })
	if !out || calls != 1 {
		t.Fatalf("true subject: out=%v calls=%d", out, calls)
	}

	out = IfDo(false, func() { calls++ })
	if out || calls != 1 {
		t.Fatalf("false subject: out=%v calls=%d", out, calls)
	}
}

func TestIfDoElse_SelectsOneBranch(t *testing.T) {
	t.Parallel()
	onTrue, onElse := 0, 0
	out := IfDoElse(false, func() { onTrue++ }, func() { onElse++ })
	if out {
		t.Fatalf("expected the boolean subject back")
	}
	if onTrue != 0 || onElse != 1 {
		t.Fatalf("expected the else branch only, onTrue=%d onElse=%d", onTrue, onElse)
	}
}

func TestIfTo_FalseYieldsZero(t *testing.T) {
	t.Parallel()
	calls := 0
	out := IfTo(false, func() string { calls++; return "never" })
	if out != "" || calls != 0 {
		t.Fatalf("expected zero value without invoking, got %q calls=%d", out, calls)
	}
}

func TestIfTo_TrueProduces(t *testing.T) {
	t.Parallel()
	out := IfTo(true, func() int { return 41 + 1 })
	if out != 42 {
		t.Fatalf("expected 42, got %d", out)
	}
}

func TestIfToElse_SelectsOneBranch(t *testing.T) {
	t.Parallel()
	out := IfToElse(false, func() string { return "yes" }, func() string { return "no" })
	if out != "no" {
		t.Fatalf("expected \"no\", got %q", out)
	}
}

func TestIfToOr_Fallback(t *testing.T) {
	t.Parallel()
	calls := 0
	out := IfToOr(false, func() int { calls++; return 1 }, -5)
	if out != -5 || calls != 0 {
		t.Fatalf("expected fallback without invoking, out=%d calls=%d", out, calls)
	}
}
