package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", HasDependents(EntityClient, 3))

	if !errors.Is(err, ErrHasDependents) {
		t.Fatalf("expected errors.Is to match ErrHasDependents")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("did not expect match with ErrNotFound")
	}
	if KindOf(err) != KindHasDependents {
		t.Fatalf("expected kind has_dependents, got %q", KindOf(err))
	}

	e, ok := As(err)
	if !ok || e.Count != 3 {
		t.Fatalf("expected count 3, got %#v", e)
	}
}

func TestMessages(t *testing.T) {
	if got := Conflict(EntityLivestock, "tag").Error(); got != "livestock with this tag is already registered" {
		t.Fatalf("unexpected conflict message %q", got)
	}
	if got := ReferenceNotFound(EntityFeed).Error(); got != "referenced feed does not exist" {
		t.Fatalf("unexpected reference message %q", got)
	}
	if KindOf(errors.New("boom")) != "" {
		t.Fatalf("plain errors must not carry a kind")
	}
}
