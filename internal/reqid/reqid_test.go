package reqid

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	if !ok || got != id {
		t.Fatalf("expected %d from context, got %d ok=%v", id, got, ok)
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("unexpected id in empty context")
	}
}

func TestNewContextNests(t *testing.T) {
	outer, a := NewContext(context.Background())
	inner, b := NewContext(outer)
	if got, _ := FromContext(inner); got != b {
		t.Fatalf("inner context should carry %d, got %d", b, got)
	}
	if got, _ := FromContext(outer); got != a {
		t.Fatalf("outer context should keep %d, got %d", a, got)
	}
}
