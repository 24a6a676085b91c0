package observability

import (
	"context"
	"testing"
)

func TestInitOTelDisabledReturnsCallableShutdown(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")

	shutdown := InitOTel(context.Background(), nil, OtelConfig{})
	if shutdown == nil {
		t.Fatalf("InitOTel must never return a nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("disabled shutdown should be a no-op, got %v", err)
	}
}
