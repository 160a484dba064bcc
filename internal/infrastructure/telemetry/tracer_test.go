package telemetry

import (
	"context"
	"testing"
)

func TestStripScheme(t *testing.T) {
	tests := map[string]string{
		"http://otel:4317":  "otel:4317",
		"https://otel:4317": "otel:4317",
		" otel:4317 ":       "otel:4317",
		"":                  "",
	}
	for in, want := range tests {
		if got := stripScheme(in); got != want {
			t.Fatalf("stripScheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetupTracerDisabled(t *testing.T) {
	shutdown, err := SetupTracer(context.Background(), Options{ServiceName: "storefront-orders"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown failed: %v", err)
	}
}
