package logger

import (
	"bytes"
	"context"
	"os"
	"testing"

	"candiqo/internal/platform/testkit"
)

// Init is once-per-process, so all tests share one sink.
var sink bytes.Buffer

func TestMain(m *testing.M) {
	Init(Options{Level: "info", Format: "json", Writer: &sink, Service: "candiqo-test"})
	os.Exit(m.Run())
}

func TestInitOnceAndGet(t *testing.T) {
	sink.Reset()
	// second Init is a no-op and must not rewire the sink
	Init(Options{Level: "error", Format: "json"})

	Get().Info().Msg("hello")
	testkit.MustContain(t, sink.String(), `"hello"`)
	testkit.MustContain(t, sink.String(), `"service":"candiqo-test"`)
}

func TestRequestScopedChild(t *testing.T) {
	sink.Reset()
	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Info().Msg("scoped")
	testkit.MustContain(t, sink.String(), `"request_id":"req-123"`)
}

func TestNamedComponent(t *testing.T) {
	sink.Reset()
	Named("segment").Info().Msg("named")
	testkit.MustContain(t, sink.String(), `"component":"segment"`)
}

func TestParseLevelFallback(t *testing.T) {
	if parseLevel("nonsense").String() != "debug" {
		t.Fatalf("unknown level should fall back to debug")
	}
	if parseLevel("WARN").String() != "warn" {
		t.Fatalf("level parsing should be case-insensitive")
	}
}
