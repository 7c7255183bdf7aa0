package observe

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"eventd/pkg/registry"
)

func TestLoggedWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	r := registry.New[string]()
	r.Register("deploys", Logged[string](l, "deploys"))
	r.Fire("deploys", "v1.2.3")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log output not JSON: %v (%q)", err, buf.String())
	}
	if line["event"] != "deploys" || line["payload"] != "v1.2.3" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestRecorderKeepsMostRecent(t *testing.T) {
	rec := NewRecorder[int](3)
	r := registry.New[int]()
	r.Register("e", rec)
	for i := 1; i <= 5; i++ {
		r.Fire("e", i)
	}
	got := rec.Events()
	if len(got) != 3 || got[0] != 3 || got[1] != 4 || got[2] != 5 {
		t.Fatalf("capped recorder kept %v", got)
	}
	rec.Reset()
	if len(rec.Events()) != 0 {
		t.Fatalf("reset left events behind: %v", rec.Events())
	}
}

func TestRecorderUnbounded(t *testing.T) {
	rec := NewRecorder[int](0)
	for i := 0; i < 10; i++ {
		rec.OnEvent(i)
	}
	if got := rec.Events(); len(got) != 10 || got[0] != 0 || got[9] != 9 {
		t.Fatalf("unbounded recorder kept %v", got)
	}
}

// Events must return a copy, not an alias of internal storage.
func TestRecorderEventsIsACopy(t *testing.T) {
	rec := NewRecorder[int](0)
	rec.OnEvent(1)
	got := rec.Events()
	got[0] = 99
	if rec.Events()[0] != 1 {
		t.Fatalf("caller mutated recorder storage")
	}
}
