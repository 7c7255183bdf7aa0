package hub

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func newTestHub(t *testing.T, channels []ChannelSpec) (*Hub, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h, err := New(zerolog.New(&buf), 8, channels)
	if err != nil {
		t.Fatalf("new hub: %v", err)
	}
	return h, &buf
}

func TestFireStampsAndRecords(t *testing.T) {
	h, _ := newTestHub(t, []ChannelSpec{{Name: "deploys", Sinks: []string{SinkRecord}}})
	payload := json.RawMessage(`{"version":"v1"}`)
	ev, delivered := h.Fire("deploys", payload)
	if ev.ID == "" || ev.Name != "deploys" || ev.At.IsZero() {
		t.Fatalf("event not stamped: %+v", ev)
	}
	if delivered != 1 {
		t.Fatalf("delivered=%d, want 1", delivered)
	}
	hist := h.History()
	if len(hist) != 1 || hist[0].ID != ev.ID || string(hist[0].Payload) != `{"version":"v1"}` {
		t.Fatalf("history=%+v", hist)
	}
}

func TestFireUnconfiguredChannel(t *testing.T) {
	h, _ := newTestHub(t, nil)
	ev, delivered := h.Fire("ghost", nil)
	if delivered != 0 || ev.ID == "" {
		t.Fatalf("delivered=%d ev=%+v", delivered, ev)
	}
	chans := h.Channels()
	if len(chans) != 1 || chans[0].Name != "ghost" || chans[0].Observers != 0 {
		t.Fatalf("channels=%+v", chans)
	}
	if len(h.History()) != 0 {
		t.Fatalf("unconfigured fire reached the recorder")
	}
}

func TestLogSinkWrites(t *testing.T) {
	h, buf := newTestHub(t, []ChannelSpec{{Name: "deploys", Sinks: []string{SinkLog}}})
	h.Fire("deploys", json.RawMessage(`1`))
	if !bytes.Contains(buf.Bytes(), []byte(`"event":"deploys"`)) {
		t.Fatalf("log sink wrote nothing useful: %q", buf.String())
	}
}

func TestChannelsSortedWithCounts(t *testing.T) {
	h, _ := newTestHub(t, []ChannelSpec{
		{Name: "b", Sinks: []string{SinkLog, SinkMetrics}},
		{Name: "a", Sinks: []string{SinkRecord}},
	})
	chans := h.Channels()
	if len(chans) != 2 || chans[0].Name != "a" || chans[1].Name != "b" {
		t.Fatalf("channels=%+v", chans)
	}
	if chans[0].Observers != 1 || chans[1].Observers != 2 {
		t.Fatalf("counts=%+v", chans)
	}
}

func TestUnknownSinkRejected(t *testing.T) {
	_, err := New(zerolog.Nop(), 8, []ChannelSpec{{Name: "x", Sinks: []string{"nats"}}})
	if err == nil {
		t.Fatalf("expected error for unknown sink")
	}
}

func TestHistoryCap(t *testing.T) {
	var buf bytes.Buffer
	h, err := New(zerolog.New(&buf), 2, []ChannelSpec{{Name: "e", Sinks: []string{SinkRecord}}})
	if err != nil {
		t.Fatalf("new hub: %v", err)
	}
	for i := 0; i < 5; i++ {
		h.Fire("e", nil)
	}
	if got := len(h.History()); got != 2 {
		t.Fatalf("history kept %d events, want 2", got)
	}
}
