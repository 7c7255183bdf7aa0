package observe

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventd/pkg/registry"
)

// TestCountedEmitsDeliveryCounter verifies that a counting observer shows up
// in the default Prometheus registry when scraped.
func TestCountedEmitsDeliveryCounter(t *testing.T) {
	r := registry.New[string]()
	r.Register("metrics-test", Counted[string]("metrics-test"))
	r.Fire("metrics-test", "payload")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	promhttp.Handler().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", rr.Code)
	}
	body := rr.Body.Bytes()
	if !bytes.Contains(body, []byte("eventd_events_delivered_total")) {
		previewLen := len(body)
		if previewLen > 200 {
			previewLen = 200
		}
		t.Fatalf("expected eventd_events_delivered_total in metrics; got: %q", string(body[:previewLen]))
	}
	if !bytes.Contains(body, []byte(`event="metrics-test"`)) {
		t.Fatalf("expected event label in metrics output")
	}
}
