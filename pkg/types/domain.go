package types

import (
	"encoding/json"
	"time"
)

// Event is a stamped occurrence flowing through the daemon's hub. The
// payload is carried verbatim as raw JSON; the hub never inspects it.
type Event struct {
	// Unique id assigned when the event was fired.
	// example: 9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d
	ID string `json:"id" example:"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	// Event (channel) name.
	// example: deploys
	Name string `json:"name" example:"deploys"`
	// Raw JSON payload as received; omitted when the event was fired empty.
	Payload json.RawMessage `json:"payload,omitempty"`
	// UTC timestamp of the fire.
	At time.Time `json:"at"`
}
