package types

// FireResponse acknowledges a fired event.
type FireResponse struct {
	// Id assigned to the fired event.
	// example: 9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d
	ID string `json:"id" example:"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	// Event name the payload was fired on.
	// example: deploys
	Event string `json:"event" example:"deploys"`
	// Number of observers the payload was delivered to.
	// example: 2
	Delivered int `json:"delivered" example:"2"`
}

// ChannelStatus describes one event channel.
type ChannelStatus struct {
	// Channel name.
	// example: deploys
	Name string `json:"name" example:"deploys"`
	// Number of observers currently registered.
	// example: 3
	Observers int `json:"observers" example:"3"`
}

// ChannelsResponse wraps the list returned by GET /channels.
type ChannelsResponse struct {
	// Every channel the hub has touched, sorted by name.
	Channels []ChannelStatus `json:"channels"`
}

// HistoryResponse wraps the list returned by GET /history.
type HistoryResponse struct {
	// Most recent recorded events, oldest first.
	Events []Event `json:"events"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: payload must be valid JSON
	Error string `json:"error" example:"payload must be valid JSON"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
