package events

import "time"

// EventType identifies the kind of event being published.
type EventType string

const (
	// Per component
	PredictionComplete EventType = "prediction_complete"
	PredictionFailed   EventType = "prediction_failed"
	Overstressed       EventType = "overstressed"

	// Per run
	RunStarted  EventType = "run_started"
	RunComplete EventType = "run_complete"
)

// Severity indicates the urgency of an event.
type Severity int

const (
	SeverityInfo     Severity = 0
	SeverityWarning  Severity = 1
	SeverityCritical Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Event is the payload published through the bus.
type Event struct {
	Type       EventType         `json:"type"`
	Severity   Severity          `json:"severity"`
	RunID      string            `json:"run_id,omitempty"`
	HardwareID string            `json:"hardware_id,omitempty"`
	Message    string            `json:"message"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}
