package store

import "time"

const timeFormat = "2006-01-02 15:04:05"

func nowString() string {
	return time.Now().UTC().Format(timeFormat)
}

// HazardRate is the last successful prediction stored for a component.
type HazardRate struct {
	HardwareID          string    `json:"hardware_id"`
	RunID               string    `json:"run_id"`
	MethodID            int       `json:"hazard_rate_method_id"`
	Equation            string    `json:"equation"`
	LambdaB             float64   `json:"lambda_b"`
	HazardRateActive    float64   `json:"hazard_rate_active"`
	HazardRateDormant   float64   `json:"hazard_rate_dormant"`
	HazardRateLogistics float64   `json:"hazard_rate_logistics"`
	MTBFActive          float64   `json:"mtbf_active"`
	Overstress          bool      `json:"overstress"`
	Reason              string    `json:"reason,omitempty"`
	FactorsJSON         string    `json:"factors_json,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Run is one batch prediction run.
type Run struct {
	ID         string     `json:"id"`
	Mode       string     `json:"mode"`
	Total      int        `json:"total"`
	Succeeded  int        `json:"succeeded"`
	Failed     int        `json:"failed"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// RunFailure is a component that could not be predicted in a run.
type RunFailure struct {
	RunID      string `json:"run_id"`
	HardwareID string `json:"hardware_id"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
}
