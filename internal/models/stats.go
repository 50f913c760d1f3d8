package models

// Stats represents aggregated outcome statistics for a target
type Stats struct {
	Target      string  `json:"target"`
	Total       int     `json:"total"`
	Successful  int     `json:"successful"`
	AvgRTT      float64 `json:"avg_rtt"`
	MaxRTT      float64 `json:"max_rtt"`
	MinRTT      float64 `json:"min_rtt"`
	FailureRate float64 `json:"failure_rate"` // percentage
}
