package models

import "time"

// CandidatePoint is a location sample extracted from a raw timeline record
// before validation. Accuracy and speed are best-effort and may be absent.
// Speed carries whatever the source variant provides: metres per second for
// raw signals and flat records, a confidence value for activity segments.
// No unit normalization is attempted.
type CandidatePoint struct {
	Timestamp time.Time
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	Speed     *float64
}

// TrajectoryPoint is a retained candidate after cleaning: trajectories are
// ascending in time and spatially deduplicated.
type TrajectoryPoint struct {
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
}

// TrajectoryPointsResponse represents a paginated response of trajectory points
type TrajectoryPointsResponse struct {
	Data       []TrajectoryPoint `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
