package models

// PointFilter represents filter parameters for querying trajectory points
type PointFilter struct {
	StartTime int64 `form:"startTime"` // Unix timestamp in seconds
	EndTime   int64 `form:"endTime"`   // Unix timestamp in seconds
	Page      int   `form:"page"`
	PageSize  int   `form:"pageSize"`
}
