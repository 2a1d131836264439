package dto

import "time"

// RecordFilter contains query parameters for record listing endpoints.
type RecordFilter struct {
	Q             string
	Domain        string
	HasEmail      bool
	HasPhone      bool
	HasLinkedIn   bool
	HasTeam       bool
	MinScore      *int
	HarvestedFrom *time.Time
	LatestRunOnly bool
	Page          int
	PerPage       int
}
