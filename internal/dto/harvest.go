package dto

// HarvestRequest starts a harvest run. All fields are optional; unset
// fields fall back to the configured defaults. Queries takes precedence
// over the BusinessType/Region pair when both are present.
type HarvestRequest struct {
	Queries      []string `json:"queries,omitempty"`
	BusinessType string   `json:"business_type,omitempty"`
	Region       string   `json:"region,omitempty"`
	MaxCompanies *int     `json:"max_companies,omitempty"`
}

// HarvestResponse reports the totals of a finished run.
type HarvestResponse struct {
	RunID      string `json:"run_id"`
	Queries    int    `json:"queries"`
	Candidates int    `json:"candidates"`
	Visited    int    `json:"visited"`
	Records    int    `json:"records"`
}
