package response_models

// BreakdownItem is one bar of a demographic percentage chart.
type BreakdownItem struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type ScoreMovement struct {
	PreAverage  float64 `json:"pre_average"`
	PostAverage float64 `json:"post_average"`
	Responses   int     `json:"responses"`
}

type AnalyticsReport struct {
	TotalAttendees int `json:"total_attendees"`
	TotalScans     int `json:"total_scans"`
	TotalStations  int `json:"total_stations"`
	QualifiedCount int `json:"qualified_count"`

	AgeRanges    []BreakdownItem `json:"age_ranges"`
	ZipCodes     []BreakdownItem `json:"zip_codes"`
	AttendeeType []BreakdownItem `json:"attendee_type"`
	Interests    []BreakdownItem `json:"interests"`
	SkillLevels  []BreakdownItem `json:"skill_levels"`

	ConfidenceTechAccess ScoreMovement `json:"confidence_tech_access"`
	ClarityTechPathways  ScoreMovement `json:"clarity_tech_pathways"`
}
