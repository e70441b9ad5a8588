package request_models

// RegisterRequest carries the full multi-step registration form. Per-step
// presence checks happen in the service so the client can surface them
// against the step they belong to.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	ZipCode   string `json:"zip_code"`

	AgeRange           string   `json:"age_range"`
	AttendeeType       []string `json:"attendee_type"`
	Organization       string   `json:"organization"`
	Interests          []string `json:"interests"`
	TechAccess         string   `json:"tech_access"`
	DigitalSkillLevel  string   `json:"digital_skill_level"`
	ReasonForAttending string   `json:"reason_for_attending"`

	OptInCommunications  bool `json:"opt_in_communications"`
	AgreedToMediaRelease bool `json:"agreed_to_media_release"`

	ConfidenceTechAccessPre *int `json:"confidence_tech_access_pre"`
	ClarityTechPathwaysPre  *int `json:"clarity_tech_pathways_pre"`
}
