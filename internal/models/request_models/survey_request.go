package request_models

type ReflectionRequest struct {
	ConfidenceTechAccessPost int    `json:"confidence_tech_access_post" binding:"required,min=1,max=5"`
	ClarityTechPathwaysPost  int    `json:"clarity_tech_pathways_post" binding:"required,min=1,max=5"`
	ValuableActivity         string `json:"valuable_activity" binding:"required"`
	FutureAction             string `json:"future_action" binding:"required"`
}

type ExitSurveyRequest struct {
	NPS          int    `json:"nps" binding:"min=0,max=10"`
	Preparedness int    `json:"preparedness" binding:"required,min=1,max=5"`
	MostValuable string `json:"most_valuable"`
	NextStep     string `json:"next_step"`
}
