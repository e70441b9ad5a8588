package response_models

type QuestView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Category    string `json:"category"`
	AnswerCount int    `json:"answer_count"`
	Completed   bool   `json:"completed"`
}

type QuestResult struct {
	QuestID      string `json:"quest_id"`
	PointsEarned int    `json:"points_earned"`
	NewTotal     int    `json:"new_total"`
}
