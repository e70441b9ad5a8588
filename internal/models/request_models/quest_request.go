package request_models

// QuestSubmitRequest carries one or more free-text answers. Single-input
// quests send one element; keyword quests send three.
type QuestSubmitRequest struct {
	Answers []string `json:"answers" binding:"required"`
}
