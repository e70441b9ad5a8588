package services

import (
	"fmt"
	"strings"

	"expoquest/pkg/utils"
)

type AnswerRuleKind string

const (
	RuleFreeForm   AnswerRuleKind = "free"
	RuleExactMatch AnswerRuleKind = "exact"
	RuleKeywordSet AnswerRuleKind = "keywords"
)

// AnswerRule is the declarative validation strategy for one quest. Adding a
// quest is a catalog entry, not a new code branch.
type AnswerRule struct {
	Kind       AnswerRuleKind
	Expected   string   // exact-match literal, already normalized
	Keywords   []string // keyword-set accept list, already normalized
	MinMatches int      // unique keyword matches required
}

type Quest struct {
	ID          string
	Title       string
	Description string
	Points      int
	Category    string
	AnswerCount int
	Rule        AnswerRule
}

// QuestCatalog is the fixed in-code quest list. Order is display order.
var QuestCatalog = []Quest{
	{
		ID:          "daily_divide",
		Title:       "Question for Today",
		Description: "How do we conquer the digital divide? Share your ideas on how to ensure everyone has access to technology and the skills to use it.",
		Points:      100,
		Category:    "reflection",
		AnswerCount: 1,
		Rule:        AnswerRule{Kind: RuleFreeForm},
	},
	{
		ID:          "q1",
		Title:       "Keynote Spotlight",
		Description: "Who is delivering today's keynote address? (First and last name)",
		Points:      150,
		Category:    "trivia",
		AnswerCount: 1,
		Rule:        AnswerRule{Kind: RuleExactMatch, Expected: "danny rojas"},
	},
	{
		ID:          "cityworks_services",
		Title:       "Cityworks Deep Dive",
		Description: "Visit the Cityworks booth and name 3 city services their platform helps manage.",
		Points:      200,
		Category:    "vendor",
		AnswerCount: 3,
		Rule: AnswerRule{
			Kind: RuleKeywordSet,
			Keywords: []string{
				"transportation", "water", "sanitation", "permitting",
				"asset management", "utilities", "public works",
				"infrastructure", "stormwater", "parks",
			},
			MinMatches: 3,
		},
	},
	{
		ID:          "mentor_question",
		Title:       "Mentoring Lounge",
		Description: "Stop by the Mentoring Lounge and tell us one question you asked a mentor.",
		Points:      75,
		Category:    "activity",
		AnswerCount: 1,
		Rule:        AnswerRule{Kind: RuleFreeForm},
	},
	{
		ID:          "hackai_idea",
		Title:       "Hack-AI-thon Pitch",
		Description: "Pitch your Hack-AI-thon project idea in one sentence.",
		Points:      100,
		Category:    "activity",
		AnswerCount: 1,
		Rule:        AnswerRule{Kind: RuleFreeForm},
	},
	{
		ID:          "scavenger_mural",
		Title:       "Find the Mural",
		Description: "Somewhere in the venue is a mural celebrating Queens tech history. Tell us where you found it.",
		Points:      50,
		Category:    "scavenger",
		AnswerCount: 1,
		Rule:        AnswerRule{Kind: RuleFreeForm},
	},
}

// FindQuest returns the catalog entry for id, or nil.
func FindQuest(id string) *Quest {
	for i := range QuestCatalog {
		if QuestCatalog[i].ID == id {
			return &QuestCatalog[i]
		}
	}
	return nil
}

// NormalizeAnswer lowers, trims, and collapses internal whitespace.
func NormalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Validate checks answers against the quest's rule. A nil return means the
// submission may be recorded; otherwise the error is a user-facing
// ValidationError and nothing is persisted.
func (q *Quest) Validate(answers []string) error {
	switch q.Rule.Kind {
	case RuleFreeForm:
		if len(answers) == 0 || strings.TrimSpace(answers[0]) == "" {
			return utils.NewValidationError("Please provide an answer before submitting.")
		}
		return nil

	case RuleExactMatch:
		if len(answers) == 0 || NormalizeAnswer(answers[0]) != q.Rule.Expected {
			return utils.NewValidationError("That's not quite right. Look around the venue and try again!")
		}
		return nil

	case RuleKeywordSet:
		matched := map[string]bool{}
		seen := map[string]bool{}
		for _, raw := range answers {
			answer := NormalizeAnswer(raw)
			if answer == "" || seen[answer] {
				continue
			}
			seen[answer] = true
			// Each unique answer may claim one unclaimed keyword.
			for _, kw := range q.Rule.Keywords {
				if matched[kw] {
					continue
				}
				if answer == kw || strings.Contains(answer, kw) || strings.Contains(kw, answer) {
					matched[kw] = true
					break
				}
			}
		}
		if len(matched) < q.Rule.MinMatches {
			return utils.NewValidationError(fmt.Sprintf(
				"We need %d different answers. Take a closer look at the booth and try again!",
				q.Rule.MinMatches))
		}
		return nil

	default:
		return utils.NewValidationError("This quest cannot be answered right now.")
	}
}
