package models

// Judgment is the outcome of weighing positive against negative signals.
type Judgment string

const (
	JudgmentRiskOutweighs Judgment = "RISK OUTWEIGHS"
	JudgmentAppearsSafe   Judgment = "APPEARS SAFE"
	JudgmentUncertain     Judgment = "UNCERTAIN"
)

// SignalRecommendation is the action derived from a judgment.
type SignalRecommendation string

const (
	SignalRecommendationBlock  SignalRecommendation = "BLOCK"
	SignalRecommendationAllow  SignalRecommendation = "ALLOW"
	SignalRecommendationVerify SignalRecommendation = "VERIFY"
)

// SignalAnalysis is the result of reasoning over conflicting signals.
type SignalAnalysis struct {
	Status         string               `json:"status"`
	HasConflict    bool                 `json:"has_conflict"`
	PositiveCount  int                  `json:"positive_count"`
	NegativeCount  int                  `json:"negative_count"`
	Judgment       Judgment             `json:"judgment"`
	Recommendation SignalRecommendation `json:"recommendation"`
	Reasoning      string               `json:"reasoning"`
	ReasoningPanel string               `json:"reasoning_panel"`
	PriorityRule   string               `json:"priority_rule"`
}
