package models

// PatternCategory identifies one of the fixed scam pattern groups a
// message is scanned for.
type PatternCategory string

const (
	CategoryUrgency                PatternCategory = "urgency"
	CategoryAuthorityImpersonation PatternCategory = "authority_impersonation"
	CategorySensitiveInfoRequest   PatternCategory = "sensitive_info_request"
	CategoryThreats                PatternCategory = "threats"
	CategoryPrizeLottery           PatternCategory = "prize_lottery"
	CategoryMoneyRequest           PatternCategory = "money_request"
	CategorySuspiciousLinks        PatternCategory = "suspicious_links"
)

// CategoryMatch records the keywords of one category that were found in
// a message, in lexicon order.
type CategoryMatch struct {
	Category PatternCategory `json:"category"`
	Keywords []string        `json:"keywords"`
}

// MessageAnalysis is the result of scoring a message for scam patterns.
type MessageAnalysis struct {
	Status        string            `json:"status"`
	RiskScore     int               `json:"risk_score"`
	RiskLevel     RiskLevel         `json:"risk_level"`
	PatternsFound []CategoryMatch   `json:"patterns_found"`
	Categories    []PatternCategory `json:"pattern_categories"`
	TotalRedFlags int               `json:"total_red_flags"`
	RiskDetails   []string          `json:"risk_details"`
}
