package models

// RiskLevel classifies a numeric risk score into a severity band.
// Each scorer derives it with its own thresholds.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// StatusSuccess and StatusSkipped mark operation results.
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
)

// ClampScore bounds a risk score to the 0-10 scale shared by all scorers.
func ClampScore(score int) int {
	if score > 10 {
		return 10
	}
	if score < 0 {
		return 0
	}
	return score
}
