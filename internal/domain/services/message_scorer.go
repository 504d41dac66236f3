package services

import (
	"fmt"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// MessageScorer scans short message text (SMS, WhatsApp, email) for scam
// patterns using the category lexicon.
type MessageScorer struct {
	logger *logger.Logger
}

// NewMessageScorer creates a new message scorer
func NewMessageScorer(log *logger.Logger) *MessageScorer {
	return &MessageScorer{
		logger: log.WithComponent("message-scorer"),
	}
}

// Analyze scores a message. The base score comes from the count of
// distinct categories matched, not the total keyword count; two
// escalation rules then apply on top, capped at 10.
func (s *MessageScorer) Analyze(message string) *models.MessageAnalysis {
	messageLower := strings.ToLower(message)

	var found []models.CategoryMatch
	var riskDetails []string
	totalMatches := 0

	for _, cat := range messageCategories {
		var matches []string
		for _, kw := range cat.Keywords {
			if strings.Contains(messageLower, kw) {
				matches = append(matches, kw)
			}
		}
		if len(matches) > 0 {
			found = append(found, models.CategoryMatch{Category: cat.Category, Keywords: matches})
			riskDetails = append(riskDetails, fmt.Sprintf("%s: %s", cat.Display, strings.Join(matches, ", ")))
			totalMatches += len(matches)
		}
	}

	riskScore := baseScoreForCategoryCount(len(found))

	if hasCategory(found, models.CategorySensitiveInfoRequest) {
		riskScore = min(riskScore+2, 10)
	}
	if hasCategory(found, models.CategoryThreats) && hasCategory(found, models.CategoryUrgency) {
		riskScore = min(riskScore+1, 10)
	}

	categories := make([]models.PatternCategory, 0, len(found))
	for _, m := range found {
		categories = append(categories, m.Category)
	}

	s.logger.Debug().
		Int("risk_score", riskScore).
		Int("categories", len(found)).
		Int("red_flags", totalMatches).
		Msg("message analyzed")

	return &models.MessageAnalysis{
		Status:        models.StatusSuccess,
		RiskScore:     riskScore,
		RiskLevel:     messageRiskLevel(riskScore),
		PatternsFound: found,
		Categories:    categories,
		TotalRedFlags: totalMatches,
		RiskDetails:   riskDetails,
	}
}

func baseScoreForCategoryCount(count int) int {
	switch {
	case count >= 4:
		return 10
	case count == 3:
		return 8
	case count == 2:
		return 6
	case count == 1:
		return 4
	default:
		return 1
	}
}

func messageRiskLevel(score int) models.RiskLevel {
	switch {
	case score >= 7:
		return models.RiskLevelHigh
	case score >= 4:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

func hasCategory(matches []models.CategoryMatch, cat models.PatternCategory) bool {
	for _, m := range matches {
		if m.Category == cat {
			return true
		}
	}
	return false
}
