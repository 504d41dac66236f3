package services

import (
	"fmt"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// EntityRegistry verifies a company name against the known-legitimate
// entity table (a stand-in for the RBI NBFC/bank registry) and a list of
// obviously fake name fragments. Matching is substring containment with
// first-match-wins over the table order.
type EntityRegistry struct {
	logger *logger.Logger
}

// NewEntityRegistry creates a new entity registry lookup
func NewEntityRegistry(log *logger.Logger) *EntityRegistry {
	return &EntityRegistry{
		logger: log.WithComponent("entity-registry"),
	}
}

// Verify checks whether a company name belongs to a registered entity.
func (s *EntityRegistry) Verify(company string) *models.EntityVerification {
	companyLower := strings.ToLower(strings.TrimSpace(company))

	for _, entity := range legitimateEntities {
		if strings.Contains(companyLower, entity.Name) {
			return &models.EntityVerification{
				Status:       models.StatusSuccess,
				Company:      company,
				IsRegistered: true,
				EntityType:   entity.Type,
				Registration: entity.Registration,
				Verdict:      models.EntityVerdictLegitimate,
				Message:      fmt.Sprintf("✅ %s is a registered %s", company, entity.Type),
				HindiMessage: fmt.Sprintf("✅ %s एक पंजीकृत %s है", company, entity.Type),
			}
		}
	}

	for _, fragment := range fakeNameFragments {
		if strings.Contains(companyLower, fragment) {
			s.logger.Info().Str("fragment", fragment).Msg("fake entity name pattern matched")
			return &models.EntityVerification{
				Status:         models.StatusSuccess,
				Company:        company,
				IsRegistered:   false,
				Verdict:        models.EntityVerdictLikelyFake,
				Message:        fmt.Sprintf("❌ '%s' does not appear in RBI registry. Common scam name pattern.", company),
				HindiMessage:   fmt.Sprintf("❌ '%s' RBI में पंजीकृत नहीं है। यह स्कैम लगता है।", company),
				Recommendation: "Do not proceed with any financial transaction",
			}
		}
	}

	return &models.EntityVerification{
		Status:         models.StatusSuccess,
		Company:        company,
		IsRegistered:   false,
		Verdict:        models.EntityVerdictNotFound,
		Message:        fmt.Sprintf("⚠️ '%s' not found in RBI registry. Verify before proceeding.", company),
		HindiMessage:   fmt.Sprintf("⚠️ '%s' RBI में नहीं मिला। आगे बढ़ने से पहले सत्यापित करें।", company),
		Recommendation: "Ask for RBI registration number and verify on RBI website",
	}
}
