package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

var reputationFormatting = regexp.MustCompile(`[\s\-()+]`)

// PhoneReputationService looks a phone number up in the static
// scam-report table. The table stands in for a community scam database
// such as the CyberCrime Portal reports.
type PhoneReputationService struct {
	logger *logger.Logger
}

// NewPhoneReputationService creates a new reputation lookup
func NewPhoneReputationService(log *logger.Logger) *PhoneReputationService {
	return &PhoneReputationService{
		logger: log.WithComponent("phone-reputation"),
	}
}

// Lookup checks a phone number for scam reports.
func (s *PhoneReputationService) Lookup(phone string) *models.PhoneReputation {
	cleaned := reputationFormatting.ReplaceAllString(phone, "")
	if strings.HasPrefix(cleaned, "91") {
		cleaned = cleaned[2:]
	}

	for _, rec := range knownScamNumbers {
		if cleaned != rec.Number {
			continue
		}
		s.logger.Info().Str("scam_type", rec.ScamType).Int("reports", rec.Reports).Msg("scam number matched")
		return &models.PhoneReputation{
			Status:          models.StatusSuccess,
			Phone:           phone,
			FoundInDatabase: true,
			ScamReports:     rec.Reports,
			ScamType:        rec.ScamType,
			FirstReported:   rec.FirstReported,
			Reputation:      models.ReputationScam,
			Verdict:         fmt.Sprintf("⚠️ DANGER: %d scam reports found!", rec.Reports),
			HindiVerdict:    fmt.Sprintf("⚠️ खतरा: इस नंबर पर %d धोखाधड़ी की शिकायतें हैं!", rec.Reports),
			Recommendation:  "DO NOT interact with this number",
		}
	}

	// 140-prefixed numbers are assigned to registered telemarketers
	if strings.HasPrefix(cleaned, "140") {
		return &models.PhoneReputation{
			Status:          models.StatusSuccess,
			Phone:           phone,
			FoundInDatabase: false,
			Reputation:      models.ReputationSuspicious,
			Verdict:         "Telemarketing number (140 prefix) - often used for spam",
			Recommendation:  "Exercise caution",
		}
	}

	return &models.PhoneReputation{
		Status:          models.StatusSuccess,
		Phone:           phone,
		FoundInDatabase: false,
		Reputation:      models.ReputationUnknown,
		Verdict:         "No reports found, but number not verified as safe",
		HindiVerdict:    "कोई शिकायत नहीं मिली, लेकिन नंबर सत्यापित नहीं है",
		Recommendation:  "Verify independently before trusting",
	}
}
