package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

var phoneFormatting = regexp.MustCompile(`[\s\-()]`)

const callBackAdvice = "Always call back using the number printed on your bank card or from the official website, never from an SMS"

// PhoneClassifier assesses whether a phone number is plausible for
// official communication, using shape heuristics and a small helpline
// whitelist.
type PhoneClassifier struct {
	logger *logger.Logger
}

// NewPhoneClassifier creates a new phone classifier
func NewPhoneClassifier(log *logger.Logger) *PhoneClassifier {
	return &PhoneClassifier{
		logger: log.WithComponent("phone-classifier"),
	}
}

// Classify analyzes a phone number. Verdict precedence: known helpline
// beats everything, then toll-free with no warnings, then any warning,
// then unknown.
func (s *PhoneClassifier) Classify(phone string) *models.PhoneAssessment {
	var warnings []string
	cleaned := normalizePhone(phone)

	if len(cleaned) == 10 && isMobileLeadDigit(cleaned[0]) {
		warnings = append(warnings, "This is a personal mobile number - Banks and government never call from personal mobiles for official work")
	}

	if strings.HasPrefix(cleaned, "190") {
		warnings = append(warnings, "This is a premium rate number - you may be charged heavily")
	}

	isTollFree := false
	for _, prefix := range tollFreePrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			isTollFree = true
			break
		}
	}

	var helplineName string
	for _, h := range knownHelplines {
		if cleaned == h.Number {
			helplineName = h.Name
			break
		}
	}

	var verdict models.PhoneVerdict
	switch {
	case helplineName != "":
		verdict = models.PhoneVerdictLegitimate
		warnings = []string{fmt.Sprintf("This is a known official number: %s", helplineName)}
	case isTollFree && len(warnings) == 0:
		verdict = models.PhoneVerdictLikelyLegitimate
		warnings = append(warnings, "Toll-free number - but always verify on official website")
	case len(warnings) > 0:
		verdict = models.PhoneVerdictSuspicious
	default:
		verdict = models.PhoneVerdictUnknown
		warnings = append(warnings, "Could not verify this number - check on official website before calling")
	}

	s.logger.Debug().Str("verdict", string(verdict)).Msg("phone classified")

	return &models.PhoneAssessment{
		Status:   models.StatusSuccess,
		Phone:    phone,
		Verdict:  verdict,
		Warnings: warnings,
		Advice:   callBackAdvice,
	}
}

// normalizePhone strips formatting characters and a leading +91 or bare
// 91 country code (the latter only when the remainder is still a full
// number).
func normalizePhone(phone string) string {
	cleaned := phoneFormatting.ReplaceAllString(phone, "")
	if strings.HasPrefix(cleaned, "+91") {
		return cleaned[3:]
	}
	if strings.HasPrefix(cleaned, "91") && len(cleaned) > 10 {
		return cleaned[2:]
	}
	return cleaned
}

func isMobileLeadDigit(c byte) bool {
	return c >= '6' && c <= '9'
}
