package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// ErrNegativeAmount is returned when a transaction amount is below zero.
var ErrNegativeAmount = errors.New("transaction amount must not be negative")

var (
	barePhonePattern    = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	recipientFormatting = regexp.MustCompile(`[\s\-]`)
)

// TransactionScorer assesses a proposed payment before it is made,
// combining amount bands, the bilingual purpose keyword table, and
// recipient shape heuristics.
type TransactionScorer struct {
	logger *logger.Logger
}

// NewTransactionScorer creates a new transaction scorer
func NewTransactionScorer(log *logger.Logger) *TransactionScorer {
	return &TransactionScorer{
		logger: log.WithComponent("transaction-scorer"),
	}
}

// Analyze scores a transaction. Only the highest applicable amount band
// contributes; purpose keyword weights accumulate uncapped before the
// final clamp to [0,10].
func (s *TransactionScorer) Analyze(amount float64, recipient, purpose string) (*models.TransactionAssessment, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	var riskFactors []string
	riskScore := 0

	switch {
	case amount >= 50000:
		riskFactors = append(riskFactors, fmt.Sprintf("Very high amount: %s - requires extra caution", formatINR(amount)))
		riskScore += 4
	case amount >= 25000:
		riskFactors = append(riskFactors, fmt.Sprintf("High amount: %s", formatINR(amount)))
		riskScore += 3
	case amount >= 10000:
		riskFactors = append(riskFactors, fmt.Sprintf("Significant amount: %s", formatINR(amount)))
		riskScore += 2
	case amount >= 5000:
		riskFactors = append(riskFactors, fmt.Sprintf("Medium amount: %s", formatINR(amount)))
		riskScore += 1
	}

	purposeLower := strings.ToLower(purpose)
	for _, kw := range purposeKeywords {
		if strings.Contains(purposeLower, kw.Keyword) {
			riskFactors = append(riskFactors, fmt.Sprintf("🚨 Risky keyword '%s': %s", kw.Keyword, kw.Reason))
			riskScore += kw.Weight
		}
	}

	recipientLower := strings.ToLower(strings.TrimSpace(recipient))
	if barePhonePattern.MatchString(recipientFormatting.ReplaceAllString(recipientLower, "")) {
		riskFactors = append(riskFactors, "Recipient is a phone number - verify if you know this person")
		riskScore += 2
	} else if strings.Contains(recipientLower, "@") {
		for _, fragment := range suspiciousUPIFragments {
			if strings.Contains(recipientLower, fragment) {
				riskFactors = append(riskFactors, fmt.Sprintf("Suspicious UPI ID contains '%s'", fragment))
				riskScore += 2
				break
			}
		}
	}

	riskScore = models.ClampScore(riskScore)

	var riskLevel models.RiskLevel
	var recommendation string
	switch {
	case riskScore >= 8:
		riskLevel = models.RiskLevelCritical
		recommendation = "DO NOT PROCEED - This shows multiple scam indicators. Consult family first."
	case riskScore >= 6:
		riskLevel = models.RiskLevelHigh
		recommendation = "WAIT - Get family approval before proceeding. This transaction has significant risk."
	case riskScore >= 4:
		riskLevel = models.RiskLevelMedium
		recommendation = "CAUTION - Verify the recipient and purpose before proceeding."
	default:
		riskLevel = models.RiskLevelLow
		recommendation = "Appears safe - but always double-check recipient details."
	}

	// Approval is an OR: a low-score but large-amount payment still
	// needs a family sign-off. The score reason wins when both apply.
	needsApproval := riskScore >= 5 || amount >= 5000
	approvalReason := ""
	if riskScore >= 5 {
		approvalReason = "High risk score"
	} else if amount >= 5000 {
		approvalReason = "Amount exceeds ₹5,000"
	}

	s.logger.Info().
		Float64("amount", amount).
		Int("risk_score", riskScore).
		Str("risk_level", string(riskLevel)).
		Bool("needs_family_approval", needsApproval).
		Msg("transaction analyzed")

	return &models.TransactionAssessment{
		Status: models.StatusSuccess,
		Transaction: models.TransactionDetails{
			Amount:          amount,
			AmountFormatted: formatINR(amount),
			Recipient:       recipient,
			Purpose:         purpose,
		},
		RiskScore:            riskScore,
		RiskLevel:            riskLevel,
		RiskFactors:          riskFactors,
		Recommendation:       recommendation,
		NeedsFamilyApproval:  needsApproval,
		FamilyApprovalReason: approvalReason,
	}, nil
}

// formatINR renders an amount as ₹ with comma-grouped thousands and no
// decimals.
func formatINR(amount float64) string {
	whole := fmt.Sprintf("%.0f", math.Abs(amount))
	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	if amount < 0 {
		return "-₹" + b.String()
	}
	return "₹" + b.String()
}
