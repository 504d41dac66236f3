package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

var (
	documentPhonePattern = regexp.MustCompile(`\+?[0-9]{10,13}`)
	upiIDPattern         = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z]+`)
)

// DocumentScorer analyzes document text (loan offers, insurance
// policies, investment schemes) for legitimacy and extracts identifiers
// for Connected Intelligence linkage.
type DocumentScorer struct {
	logger *logger.Logger
}

// NewDocumentScorer creates a new document scorer
func NewDocumentScorer(log *logger.Logger) *DocumentScorer {
	return &DocumentScorer{
		logger: log.WithComponent("document-scorer"),
	}
}

// Analyze scores document text. Scam phrase weights accumulate
// additively and the total is clamped to [0,10] at the end. The
// legitimacy bands and the risk-level bands use different cutoffs;
// both are reported because downstream consumers read them
// independently.
func (s *DocumentScorer) Analyze(documentText string) *models.DocumentAnalysis {
	textLower := strings.ToLower(documentText)
	var redFlags []string
	var keywords []string
	riskScore := 0

	docType := classifyDocumentType(textLower)

	hasRBI := strings.Contains(textLower, "rbi") || strings.Contains(textLower, "reserve bank")
	hasIRDAI := strings.Contains(textLower, "irdai") || strings.Contains(textLower, "irda")

	if docType == models.DocumentTypeLoan && !hasRBI {
		redFlags = append(redFlags, "No RBI registration mentioned - legitimate lenders always show RBI registration")
		riskScore += 3
	}
	if docType == models.DocumentTypeInsurance && !hasIRDAI {
		redFlags = append(redFlags, "No IRDAI registration - legitimate insurers always mention IRDAI registration")
		riskScore += 3
	}

	for _, p := range documentScamPhrases {
		if strings.Contains(textLower, p.Phrase) {
			redFlags = append(redFlags, fmt.Sprintf("🚨 '%s': %s", p.Phrase, p.Reason))
			riskScore += p.Weight
			keywords = append(keywords, p.Phrase)
		}
	}

	phones := dedupe(documentPhonePattern.FindAllString(documentText, -1))
	upiIDs := dedupe(upiIDPattern.FindAllString(documentText, -1))

	// Personal mobile penalty applies once, on the first qualifying number
	for _, phone := range phones {
		cleaned := normalizePhone(phone)
		if len(cleaned) == 10 && isMobileLeadDigit(cleaned[0]) {
			redFlags = append(redFlags, fmt.Sprintf("Personal mobile number %s - legitimate institutions use toll-free numbers", phone))
			riskScore += 2
			break
		}
	}

	riskScore = models.ClampScore(riskScore)

	var legitimacy models.Legitimacy
	var verdict, hindiVerdict string
	switch {
	case riskScore >= 7:
		legitimacy = models.LegitimacyFraudulent
		verdict = "This document appears to be FRAUDULENT. DO NOT respond or pay any money."
		hindiVerdict = "यह दस्तावेज़ धोखाधड़ी प्रतीत होता है। इसका जवाब न दें या कोई पैसा न भेजें।"
	case riskScore >= 4:
		legitimacy = models.LegitimacySuspicious
		verdict = "This document is SUSPICIOUS. Verify with official sources before proceeding."
		hindiVerdict = "यह दस्तावेज़ संदिग्ध है। आगे बढ़ने से पहले आधिकारिक स्रोतों से सत्यापित करें।"
	default:
		legitimacy = models.LegitimacyPossible
		verdict = "Document appears possibly legitimate, but always verify with official sources."
		hindiVerdict = "दस्तावेज़ संभवतः वैध प्रतीत होता है, लेकिन हमेशा आधिकारिक स्रोतों से सत्यापित करें।"
	}

	s.logger.Info().
		Str("document_type", string(docType)).
		Int("risk_score", riskScore).
		Str("legitimacy", string(legitimacy)).
		Msg("document analyzed")

	return &models.DocumentAnalysis{
		Status:       models.StatusSuccess,
		DocumentType: docType,
		Legitimacy:   legitimacy,
		RiskScore:    riskScore,
		RiskLevel:    documentRiskLevel(riskScore),
		RedFlags:     redFlags,
		ExtractedIdentifiers: models.ExtractedIdentifiers{
			PhoneNumbers: capList(phones, 5),
			UPIIDs:       capList(upiIDs, 5),
			Keywords:     keywords,
		},
		Verdict:      verdict,
		HindiVerdict: hindiVerdict,
		ShouldFlag:   riskScore >= 4,
		NotifyFamily: riskScore >= 5,
	}
}

// classifyDocumentType picks the first matching category in fixed
// priority order: loan, insurance, investment, prize/lottery.
func classifyDocumentType(textLower string) models.DocumentType {
	if containsAny(textLower, loanKeywords) {
		return models.DocumentTypeLoan
	}
	if containsAny(textLower, insuranceKeywords) {
		return models.DocumentTypeInsurance
	}
	if containsAny(textLower, investmentKeywords) {
		return models.DocumentTypeInvestment
	}
	if containsAny(textLower, lotteryKeywords) {
		return models.DocumentTypeLottery
	}
	return models.DocumentTypeUnknown
}

func documentRiskLevel(score int) models.RiskLevel {
	switch {
	case score >= 7:
		return models.RiskLevelCritical
	case score >= 5:
		return models.RiskLevelHigh
	case score >= 3:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates keeping first-occurrence order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func capList(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
