package services

import (
	"fmt"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// DefaultNominee is used when no nominee name is supplied.
const DefaultNominee = "Family Member"

// Notifier renders transaction approval requests for a family nominee.
// Delivery is simulated; nothing is sent anywhere.
type Notifier struct {
	defaultNominee string
	logger         *logger.Logger
}

// NewNotifier creates a new family notifier
func NewNotifier(defaultNominee string, log *logger.Logger) *Notifier {
	if defaultNominee == "" {
		defaultNominee = DefaultNominee
	}
	return &Notifier{
		defaultNominee: defaultNominee,
		logger:         log.WithComponent("family-notifier"),
	}
}

// Notify builds the approval request for a transaction assessment.
func (s *Notifier) Notify(assessment *models.TransactionAssessment, nomineeName string) *models.FamilyNotification {
	if nomineeName == "" {
		nomineeName = s.defaultNominee
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n🔔 **Transaction Approval Request**\n\n")
	fmt.Fprintf(&b, "%s, your family member wants to make a payment:\n\n", nomineeName)
	fmt.Fprintf(&b, "**Amount:** %s\n", assessment.Transaction.AmountFormatted)
	fmt.Fprintf(&b, "**To:** %s\n", assessment.Transaction.Recipient)
	fmt.Fprintf(&b, "**Purpose:** %s\n\n", assessment.Transaction.Purpose)
	fmt.Fprintf(&b, "**AI Risk Assessment:** %s (%d/10)\n\n", assessment.RiskLevel, assessment.RiskScore)
	b.WriteString("**Risk Factors:**\n")
	for _, factor := range assessment.RiskFactors {
		fmt.Fprintf(&b, "• %s\n", factor)
	}
	fmt.Fprintf(&b, "\n**Recommendation:** %s\n\n", assessment.Recommendation)
	b.WriteString("**Your Options:**\n")
	b.WriteString("✅ APPROVE - Allow this transaction\n")
	b.WriteString("❌ REJECT - Block this transaction\n")
	b.WriteString("📞 CALL - Speak to family member first\n")

	s.logger.Info().
		Str("nominee", nomineeName).
		Str("risk_level", string(assessment.RiskLevel)).
		Msg("family notification simulated")

	return &models.FamilyNotification{
		Status:              models.StatusSuccess,
		NotificationSent:    true,
		NomineeName:         nomineeName,
		NotificationMessage: b.String(),
		AwaitingResponse:    true,
		ApprovalOptions:     []string{"APPROVE", "REJECT", "CALL_FIRST"},
		MessageToUser:       fmt.Sprintf("📱 %s has been notified about this transaction and will review it. Please wait for their response before proceeding.", nomineeName),
		HindiMessage:        fmt.Sprintf("📱 %s को इस लेनदेन के बारे में सूचित कर दिया गया है। कृपया आगे बढ़ने से पहले उनकी प्रतिक्रिया का इंतज़ार करें।", nomineeName),
	}
}
