package services

import (
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// RecipientTrust simulates a transaction-history lookup for a payment
// recipient using the relationship keyword table.
type RecipientTrust struct {
	logger *logger.Logger
}

// NewRecipientTrust creates a new recipient trust lookup
func NewRecipientTrust(log *logger.Logger) *RecipientTrust {
	return &RecipientTrust{
		logger: log.WithComponent("recipient-trust"),
	}
}

// Check returns the simulated history for a recipient. First matching
// relationship keyword wins.
func (s *RecipientTrust) Check(recipient string) *models.RecipientHistory {
	recipientClean := strings.ToLower(strings.TrimSpace(recipient))

	for _, known := range knownRecipients {
		if strings.Contains(recipientClean, known.Keyword) {
			return &models.RecipientHistory{
				Status:               models.StatusSuccess,
				Recipient:            recipient,
				IsKnown:              true,
				TrustLevel:           known.Trust,
				Relationship:         known.Name,
				PreviousTransactions: known.PreviousTransactions,
				Verdict:              "TRUSTED - Known family member",
			}
		}
	}

	return &models.RecipientHistory{
		Status:     models.StatusSuccess,
		Recipient:  recipient,
		IsKnown:    false,
		TrustLevel: models.TrustLevelUnknown,
		Verdict:    "UNKNOWN - Never sent money to this recipient before. Extra caution advised.",
	}
}
