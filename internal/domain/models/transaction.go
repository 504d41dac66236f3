package models

// TransactionDetails echoes the transaction under assessment.
type TransactionDetails struct {
	Amount          float64 `json:"amount"`
	AmountFormatted string  `json:"amount_formatted"`
	Recipient       string  `json:"recipient"`
	Purpose         string  `json:"purpose"`
}

// TransactionAssessment is the result of scoring a proposed payment.
type TransactionAssessment struct {
	Status               string             `json:"status"`
	Transaction          TransactionDetails `json:"transaction"`
	RiskScore            int                `json:"risk_score"`
	RiskLevel            RiskLevel          `json:"risk_level"`
	RiskFactors          []string           `json:"risk_factors"`
	Recommendation       string             `json:"recommendation"`
	NeedsFamilyApproval  bool               `json:"needs_family_approval"`
	FamilyApprovalReason string             `json:"family_approval_reason,omitempty"`
}

// TrustLevel classifies a payment recipient.
type TrustLevel string

const (
	TrustLevelHigh    TrustLevel = "HIGH"
	TrustLevelUnknown TrustLevel = "UNKNOWN"
)

// RecipientHistory is the result of the known-recipient lookup.
type RecipientHistory struct {
	Status               string     `json:"status"`
	Recipient            string     `json:"recipient"`
	IsKnown              bool       `json:"is_known"`
	TrustLevel           TrustLevel `json:"trust_level"`
	Relationship         string     `json:"relationship,omitempty"`
	PreviousTransactions int        `json:"previous_transactions"`
	Verdict              string     `json:"verdict"`
}
