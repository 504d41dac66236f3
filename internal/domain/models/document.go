package models

// DocumentType is the classified category of an analyzed document.
type DocumentType string

const (
	DocumentTypeLoan       DocumentType = "Loan Offer"
	DocumentTypeInsurance  DocumentType = "Insurance Policy"
	DocumentTypeInvestment DocumentType = "Investment Scheme"
	DocumentTypeLottery    DocumentType = "Prize/Lottery Claim"
	DocumentTypeUnknown    DocumentType = "Unknown"
)

// Legitimacy is the document-level verdict band. Its thresholds differ
// from the RiskLevel bands reported on the same result; both are part
// of the contract and consumed independently.
type Legitimacy string

const (
	LegitimacyFraudulent Legitimacy = "FRAUDULENT"
	LegitimacySuspicious Legitimacy = "SUSPICIOUS"
	LegitimacyPossible   Legitimacy = "POSSIBLY LEGITIMATE"
)

// ExtractedIdentifiers holds the identifiers pulled out of a document,
// deduplicated and capped to the first five of each kind.
type ExtractedIdentifiers struct {
	PhoneNumbers []string `json:"phone_numbers"`
	UPIIDs       []string `json:"upi_ids"`
	Keywords     []string `json:"keywords"`
}

// DocumentAnalysis is the result of scoring a document's text.
type DocumentAnalysis struct {
	Status               string               `json:"status"`
	DocumentType         DocumentType         `json:"document_type"`
	Legitimacy           Legitimacy           `json:"legitimacy"`
	RiskScore            int                  `json:"risk_score"`
	RiskLevel            RiskLevel            `json:"risk_level"`
	RedFlags             []string             `json:"red_flags"`
	ExtractedIdentifiers ExtractedIdentifiers `json:"extracted_identifiers"`
	Verdict              string               `json:"verdict"`
	HindiVerdict         string               `json:"hindi_verdict"`
	ShouldFlag           bool                 `json:"should_flag"`
	NotifyFamily         bool                 `json:"notify_family"`
}
