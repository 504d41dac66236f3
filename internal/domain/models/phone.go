package models

// PhoneVerdict classifies a phone number for official-communication use.
type PhoneVerdict string

const (
	PhoneVerdictLegitimate       PhoneVerdict = "LEGITIMATE"
	PhoneVerdictLikelyLegitimate PhoneVerdict = "LIKELY LEGITIMATE"
	PhoneVerdictSuspicious       PhoneVerdict = "SUSPICIOUS"
	PhoneVerdictUnknown          PhoneVerdict = "UNKNOWN"
)

// PhoneAssessment is the result of the phone number classifier.
type PhoneAssessment struct {
	Status   string       `json:"status"`
	Phone    string       `json:"phone"`
	Verdict  PhoneVerdict `json:"verdict"`
	Warnings []string     `json:"warnings"`
	Advice   string       `json:"advice"`
}

// PhoneReputation classifies a phone number against the scam-report table.
type PhoneReputation struct {
	Status          string `json:"status"`
	Phone           string `json:"phone"`
	FoundInDatabase bool   `json:"found_in_database"`
	ScamReports     int    `json:"scam_reports"`
	ScamType        string `json:"scam_type,omitempty"`
	FirstReported   string `json:"first_reported,omitempty"`
	Reputation      string `json:"reputation"`
	Verdict         string `json:"verdict"`
	HindiVerdict    string `json:"hindi_verdict,omitempty"`
	Recommendation  string `json:"recommendation"`
}

// Reputation values for PhoneReputation.
const (
	ReputationScam       = "SCAM"
	ReputationSuspicious = "SUSPICIOUS"
	ReputationUnknown    = "UNKNOWN"
)
