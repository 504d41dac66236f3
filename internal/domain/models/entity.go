package models

// EntityVerdict classifies a company name against the registration registry.
type EntityVerdict string

const (
	EntityVerdictLegitimate EntityVerdict = "LEGITIMATE"
	EntityVerdictLikelyFake EntityVerdict = "LIKELY FAKE"
	EntityVerdictNotFound   EntityVerdict = "NOT FOUND"
)

// EntityVerification is the result of the registration lookup.
type EntityVerification struct {
	Status         string        `json:"status"`
	Company        string        `json:"company"`
	IsRegistered   bool          `json:"is_registered"`
	EntityType     string        `json:"entity_type,omitempty"`
	Registration   string        `json:"registration,omitempty"`
	Verdict        EntityVerdict `json:"verdict"`
	Message        string        `json:"message"`
	HindiMessage   string        `json:"hindi_message"`
	Recommendation string        `json:"recommendation,omitempty"`
}
