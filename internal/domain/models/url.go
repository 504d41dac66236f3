package models

// URLVerdict classifies a URL by the number of suspicious findings.
type URLVerdict string

const (
	URLVerdictSafe       URLVerdict = "APPEARS SAFE"
	URLVerdictSuspicious URLVerdict = "SUSPICIOUS"
	URLVerdictDangerous  URLVerdict = "DANGEROUS"
)

// URLCheck is the result of the URL safety heuristics.
type URLCheck struct {
	Status         string     `json:"status"`
	URL            string     `json:"url"`
	IsSuspicious   bool       `json:"is_suspicious"`
	SafetyVerdict  URLVerdict `json:"safety_verdict"`
	Indicators     []string   `json:"indicators"`
	Recommendation string     `json:"recommendation"`
}
