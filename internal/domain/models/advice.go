package models

// SafetyTips is a bilingual tip set for one financial safety topic.
type SafetyTips struct {
	Status      string   `json:"status"`
	Topic       string   `json:"topic"`
	TipsEnglish []string `json:"tips_english"`
	TipsHindi   []string `json:"tips_hindi"`
	TipCount    int      `json:"tip_count"`
}
