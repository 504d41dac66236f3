package services

import (
	"fmt"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

const priorityRule = "Safety over convenience - negative signals weighted 1.5x"

// SignalReasoner combines heterogeneous positive and negative signal
// lists into a final judgment. The weighting is a pure cardinality
// heuristic: negative count times 1.5 against positive count.
type SignalReasoner struct {
	logger *logger.Logger
}

// NewSignalReasoner creates a new signal reasoner
func NewSignalReasoner(log *logger.Logger) *SignalReasoner {
	return &SignalReasoner{
		logger: log.WithComponent("signal-reasoner"),
	}
}

// Analyze weighs the signals. ALLOW requires zero negative signals;
// ties and mixed outcomes fall through to VERIFY.
func (s *SignalReasoner) Analyze(positive, negative []string, context string) *models.SignalAnalysis {
	positive = trimSignals(positive)
	negative = trimSignals(negative)

	hasConflict := len(positive) > 0 && len(negative) > 0
	positiveWeight := float64(len(positive))
	adjustedNegative := float64(len(negative)) * 1.5

	var judgment models.Judgment
	var recommendation models.SignalRecommendation
	var reasoning string
	switch {
	case adjustedNegative > positiveWeight:
		judgment = models.JudgmentRiskOutweighs
		recommendation = models.SignalRecommendationBlock
		reasoning = "Negative signals outweigh positive ones. Safety takes priority over convenience."
	case positiveWeight > adjustedNegative && len(negative) == 0:
		judgment = models.JudgmentAppearsSafe
		recommendation = models.SignalRecommendationAllow
		reasoning = "No significant risk signals detected."
	default:
		judgment = models.JudgmentUncertain
		recommendation = models.SignalRecommendationVerify
		reasoning = "Mixed signals require human verification. Family should be consulted."
	}

	s.logger.Debug().
		Int("positive", len(positive)).
		Int("negative", len(negative)).
		Str("judgment", string(judgment)).
		Msg("signals analyzed")

	return &models.SignalAnalysis{
		Status:         models.StatusSuccess,
		HasConflict:    hasConflict,
		PositiveCount:  len(positive),
		NegativeCount:  len(negative),
		Judgment:       judgment,
		Recommendation: recommendation,
		Reasoning:      reasoning,
		ReasoningPanel: renderReasoningPanel(positive, negative, context, hasConflict, reasoning, judgment, recommendation),
		PriorityRule:   priorityRule,
	}
}

func trimSignals(signals []string) []string {
	var out []string
	for _, sig := range signals {
		if s := strings.TrimSpace(sig); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// renderReasoningPanel draws the fixed-width decision panel shown to
// the user. Presentation only; the judgment values carry the contract.
func renderReasoningPanel(positive, negative []string, context string, hasConflict bool, reasoning string, judgment models.Judgment, recommendation models.SignalRecommendation) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("┌─────────────────────────────────────────────────────────────┐")
	line("│ 🧠 SIGNAL ANALYSIS (Agent Reasoning)                        │")
	line("├─────────────────────────────────────────────────────────────┤")
	line("│ Context: %-50s│", truncate(context, 50))
	line("├─────────────────────────────────────────────────────────────┤")
	line("│ ✅ POSITIVE SIGNALS:                                        │")
	writeSignals(&b, positive)
	line("│                                                             │")
	line("│ ❌ NEGATIVE SIGNALS:                                        │")
	writeSignals(&b, negative)
	if hasConflict {
		line("│                                                             │")
		line("│ ⚠️  CONFLICT DETECTED: Visual legitimacy vs. data signals   │")
	}
	line("├─────────────────────────────────────────────────────────────┤")
	line("│ REASONING:                                                  │")
	line("│ %-60s│", truncate(reasoning, 60))
	line("├─────────────────────────────────────────────────────────────┤")
	line("│ JUDGMENT: %-15s → RECOMMENDATION: %-15s│", judgment, recommendation)
	line("└─────────────────────────────────────────────────────────────┘")

	return b.String()
}

func writeSignals(b *strings.Builder, signals []string) {
	if len(signals) == 0 {
		b.WriteString("│    • (None detected)                                       │\n")
		return
	}
	for _, sig := range capList(signals, 5) {
		fmt.Fprintf(b, "│    • %-55s│\n", truncate(sig, 55))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
