package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

var ipv4Pattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// URLChecker runs independent additive heuristics against a URL string.
// The verdict is count-based, not weighted: two or more findings make a
// URL DANGEROUS, one makes it SUSPICIOUS.
type URLChecker struct {
	logger *logger.Logger
}

// NewURLChecker creates a new URL checker
func NewURLChecker(log *logger.Logger) *URLChecker {
	return &URLChecker{
		logger: log.WithComponent("url-checker"),
	}
}

// Check analyzes a URL for signs of phishing or fraud.
func (s *URLChecker) Check(url string) *models.URLCheck {
	var indicators []string
	urlLower := strings.ToLower(url)

	for _, shortener := range urlShorteners {
		if strings.Contains(urlLower, shortener) {
			indicators = append(indicators, fmt.Sprintf("URL shortener (%s) hides real destination", shortener))
		}
	}

	if ipv4Pattern.MatchString(url) {
		indicators = append(indicators, "Uses IP address instead of domain name - highly suspicious")
	}

	for _, claim := range brandClaims {
		if !strings.Contains(urlLower, claim.Brand) {
			continue
		}
		legitimate := false
		for _, domain := range claim.Domains {
			if strings.Contains(urlLower, domain) {
				legitimate = true
				break
			}
		}
		if !legitimate {
			indicators = append(indicators, fmt.Sprintf("Fake %s domain - real sites are: %s",
				strings.ToUpper(claim.Brand), strings.Join(claim.Domains, ", ")))
		}
	}

	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(urlLower, tld) {
			indicators = append(indicators, fmt.Sprintf("Suspicious domain extension (%s)", tld))
		}
	}

	if strings.HasPrefix(urlLower, "http://") {
		for _, kw := range sensitiveURLKeywords {
			if strings.Contains(urlLower, kw) {
				indicators = append(indicators, "Not using HTTPS for sensitive site - legitimate banks always use HTTPS")
				break
			}
		}
	}

	host := strings.TrimPrefix(strings.TrimPrefix(urlLower, "http://"), "https://")
	host = strings.SplitN(host, "/", 2)[0]
	if len(strings.Split(host, ".")) > 4 {
		indicators = append(indicators, "Excessive subdomains - common phishing tactic")
	}

	isSuspicious := len(indicators) > 0

	verdict := models.URLVerdictSafe
	recommendation := "Link appears safe, but always verify independently"
	if len(indicators) >= 2 {
		verdict = models.URLVerdictDangerous
	} else if isSuspicious {
		verdict = models.URLVerdictSuspicious
	}
	if isSuspicious {
		recommendation = "Do NOT click this link"
	}

	s.logger.Debug().Str("verdict", string(verdict)).Int("indicators", len(indicators)).Msg("url checked")

	return &models.URLCheck{
		Status:         models.StatusSuccess,
		URL:            url,
		IsSuspicious:   isSuspicious,
		SafetyVerdict:  verdict,
		Indicators:     indicators,
		Recommendation: recommendation,
	}
}
