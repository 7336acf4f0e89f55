package footprint

import (
	"strings"

	"odyssey-lab/internal/domain/models"
)

// AnalyzeEmail classifies the email's domain into a risk tier and
// derives domain-specific suggestions. Deterministic: no randomness.
func (a *Analyzer) AnalyzeEmail(email string) (models.EmailAnalysis, error) {
	_, domain, err := splitEmail(email)
	if err != nil {
		return models.EmailAnalysis{}, err
	}

	isCommon := commonProviders[domain]

	risk := models.RiskLevelLow
	var suggestions []string

	if !isCommon {
		// Personal or business domain, potentially higher exposure
		risk = models.RiskLevelMedium
		suggestions = append(suggestions, "Consider using a separate email for public accounts")
	}

	if strings.Contains(domain, "temp") || strings.Contains(domain, "disposable") {
		risk = models.RiskLevelHigh
		suggestions = append(suggestions, "Temporary email detected - limited security features")
	}

	suggestions = append(suggestions,
		"Enable two-factor authentication where available",
		"Use unique passwords for each account",
	)

	domainAge := "Unknown"
	if isCommon {
		domainAge = "10+ years"
	}

	return models.EmailAnalysis{
		Domain:         domain,
		IsCommonDomain: isCommon,
		DomainAge:      domainAge,
		RiskLevel:      risk,
		Suggestions:    suggestions,
	}, nil
}
