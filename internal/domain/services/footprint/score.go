package footprint

import "odyssey-lab/internal/domain/models"

// CalculatePrivacyScore combines the sub-analysis outputs into a single
// 0-100 score. Deterministic given its inputs. Lower is worse.
func CalculatePrivacyScore(
	breaches []models.BreachFinding,
	social []models.SocialMediaCheck,
	web []models.WebPresenceCheck,
	analysis models.EmailAnalysis,
) int {
	score := 100

	score -= len(breaches) * 12
	score -= countPublicProfiles(social) * 8
	score -= len(web) * 5

	switch analysis.RiskLevel {
	case models.RiskLevelHigh:
		score -= 15
	case models.RiskLevelMedium:
		score -= 8
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// GenerateRecommendations derives actionable tips from the findings.
// Deterministic given its inputs; deduplicated in first-seen order and
// capped to six.
func GenerateRecommendations(
	breaches []models.BreachFinding,
	social []models.SocialMediaCheck,
	web []models.WebPresenceCheck,
	analysis models.EmailAnalysis,
) []string {
	var recs []string

	if len(breaches) > 0 {
		recs = append(recs,
			"Change passwords for compromised accounts immediately",
			"Enable two-factor authentication on all accounts",
			"Monitor your accounts regularly for suspicious activity",
		)
	}

	if countPublicProfiles(social) > 2 {
		recs = append(recs,
			"Review privacy settings on social media platforms",
			"Limit personal information visible to public",
		)
	}

	if len(web) > 3 {
		recs = append(recs,
			"Consider requesting removal from unwanted listings",
			"Set up Google Alerts for your name and email",
		)
	}

	if analysis.RiskLevel == models.RiskLevelHigh {
		recs = append(recs, "Consider switching to a more secure email provider")
	}

	recs = append(recs,
		"Use a password manager for unique passwords",
		"Regularly audit your online accounts",
		"Be cautious about information shared online",
	)

	return dedupe(recs, maxRecommendations)
}

// countPublicProfiles counts found profiles with public visibility
func countPublicProfiles(social []models.SocialMediaCheck) int {
	n := 0
	for _, check := range social {
		if check.Found && check.IsPublic {
			n++
		}
	}
	return n
}

// dedupe keeps first occurrences in order and caps the result
func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
