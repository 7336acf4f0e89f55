package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"odyssey-lab/internal/domain/models"
)

func makeBreaches(n int) []models.BreachFinding {
	findings := make([]models.BreachFinding, 0, n)
	for _, rec := range breachCorpus[:n] {
		findings = append(findings, rec.Finding())
	}
	return findings
}

func makePublicProfiles(n int) []models.SocialMediaCheck {
	checks := make([]models.SocialMediaCheck, len(socialPlatforms))
	for i, platform := range socialPlatforms {
		checks[i] = models.SocialMediaCheck{Platform: platform.Name}
		if i < n {
			checks[i].Found = true
			checks[i].IsPublic = true
		}
	}
	return checks
}

func makeWebHits(n int) []models.WebPresenceCheck {
	hits := make([]models.WebPresenceCheck, n)
	for i := range hits {
		hits[i] = models.WebPresenceCheck{Source: webPresenceSources[i], Found: true}
	}
	return hits
}

func TestCalculatePrivacyScore(t *testing.T) {
	tests := []struct {
		name     string
		breaches int
		public   int
		web      int
		risk     models.RiskLevel
		want     int
	}{
		{"pristine", 0, 0, 0, models.RiskLevelLow, 100},
		{"one breach", 1, 0, 0, models.RiskLevelLow, 88},
		{"public profiles", 0, 3, 0, models.RiskLevelLow, 76},
		{"web presence", 0, 0, 4, models.RiskLevelLow, 80},
		{"medium risk", 0, 0, 0, models.RiskLevelMedium, 92},
		{"high risk", 0, 0, 0, models.RiskLevelHigh, 85},
		{"combined", 2, 2, 2, models.RiskLevelMedium, 42},
		{"floor at zero", 3, 7, 4, models.RiskLevelHigh, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrivacyScore(
				makeBreaches(tt.breaches),
				makePublicProfiles(tt.public),
				makeWebHits(tt.web),
				models.EmailAnalysis{RiskLevel: tt.risk},
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePrivacyScoreIgnoresPrivateProfiles(t *testing.T) {
	social := []models.SocialMediaCheck{
		{Platform: "Twitter", Found: true, IsPublic: false},
		{Platform: "GitHub", Found: false, IsPublic: true},
	}
	got := CalculatePrivacyScore(nil, social, nil, models.EmailAnalysis{RiskLevel: models.RiskLevelLow})
	assert.Equal(t, 100, got)
}

func TestGenerateRecommendationsUniversalOnly(t *testing.T) {
	recs := GenerateRecommendations(nil, nil, nil, models.EmailAnalysis{RiskLevel: models.RiskLevelLow})
	assert.Equal(t, []string{
		"Use a password manager for unique passwords",
		"Regularly audit your online accounts",
		"Be cautious about information shared online",
	}, recs)
}

func TestGenerateRecommendationsConditionalTips(t *testing.T) {
	recs := GenerateRecommendations(
		makeBreaches(1),
		makePublicProfiles(3),
		makeWebHits(4),
		models.EmailAnalysis{RiskLevel: models.RiskLevelHigh},
	)

	// Breach tips lead, then the social tips, then the cap cuts in
	assert.Len(t, recs, 6)
	assert.Equal(t, "Change passwords for compromised accounts immediately", recs[0])
	assert.Contains(t, recs, "Review privacy settings on social media platforms")
}

func TestGenerateRecommendationsDeduplicated(t *testing.T) {
	recs := GenerateRecommendations(
		makeBreaches(2),
		makePublicProfiles(5),
		makeWebHits(4),
		models.EmailAnalysis{RiskLevel: models.RiskLevelHigh},
	)

	assert.LessOrEqual(t, len(recs), 6)
	seen := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		_, dup := seen[rec]
		assert.False(t, dup, rec)
		seen[rec] = struct{}{}
	}
}

func TestGenerateRecommendationsDeterministic(t *testing.T) {
	first := GenerateRecommendations(makeBreaches(2), makePublicProfiles(3), makeWebHits(2), models.EmailAnalysis{RiskLevel: models.RiskLevelMedium})
	second := GenerateRecommendations(makeBreaches(2), makePublicProfiles(3), makeWebHits(2), models.EmailAnalysis{RiskLevel: models.RiskLevelMedium})
	assert.Equal(t, first, second)
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b", "d"}, 3)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
