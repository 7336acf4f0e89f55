package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssey-lab/internal/domain/models"
)

func TestAnalyzeEmail(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	tests := []struct {
		name       string
		email      string
		wantCommon bool
		wantRisk   models.RiskLevel
		wantAge    string
	}{
		{"common provider", "x@gmail.com", true, models.RiskLevelLow, "10+ years"},
		{"uppercase domain", "x@GMAIL.COM", true, models.RiskLevelLow, "10+ years"},
		{"custom domain", "x@unknown-corp.io", false, models.RiskLevelMedium, "Unknown"},
		{"disposable domain", "x@disposable-temp.com", false, models.RiskLevelHigh, "Unknown"},
		{"temp substring", "x@tempmail.net", false, models.RiskLevelHigh, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := a.AnalyzeEmail(tt.email)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCommon, analysis.IsCommonDomain)
			assert.Equal(t, tt.wantRisk, analysis.RiskLevel)
			assert.Equal(t, tt.wantAge, analysis.DomainAge)

			// Universal suggestions are always appended last
			require.GreaterOrEqual(t, len(analysis.Suggestions), 2)
			assert.Contains(t, analysis.Suggestions, "Enable two-factor authentication where available")
			assert.Contains(t, analysis.Suggestions, "Use unique passwords for each account")
		})
	}
}

func TestAnalyzeEmailDomainIsLowercase(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	analysis, err := a.AnalyzeEmail("Someone@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "example.com", analysis.Domain)
}

func TestAnalyzeEmailDeterministic(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	first, err := a.AnalyzeEmail("x@unknown-corp.io")
	require.NoError(t, err)
	second, err := a.AnalyzeEmail("x@unknown-corp.io")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeEmailInvalid(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	_, err := a.AnalyzeEmail("no-at-sign")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestAnalyzeEmailSuggestionOrder(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	analysis, err := a.AnalyzeEmail("x@disposable-temp.com")
	require.NoError(t, err)

	// Domain-specific suggestions come before the universal ones
	require.Len(t, analysis.Suggestions, 4)
	assert.Equal(t, "Consider using a separate email for public accounts", analysis.Suggestions[0])
	assert.Equal(t, "Temporary email detected - limited security features", analysis.Suggestions[1])
}
