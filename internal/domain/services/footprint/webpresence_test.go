package footprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWebPresenceFoundOnly(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	// Every category reports a hit; only found entries survive
	checks := a.CheckWebPresence("someone@example.com")
	require.Len(t, checks, 4)
	for _, check := range checks {
		assert.True(t, check.Found)
		assert.NotEmpty(t, check.URL)
		assert.Contains(t, check.Description, "reference(s)")
	}
}

func TestCheckWebPresenceCapKeepsCategoryOrder(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	checks := a.CheckWebPresence("someone@example.com")
	require.Len(t, checks, 4)
	// First four categories in table order; the rest are truncated
	assert.Equal(t, "Professional Networks", checks[0].Source)
	assert.Equal(t, "Forums & Communities", checks[1].Source)
	assert.Equal(t, "Public Records", checks[2].Source)
	assert.Equal(t, "News Articles", checks[3].Source)
}

func TestCheckWebPresenceEmptyWhenNothingFound(t *testing.T) {
	a := newTestAnalyzer(t, neverHit)

	checks := a.CheckWebPresence("someone@example.com")
	assert.Empty(t, checks)
}

func TestCheckWebPresenceURLEscapesEmail(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	checks := a.CheckWebPresence("someone+tag@example.com")
	require.NotEmpty(t, checks)
	assert.True(t, strings.HasPrefix(checks[0].URL, "https://example.com/search?q="))
	assert.NotContains(t, checks[0].URL, "+tag")
}
