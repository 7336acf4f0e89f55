package footprint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantPlatforms = []string{"Twitter", "Instagram", "Facebook", "LinkedIn", "GitHub", "TikTok", "YouTube"}

func TestCheckSocialMediaPresenceRosterComplete(t *testing.T) {
	// Every analysis reports the full roster exactly once, found or not
	for _, rng := range []Rand{alwaysHit, neverHit} {
		a := newTestAnalyzer(t, rng)
		checks, err := a.CheckSocialMediaPresence(context.Background(), "someone@example.com")
		require.NoError(t, err)
		require.Len(t, checks, 7)

		got := make([]string, len(checks))
		for i, check := range checks {
			got[i] = check.Platform
		}
		assert.Equal(t, wantPlatforms, got)
	}
}

func TestCheckSocialMediaPresenceAllFound(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	checks, err := a.CheckSocialMediaPresence(context.Background(), "admin@gmail.com")
	require.NoError(t, err)

	for _, check := range checks {
		assert.True(t, check.Found, check.Platform)
		assert.True(t, check.IsPublic, check.Platform)
		assert.True(t, strings.HasSuffix(check.ProfileURL, "admin"), check.ProfileURL)
		assert.Equal(t, "0", check.Followers)
	}
}

func TestCheckSocialMediaPresenceNoneFound(t *testing.T) {
	a := newTestAnalyzer(t, neverHit)

	checks, err := a.CheckSocialMediaPresence(context.Background(), "longuniquename@example.com")
	require.NoError(t, err)

	for _, check := range checks {
		assert.False(t, check.Found, check.Platform)
		assert.Empty(t, check.ProfileURL, check.Platform)
		assert.Empty(t, check.Followers, check.Platform)
		assert.False(t, check.IsPublic, check.Platform)
	}
}

func TestCheckSocialMediaPresenceProbabilityClamped(t *testing.T) {
	// "admin" stacks the short, common and Twitter boosts past 1.0; the
	// clamped probability still makes even the highest draw a hit.
	a := newTestAnalyzer(t, neverHit)

	checks, err := a.CheckSocialMediaPresence(context.Background(), "admin@example.com")
	require.NoError(t, err)

	var twitter bool
	for _, check := range checks {
		if check.Platform == "Twitter" {
			twitter = check.Found
		}
	}
	assert.True(t, twitter)
}

func TestCheckSocialMediaPresenceUsernameKeepsCasing(t *testing.T) {
	a := newTestAnalyzer(t, alwaysHit)

	checks, err := a.CheckSocialMediaPresence(context.Background(), "John.Doe@example.com")
	require.NoError(t, err)

	for _, check := range checks {
		require.True(t, check.Found)
		assert.True(t, strings.HasSuffix(check.ProfileURL, "John.Doe"), check.ProfileURL)
	}
}

func TestFormatFollowers(t *testing.T) {
	assert.Equal(t, "0", formatFollowers(0))
	assert.Equal(t, "999", formatFollowers(999))
	assert.Equal(t, "1000", formatFollowers(1000))
	assert.Equal(t, "1.5K", formatFollowers(1500))
	assert.Equal(t, "9.9K", formatFollowers(9876))
}
