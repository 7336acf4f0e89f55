package footprint

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"odyssey-lab/internal/domain/models"
)

// CheckSocialMediaPresence simulates a per-platform profile lookup for
// the email's local part. Always returns one entry per platform in the
// fixed roster, found or not.
func (a *Analyzer) CheckSocialMediaPresence(ctx context.Context, email string) ([]models.SocialMediaCheck, error) {
	username, _, err := splitEmail(email)
	if err != nil {
		return nil, err
	}
	rng := a.randFn()

	lower := strings.ToLower(username)
	isCommon := false
	for _, word := range commonUsernames {
		if strings.Contains(lower, word) {
			isCommon = true
			break
		}
	}
	isShort := len(username) <= 5

	checks := make([]models.SocialMediaCheck, 0, len(socialPlatforms))
	for _, platform := range socialPlatforms {
		p := 0.3

		switch platform.Name {
		case "GitHub":
			if len(username) > 8 {
				p += 0.2
			}
		case "LinkedIn":
			if strings.Contains(username, ".") {
				p += 0.3
			}
		case "Twitter":
			if isShort {
				p += 0.4
			}
		case "Instagram":
			if !isCommon {
				p -= 0.1
			}
		}
		if isCommon {
			p += 0.3
		}
		if isShort {
			p += 0.2
		}
		p = clampProbability(p)

		check := models.SocialMediaCheck{Platform: platform.Name}
		if rng.Float64() < p {
			check.Found = true
			check.ProfileURL = platform.URLPrefix + username

			prior, ok := platformPublicPriors[platform.Name]
			if !ok {
				prior = 0.5
			}
			check.IsPublic = rng.Float64() < prior
			check.Followers = formatFollowers(rng.Intn(10000))
		}
		checks = append(checks, check)
	}

	// Pacing delay so the simulated lookup feels like a network call
	if err := a.sleep(ctx, a.cfg.SocialDelay); err != nil {
		return nil, err
	}

	return checks, nil
}

// formatFollowers renders a follower count, abbreviating above 1000
func formatFollowers(n int) string {
	if n > 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return strconv.Itoa(n)
}
