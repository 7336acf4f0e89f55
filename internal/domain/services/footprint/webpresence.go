package footprint

import (
	"fmt"
	"net/url"
	"strings"

	"odyssey-lab/internal/domain/models"
)

// CheckWebPresence simulates generic web search hits across the fixed
// source categories. Misses are computed internally and discarded; the
// result holds only found entries, capped to four.
func (a *Analyzer) CheckWebPresence(email string) []models.WebPresenceCheck {
	rng := a.randFn()

	checks := make([]models.WebPresenceCheck, 0, len(webPresenceSources))
	for _, source := range webPresenceSources {
		found := rng.Float64() < 0.4

		check := models.WebPresenceCheck{Source: source, Found: found}
		if found {
			refs := rng.Intn(10) + 1
			check.Description = fmt.Sprintf("Found %d reference(s) in %s", refs, strings.ToLower(source))
			check.URL = "https://example.com/search?q=" + url.QueryEscape(email)
		} else {
			check.Description = fmt.Sprintf("No references found in %s", strings.ToLower(source))
		}
		checks = append(checks, check)
	}

	results := make([]models.WebPresenceCheck, 0, maxWebPresence)
	for _, check := range checks {
		if !check.Found {
			continue
		}
		results = append(results, check)
		if len(results) == maxWebPresence {
			break
		}
	}
	return results
}
