package footprint

import "odyssey-lab/internal/domain/models"

// Result caps
const (
	maxBreachFindings  = 3
	maxWebPresence     = 4
	maxRecommendations = 6
)

// breachCorpus is the static corpus of historical breaches used for
// simulated matching. Initialized once, read-only afterwards.
var breachCorpus = []models.BreachRecord{
	{
		Source:      "Adobe Systems",
		Title:       "Adobe Data Breach",
		Description: "User account information compromised",
		Year:        2013,
		DataTypes:   []string{"Email addresses", "Passwords", "Names"},
		Domains:     []string{"adobe.com"},
	},
	{
		Source:      "LinkedIn",
		Title:       "LinkedIn Data Breach",
		Description: "Professional profiles exposed",
		Year:        2012,
		DataTypes:   []string{"Email addresses", "Passwords"},
		Domains:     []string{"linkedin.com"},
	},
	{
		Source:      "Yahoo",
		Title:       "Yahoo Data Breach",
		Description: "Massive user data compromise",
		Year:        2014,
		DataTypes:   []string{"Email addresses", "Passwords", "Personal information"},
		Domains:     []string{"yahoo.com", "yahoo.co.uk"},
	},
	{
		Source:      "Equifax",
		Title:       "Equifax Data Breach",
		Description: "Credit information exposed",
		Year:        2017,
		DataTypes:   []string{"Personal information", "SSNs", "Credit data"},
		Domains:     []string{"equifax.com"},
	},
	{
		Source:      "Facebook",
		Title:       "Facebook Data Breach",
		Description: "User profile data exposed",
		Year:        2019,
		DataTypes:   []string{"Email addresses", "Phone numbers", "Personal info"},
		Domains:     []string{"facebook.com"},
	},
	{
		Source:      "MySpace",
		Title:       "MySpace Data Breach",
		Description: "Social media profiles compromised",
		Year:        2013,
		DataTypes:   []string{"Email addresses", "Passwords", "Usernames"},
		Domains:     []string{"myspace.com"},
	},
	{
		Source:      "Dropbox",
		Title:       "Dropbox Data Breach",
		Description: "Cloud storage accounts breached",
		Year:        2012,
		DataTypes:   []string{"Email addresses", "Passwords"},
		Domains:     []string{"dropbox.com"},
	},
	{
		Source:      "Tumblr",
		Title:       "Tumblr Data Breach",
		Description: "Blogging platform user data exposed",
		Year:        2013,
		DataTypes:   []string{"Email addresses", "Passwords"},
		Domains:     []string{"tumblr.com"},
	},
}

// breachProneDomains are the free providers whose users get
// probabilistic breach matching.
var breachProneDomains = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"hotmail.com": {},
	"outlook.com": {},
}

// commonProviders is the allow-list of major consumer email providers
var commonProviders = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"outlook.com":    true,
	"hotmail.com":    true,
	"icloud.com":     true,
	"aol.com":        true,
	"protonmail.com": true,
}

// socialPlatform pairs a platform name with its profile URL prefix
type socialPlatform struct {
	Name      string
	URLPrefix string
}

// socialPlatforms is the fixed roster checked on every analysis. Every
// result carries one entry per platform, found or not.
var socialPlatforms = []socialPlatform{
	{Name: "Twitter", URLPrefix: "https://twitter.com/"},
	{Name: "Instagram", URLPrefix: "https://instagram.com/"},
	{Name: "Facebook", URLPrefix: "https://facebook.com/"},
	{Name: "LinkedIn", URLPrefix: "https://linkedin.com/in/"},
	{Name: "GitHub", URLPrefix: "https://github.com/"},
	{Name: "TikTok", URLPrefix: "https://tiktok.com/@"},
	{Name: "YouTube", URLPrefix: "https://youtube.com/c/"},
}

// platformPublicPriors is the probability that a found profile is
// publicly visible. Platforms missing from the table default to 0.5.
var platformPublicPriors = map[string]float64{
	"Twitter":   0.7,
	"Instagram": 0.4,
	"Facebook":  0.3,
	"LinkedIn":  0.8,
	"GitHub":    0.9,
	"TikTok":    0.6,
	"YouTube":   0.8,
}

// commonUsernames are local parts that are likely to be taken on most
// platforms. Matched as case-insensitive substrings.
var commonUsernames = []string{"admin", "test", "user", "john", "jane", "alex", "mike", "sarah"}

// webPresenceSources are the fixed search categories for the web
// presence simulation.
var webPresenceSources = []string{
	"Professional Networks",
	"Forums & Communities",
	"Public Records",
	"News Articles",
	"Academic Papers",
	"Business Listings",
}
