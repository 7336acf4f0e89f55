package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel classifies how exposed an email domain leaves its owner
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// BreachRecord is an entry in the static breach corpus. Domains is used
// only for matching and never leaves the engine.
type BreachRecord struct {
	Source      string
	Title       string
	Description string
	Year        int
	DataTypes   []string
	Domains     []string
}

// Finding converts a corpus record into a caller-facing finding,
// dropping the matching domains.
func (r BreachRecord) Finding() BreachFinding {
	dataTypes := make([]string, len(r.DataTypes))
	copy(dataTypes, r.DataTypes)
	return BreachFinding{
		Source:      r.Source,
		Title:       r.Title,
		Description: r.Description,
		Year:        r.Year,
		DataTypes:   dataTypes,
	}
}

// BreachFinding represents a breach the email was matched against
type BreachFinding struct {
	Source      string   `json:"source"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	DataTypes   []string `json:"data_types"`
}

// EmailAnalysis classifies the email's domain
type EmailAnalysis struct {
	Domain         string    `json:"domain"`
	IsCommonDomain bool      `json:"is_common_domain"`
	DomainAge      string    `json:"domain_age"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Suggestions    []string  `json:"suggestions"`
}

// SocialMediaCheck is the per-platform presence result. ProfileURL and
// Followers are set only when the profile was found; IsPublic is
// meaningful only when Found is true.
type SocialMediaCheck struct {
	Platform   string `json:"platform"`
	Found      bool   `json:"found"`
	ProfileURL string `json:"profile_url,omitempty"`
	IsPublic   bool   `json:"is_public"`
	Followers  string `json:"followers,omitempty"`
}

// WebPresenceCheck is a web search hit in one of the fixed source
// categories. Only entries with Found set survive into the final result.
type WebPresenceCheck struct {
	Source      string `json:"source"`
	Found       bool   `json:"found"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// DigitalFootprintResult is the aggregate of one analysis run. It is
// assembled once and never mutated afterwards.
type DigitalFootprintResult struct {
	ID                  uuid.UUID          `json:"id"`
	Email               string             `json:"email"`
	Breaches            []BreachFinding    `json:"breaches"`
	SocialMediaPresence []SocialMediaCheck `json:"social_media_presence"`
	WebPresence         []WebPresenceCheck `json:"web_presence"`
	PrivacyScore        int                `json:"privacy_score"`
	Recommendations     []string           `json:"recommendations"`
	EmailAnalysis       EmailAnalysis      `json:"email_analysis"`
	AnalyzedAt          time.Time          `json:"analyzed_at"`
}

// AnalysisSummary is a stored-history row without the full payload
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PrivacyScore int       `json:"privacy_score"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}

// AnalyzeRequest is the payload of the analyze endpoint
type AnalyzeRequest struct {
	Email string `json:"email"`
}
