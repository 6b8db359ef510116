package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// RoleRecommendation is one suggested job role for a personality type.
type RoleRecommendation struct {
	Title  string `json:"title"`
	Domain string `json:"domain"`
}

// RoleClient wraps the external job-role recommendation API. When no base
// URL is configured it falls back to a built-in table so the rest of the
// product works in local development.
type RoleClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRoleClient creates a new recommendation API client
func NewRoleClient(baseURL string) *RoleClient {
	if baseURL == "" {
		log.Println("Warning: ROLES_API_BASE not set, using built-in role table")
	}
	return &RoleClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type rolesResponse struct {
	Roles []RoleRecommendation `json:"roles"`
}

// RolesForType fetches role recommendations for a four-letter type.
func (c *RoleClient) RolesForType(ctx context.Context, categoricalType string) ([]RoleRecommendation, error) {
	if c.baseURL == "" {
		return fallbackRoles(categoricalType), nil
	}

	endpoint := fmt.Sprintf("%s/roles?type=%s", c.baseURL, url.QueryEscape(categoricalType))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roles API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roles API returned status %d", resp.StatusCode)
	}

	var parsed rolesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode roles response: %w", err)
	}
	return parsed.Roles, nil
}

// fallbackRoles keys off the middle letters, which group the sixteen types
// into four temperaments.
func fallbackRoles(categoricalType string) []RoleRecommendation {
	if len(categoricalType) != 4 {
		return nil
	}

	switch {
	case categoricalType[1] == 'N' && categoricalType[2] == 'T':
		return []RoleRecommendation{
			{Title: "Bioinformatics Analyst", Domain: "Computational Biology"},
			{Title: "Clinical Data Manager", Domain: "Clinical Research"},
			{Title: "Research Scientist", Domain: "R&D"},
		}
	case categoricalType[1] == 'N' && categoricalType[2] == 'F':
		return []RoleRecommendation{
			{Title: "Genetic Counselor", Domain: "Healthcare"},
			{Title: "Science Communicator", Domain: "Outreach"},
			{Title: "Public Health Program Coordinator", Domain: "Public Health"},
		}
	case categoricalType[3] == 'J':
		return []RoleRecommendation{
			{Title: "Regulatory Affairs Specialist", Domain: "Compliance"},
			{Title: "Quality Assurance Officer", Domain: "Manufacturing"},
			{Title: "Laboratory Manager", Domain: "Operations"},
		}
	default:
		return []RoleRecommendation{
			{Title: "Field Application Specialist", Domain: "Biotech Sales"},
			{Title: "Biotech Research Associate", Domain: "Wet Lab"},
			{Title: "Clinical Trial Coordinator", Domain: "Clinical Research"},
		}
	}
}
