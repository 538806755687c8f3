package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/metrics"
	"freelance_bidding/internal/models/project"

	"github.com/go-playground/validator/v10"
)

var ErrFetch = errors.New("catalog fetch failed")

var validate = validator.New()

type Provider struct {
	log        *slog.Logger
	url        string
	httpClient *http.Client
}

func New(log *slog.Logger, url string, timeout time.Duration) *Provider {
	return &Provider{
		log:        log,
		url:        strings.TrimSpace(url),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Projects never fails. Any fetch problem is logged and the fallback list is returned.
func (p *Provider) Projects(ctx context.Context) []project.Project {
	const op = "catalog.Projects"
	log := p.log.With(slog.String("op", op))

	if p.url == "" {
		log.Info("no catalog url configured, using fallback projects")
		return project.Fallback()
	}

	projects, err := p.fetch(ctx)
	if err != nil {
		log.Warn("failed to fetch projects, using fallback", sl.Err(err))
		metrics.CatalogFallbacksTotal.Inc()
		return project.Fallback()
	}

	log.Info("projects loaded", slog.Int("count", len(projects)))
	return projects
}

func (p *Provider) fetch(ctx context.Context) ([]project.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	var projects []project.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrFetch, err)
	}
	if projects == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrFetch)
	}

	for i, pr := range projects {
		if err := validate.Struct(pr); err != nil {
			return nil, fmt.Errorf("%w: project %d: %w", ErrFetch, i, err)
		}
	}

	return projects, nil
}

// Filter keeps projects whose name or description contains search
// (case-insensitive) and which list skill. Empty arguments match everything.
func Filter(projects []project.Project, search, skill string) []project.Project {
	needle := strings.ToLower(strings.TrimSpace(search))
	result := make([]project.Project, 0, len(projects))

	for _, p := range projects {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if skill != "" && !hasSkill(p, skill) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// Skills returns every distinct skill in first-seen order.
func Skills(projects []project.Project) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)

	for _, p := range projects {
		for _, s := range p.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			result = append(result, s)
		}
	}

	return result
}

func hasSkill(p project.Project, skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
