// Package jsearch is the HTTP client for the JSearch job-search API on
// RapidAPI, the upstream behind /api/jobs.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"quickhire/internal/application/common"
	"quickhire/internal/domain/entities"
)

const (
	DefaultBaseURL = "https://jsearch.p.rapidapi.com"

	// Fallbacks for fields the upstream frequently leaves empty.
	defaultEmployerLogo   = "https://i.imgur.com/DNLN3Q1.png"
	defaultEmploymentType = "Full-time"
	defaultCity           = "Remote"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	numPages   int
}

type Options struct {
	// BaseURL overrides the RapidAPI endpoint, used by tests.
	BaseURL  string
	APIKey   string
	APIHost  string
	NumPages int
	Timeout  time.Duration
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.NumPages <= 0 {
		opts.NumPages = 5
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		apiHost:    opts.APIHost,
		numPages:   opts.NumPages,
	}
}

// upstreamJob mirrors the raw JSearch item shape. Most fields are optional
// upstream; normalisation fills the gaps with fixed defaults.
type upstreamJob struct {
	JobId             string                 `json:"job_id"`
	JobTitle          string                 `json:"job_title"`
	EmployerName      string                 `json:"employer_name"`
	EmployerLogo      string                 `json:"employer_logo"`
	JobCity           string                 `json:"job_city"`
	JobEmploymentType string                 `json:"job_employment_type"`
	JobApplyLink      string                 `json:"job_apply_link"`
	JobDescription    string                 `json:"job_description"`
	JobHighlights     entities.JobHighlights `json:"job_highlights"`
}

type searchResponse struct {
	Data []upstreamJob `json:"data"`
}

// Search forwards the query upstream and returns the normalised job list.
// A missing API key is a server misconfiguration; any transport failure,
// timeout or non-2xx status is ErrUpstreamUnavailable.
func (c *Client) Search(ctx context.Context, query string) ([]entities.Job, error) {
	if c.apiKey == "" {
		return nil, common.ErrMisconfigured
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", strconv.Itoa(c.numPages))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", common.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream returned %d", common.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrUpstreamUnavailable, err)
	}

	jobs := make([]entities.Job, 0, len(body.Data))
	for _, item := range body.Data {
		jobs = append(jobs, normalize(item))
	}
	return jobs, nil
}

func normalize(item upstreamJob) entities.Job {
	job := entities.Job{
		Id:             item.JobId,
		Title:          item.JobTitle,
		EmployerName:   item.EmployerName,
		EmployerLogo:   item.EmployerLogo,
		City:           item.JobCity,
		EmploymentType: item.JobEmploymentType,
		ApplyLink:      item.JobApplyLink,
		Description:    item.JobDescription,
		Highlights:     item.JobHighlights,
	}
	if job.EmployerLogo == "" {
		job.EmployerLogo = defaultEmployerLogo
	}
	if job.EmploymentType == "" {
		job.EmploymentType = defaultEmploymentType
	}
	if job.City == "" {
		job.City = defaultCity
	}
	return job
}
