package recruit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resource names one list endpoint of the recruitment API.
type Resource string

const (
	Candidates       Resource = "candidates"
	InterviewRounds  Resource = "interview-rounds"
	JobPositions     Resource = "job-positions"
	DivisionManagers Resource = "division-managers"
	Documents        Resource = "documents"
	Contracts        Resource = "contracts"
	HealthCheckups   Resource = "health-checkups"
)

// Resources lists every resource in tab order.
var Resources = []Resource{
	Candidates,
	InterviewRounds,
	JobPositions,
	DivisionManagers,
	Documents,
	Contracts,
	HealthCheckups,
}

// Path returns the endpoint path of the resource.
func (r Resource) Path() string {
	return "/api/" + string(r)
}

// ParseResource resolves a resource by name.
func ParseResource(name string) (Resource, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, r := range Resources {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown resource %q", name)
}

// Fetcher defines the calls the console makes against the API.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchCandidates(ctx context.Context, query url.Values) ([]Candidate, error)
	FetchInterviewRounds(ctx context.Context, query url.Values) ([]InterviewRound, error)
	FetchJobPositions(ctx context.Context, query url.Values) ([]JobPosition, error)
	FetchDivisionManagers(ctx context.Context, query url.Values) ([]DivisionManager, error)
	FetchDocuments(ctx context.Context, query url.Values) ([]DocumentUpload, error)
	FetchContracts(ctx context.Context, query url.Values) ([]ContractOfEmployment, error)
	FetchHealthCheckups(ctx context.Context, query url.Values) ([]HealthCheckup, error)
	UpdateInterviewRound(ctx context.Context, id int64, patch RoundPatch) (InterviewRound, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Fetch dispatches to the typed list call for res. The result is the typed
// slice, e.g. []Candidate for Candidates.
func Fetch(ctx context.Context, f Fetcher, res Resource, query url.Values) (any, error) {
	switch res {
	case Candidates:
		return f.FetchCandidates(ctx, query)
	case InterviewRounds:
		return f.FetchInterviewRounds(ctx, query)
	case JobPositions:
		return f.FetchJobPositions(ctx, query)
	case DivisionManagers:
		return f.FetchDivisionManagers(ctx, query)
	case Documents:
		return f.FetchDocuments(ctx, query)
	case Contracts:
		return f.FetchContracts(ctx, query)
	case HealthCheckups:
		return f.FetchHealthCheckups(ctx, query)
	default:
		return nil, fmt.Errorf("unknown resource %q", res)
	}
}

// Client talks to the recruitment HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string
	newID     func() string
}

const (
	defaultAPIURL    = "127.0.0.1:8080"
	defaultUserAgent = "talentdesk/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for apiURL. A non-empty token is sent as a
// bearer credential.
func NewClient(apiURL, token string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		token:     strings.TrimSpace(token),
		userAgent: defaultUserAgent,
		newID:     uuid.NewString,
	}, nil
}

// FetchCandidates lists candidates.
func (c *Client) FetchCandidates(ctx context.Context, query url.Values) ([]Candidate, error) {
	return list[Candidate](ctx, c, Candidates, query)
}

// FetchInterviewRounds lists interview rounds.
func (c *Client) FetchInterviewRounds(ctx context.Context, query url.Values) ([]InterviewRound, error) {
	return list[InterviewRound](ctx, c, InterviewRounds, query)
}

// FetchJobPositions lists job positions.
func (c *Client) FetchJobPositions(ctx context.Context, query url.Values) ([]JobPosition, error) {
	return list[JobPosition](ctx, c, JobPositions, query)
}

// FetchDivisionManagers lists division managers.
func (c *Client) FetchDivisionManagers(ctx context.Context, query url.Values) ([]DivisionManager, error) {
	return list[DivisionManager](ctx, c, DivisionManagers, query)
}

// FetchDocuments lists document uploads.
func (c *Client) FetchDocuments(ctx context.Context, query url.Values) ([]DocumentUpload, error) {
	return list[DocumentUpload](ctx, c, Documents, query)
}

// FetchContracts lists employment contracts.
func (c *Client) FetchContracts(ctx context.Context, query url.Values) ([]ContractOfEmployment, error) {
	return list[ContractOfEmployment](ctx, c, Contracts, query)
}

// FetchHealthCheckups lists health checkups.
func (c *Client) FetchHealthCheckups(ctx context.Context, query url.Values) ([]HealthCheckup, error) {
	return list[HealthCheckup](ctx, c, HealthCheckups, query)
}

// UpdateInterviewRound saves the notes and score of a round and returns the
// stored record.
func (c *Client) UpdateInterviewRound(ctx context.Context, id int64, patch RoundPatch) (InterviewRound, error) {
	if c == nil {
		return InterviewRound{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return InterviewRound{}, fmt.Errorf("round id required")
	}
	rel := &url.URL{Path: InterviewRounds.Path() + "/" + strconv.FormatInt(id, 10)}
	var payload InterviewRound
	if err := c.doURL(ctx, http.MethodPatch, rel, patch, &payload); err != nil {
		return InterviewRound{}, err
	}
	return payload, nil
}

func list[T any](ctx context.Context, c *Client, res Resource, query url.Values) ([]T, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: res.Path(), RawQuery: query.Encode()}
	var payload ListResponse[T]
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Items == nil {
		return []T{}, nil
	}
	return payload.Items, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s %s returned status %d (request %s)", method, rel.Path, resp.StatusCode, requestID)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
