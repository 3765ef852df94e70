// Package ghissue creates issues in a GitHub repository through the REST API.
package ghissue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 10 * time.Second
)

// IssueCreator creates issues in a single GitHub repository. It holds no
// per-call state, so one instance may be shared across goroutines.
type IssueCreator struct {
	httpClient *http.Client
	logger     *zap.Logger
	baseURL    string
	repoOwner  string
	repoName   string
}

type options struct {
	logger     *zap.Logger
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	proxyURL   string
}

// Option configures an IssueCreator.
type Option func(*options)

// WithLogger sets the logger used to report successful creations. The
// default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTimeout sets the HTTP request timeout. The default is 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(o *options) {
		o.proxyURL = proxyURL
	}
}

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client entirely. The caller becomes
// responsible for authentication, timeout and proxy configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// NewIssueCreator creates an IssueCreator for the given repository,
// authenticating with the personal access token.
func NewIssueCreator(token, repoOwner, repoName string, opts ...Option) (*IssueCreator, error) {
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}
	if repoOwner == "" {
		return nil, fmt.Errorf("repository owner is required")
	}
	if repoName == "" {
		return nil, fmt.Errorf("repository name is required")
	}

	o := options{
		logger:  zap.NewNop(),
		timeout: defaultTimeout,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		ctx := context.Background()
		if o.proxyURL != "" {
			proxy, err := url.Parse(o.proxyURL)
			if err != nil {
				return nil, fmt.Errorf("failed to parse proxy url: %w", err)
			}
			if proxy.Scheme == "" || proxy.Host == "" {
				return nil, fmt.Errorf("invalid proxy url: %s", o.proxyURL)
			}
			base := &http.Client{
				Transport: &http.Transport{Proxy: http.ProxyURL(proxy)},
			}
			ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
		}

		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = o.timeout
	}

	return &IssueCreator{
		httpClient: httpClient,
		logger:     o.logger,
		baseURL:    o.baseURL,
		repoOwner:  repoOwner,
		repoName:   repoName,
	}, nil
}

// Create posts the issue to the repository and returns details of the
// created issue. Failures of any kind are reported as *IssueCreationError.
func (c *IssueCreator) Create(ctx context.Context, issue Issue) (*IssueResponse, error) {
	if issue.Title == "" {
		return nil, &IssueCreationError{Message: "issue title is required"}
	}

	payload, err := json.Marshal(issue.payload())
	if err != nil {
		return nil, &IssueCreationError{
			Message: fmt.Sprintf("failed to encode issue: %v", err),
		}
	}

	reqURL := fmt.Sprintf("%s/repos/%s/%s/issues", c.baseURL, c.repoOwner, c.repoName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &IssueCreationError{
			Message: fmt.Sprintf("failed to build request: %v", err),
		}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &IssueCreationError{
			Message: fmt.Sprintf("request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &IssueCreationError{
			Message:    fmt.Sprintf("failed to read response body: %v", err),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &IssueCreationError{
			Message:      "failed to create issue",
			StatusCode:   resp.StatusCode,
			ResponseText: string(body),
		}
	}

	created, err := decodeIssueResponse(body, c.repoOwner, c.repoName)
	if err != nil {
		return nil, &IssueCreationError{
			Message:      fmt.Sprintf("failed to decode response: %v", err),
			StatusCode:   resp.StatusCode,
			ResponseText: string(body),
		}
	}

	c.logger.Info("created issue",
		zap.String("owner", c.repoOwner),
		zap.String("repo", c.repoName),
		zap.Int("number", created.IssueNumber),
		zap.String("url", created.IssueURL),
	)

	return created, nil
}
