package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v52/github"
	"golang.org/x/oauth2"
)

const (
	AuthBasic  = "basic"
	AuthBearer = "bearer"
)

// Options configures how the client reaches and authenticates against the API
type Options struct {
	BaseURL    string // defaults to the public GitHub API
	AuthScheme string // AuthBasic (default) or AuthBearer
	Username   string
	Token      string
}

// MissingFilenameError reports a file entry whose filename is absent or empty
type MissingFilenameError struct {
	Index int
}

func (e *MissingFilenameError) Error() string {
	return fmt.Sprintf("file entry %d has no filename", e.Index)
}

// Client wraps the GitHub API client
type Client struct {
	client *github.Client
}

var _ FilesLister = (*Client)(nil)

// NewClient creates a new GitHub API client
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var httpClient *http.Client

	switch strings.ToLower(opts.AuthScheme) {
	case "", AuthBasic:
		tp := &github.BasicAuthTransport{
			Username: opts.Username,
			Password: opts.Token,
		}
		httpClient = tp.Client()
	case AuthBearer:
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: opts.Token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	default:
		return nil, fmt.Errorf("unsupported auth scheme: %s", opts.AuthScheme)
	}

	client := github.NewClient(httpClient)

	if opts.BaseURL != "" {
		baseURL, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("error parsing base URL: %w", err)
		}
		// go-github resolves paths relative to BaseURL, which must end in a slash
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	return &Client{client: client}, nil
}

// ListChangedFiles returns the files of a pull request in API order.
// Only the first page of results is requested.
func (c *Client) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error) {
	files, _, err := c.client.PullRequests.ListFiles(ctx, owner, repo, number, nil)
	if err != nil {
		return nil, fmt.Errorf("error listing files for pull request #%d: %w", number, err)
	}

	result := make([]ChangedFile, 0, len(files))
	for i, f := range files {
		if f.GetFilename() == "" {
			return nil, &MissingFilenameError{Index: i}
		}

		result = append(result, ChangedFile{
			Filename:  f.GetFilename(),
			Status:    f.GetStatus(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
		})
	}

	return result, nil
}
