// Package github posts envdiff reports to pull requests.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	derrors "github.com/PolarWolf314/envdiff/internal/errors"

	gogithub "github.com/google/go-github/v28/github"
	"golang.org/x/oauth2"
)

const defaultAPIURL = "https://api.github.com/"

// CommentHeading starts every comment so reviewers can tell where it came from.
const CommentHeading = "### Environment file changes"

// Client posts comments through the GitHub REST API.
type Client struct {
	client *gogithub.Client
}

// NewClient returns a client authenticated with token. apiURL may be empty
// to use api.github.com; GitHub Enterprise runners pass GITHUB_API_URL.
func NewClient(ctx context.Context, token, apiURL string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: GITHUB_TOKEN is not set", derrors.ErrMissingInput)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gogithub.NewClient(oauth2.NewClient(ctx, ts))

	if apiURL != "" && strings.TrimRight(apiURL, "/")+"/" != defaultAPIURL {
		baseURL, err := url.Parse(strings.TrimRight(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("%w: invalid GITHUB_API_URL %q: %v", derrors.ErrInvalidConfig, apiURL, err)
		}
		client.BaseURL = baseURL
	}

	return &Client{client: client}, nil
}

// PostComment adds body as a comment on pull request number in repository
// ("owner/name") and returns the comment's URL.
func (c *Client) PostComment(ctx context.Context, repository string, number int, body string) (string, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return "", err
	}

	comment, resp, err := c.client.Issues.CreateComment(ctx, owner, repo, number, &gogithub.IssueComment{
		Body: gogithub.String(body),
	})
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return "", fmt.Errorf("%w: authentication failed: %v", derrors.ErrCommentFailed, err)
		}
		return "", fmt.Errorf("%w: %v", derrors.ErrCommentFailed, err)
	}

	return comment.GetHTMLURL(), nil
}

// CommentBody formats message for a pull-request comment.
func CommentBody(message string) string {
	return CommentHeading + "\n\n" + message
}

// PullRequestNumber reads the workflow event payload at eventPath and
// returns the pull request it refers to.
func PullRequestNumber(eventPath string) (int, error) {
	if eventPath == "" {
		return 0, fmt.Errorf("%w: GITHUB_EVENT_PATH is not set", derrors.ErrNoPullRequest)
	}

	data, err := os.ReadFile(eventPath)
	if err != nil {
		return 0, fmt.Errorf("reading event payload: %w", err)
	}

	var event gogithub.PullRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return 0, fmt.Errorf("%w: decoding event payload: %v", derrors.ErrNoPullRequest, err)
	}

	if number := event.GetPullRequest().GetNumber(); number > 0 {
		return number, nil
	}
	if number := event.GetNumber(); number > 0 {
		return number, nil
	}
	return 0, derrors.ErrNoPullRequest
}

func splitRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: repository %q is not owner/name", derrors.ErrInvalidConfig, repository)
	}
	return parts[0], parts[1], nil
}
