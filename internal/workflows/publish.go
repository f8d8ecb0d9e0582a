package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envdiff/internal/actions"
	"github.com/PolarWolf314/envdiff/internal/github"
)

// Output names published by the diff workflow.
const (
	OutputDiffs   = "diffs"
	OutputMessage = "message"
)

// OutputSetter publishes step outputs. *actions.Outputs satisfies it.
type OutputSetter interface {
	Set(name, value string) error
	SetJSON(name string, value any) error
}

// Commenter posts pull-request comments. *github.Client satisfies it.
type Commenter interface {
	PostComment(ctx context.Context, repository string, number int, body string) (string, error)
}

// PublishOptions configures where a diff result is reported.
type PublishOptions struct {
	// Outputs receives the diffs and message outputs.
	Outputs OutputSetter

	// SummaryPath, when set, gets the message appended as a job summary.
	SummaryPath string

	// Commenter, when set, posts the message to PullRequest in Repository.
	Commenter   Commenter
	Repository  string
	PullRequest int
}

// PublishResult describes what was published.
type PublishResult struct {
	// CommentURL is the URL of the posted comment, if any.
	CommentURL string

	// WroteSummary indicates the job summary was updated.
	WroteSummary bool
}

// Publish writes the diffs and message outputs, then the optional job
// summary and pull-request comment. Outputs are written before anything
// that talks to the network.
func Publish(ctx context.Context, result *DiffResult, opts PublishOptions) (*PublishResult, error) {
	if err := opts.Outputs.SetJSON(OutputDiffs, result.Diff); err != nil {
		return nil, err
	}
	if err := opts.Outputs.Set(OutputMessage, result.Message); err != nil {
		return nil, err
	}

	published := &PublishResult{}

	if opts.SummaryPath != "" {
		if err := actions.AppendSummary(opts.SummaryPath, result.Message); err != nil {
			return published, err
		}
		published.WroteSummary = true
	}

	if opts.Commenter != nil {
		url, err := opts.Commenter.PostComment(ctx, opts.Repository, opts.PullRequest, github.CommentBody(result.Message))
		if err != nil {
			return published, fmt.Errorf("commenting on pull request #%d: %w", opts.PullRequest, err)
		}
		published.CommentURL = url
	}

	return published, nil
}
