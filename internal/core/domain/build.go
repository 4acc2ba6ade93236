package domain

import "time"

// BuildStatus tracks the lifecycle of a build record.
type BuildStatus string

const (
	StatusQueued    BuildStatus = "queued"
	StatusRunning   BuildStatus = "running"
	StatusSucceeded BuildStatus = "succeeded"
	StatusFailed    BuildStatus = "failed"
)

// ShortSHALength is how many characters of the commit hash go into the
// image tag, matching `git rev-parse --short=7`.
const ShortSHALength = 7

// Build represents one webhook-triggered (or manually started) run of the
// checkout/build/push pipeline.
type Build struct {
	ID         string      `json:"id"`
	RepoURL    string      `json:"repo_url"`
	Ref        string      `json:"ref"`
	CommitSHA  string      `json:"commit_sha"`
	ShortSHA   string      `json:"short_sha"`
	Tags       []string    `json:"tags"`
	Status     BuildStatus `json:"status"`
	Error      string      `json:"error,omitempty"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}

// Finished reports whether the build reached a terminal status.
func (b Build) Finished() bool {
	return b.Status == StatusSucceeded || b.Status == StatusFailed
}

// ImageRef identifies a tagged image in a repository.
type ImageRef struct {
	Repository string `json:"repository"`
	Tag        string `json:"tag"`
}

func (r ImageRef) String() string {
	return r.Repository + ":" + r.Tag
}

// ShortSHA truncates a commit hash to the tag-friendly short form.
func ShortSHA(sha string) string {
	if len(sha) <= ShortSHALength {
		return sha
	}
	return sha[:ShortSHALength]
}
