package domain

import "strings"

const branchRefPrefix = "refs/heads/"

// PushEvent is the subset of a GitHub push webhook payload the pipeline
// cares about.
type PushEvent struct {
	Ref        string `json:"ref"`
	After      string `json:"after"`
	Deleted    bool   `json:"deleted"`
	Repository struct {
		FullName string `json:"full_name"`
		CloneURL string `json:"clone_url"`
	} `json:"repository"`
	Pusher struct {
		Name string `json:"name"`
	} `json:"pusher"`
}

// Branch returns the branch name for branch pushes, or "" for tag pushes.
func (e PushEvent) Branch() string {
	if !strings.HasPrefix(e.Ref, branchRefPrefix) {
		return ""
	}
	return strings.TrimPrefix(e.Ref, branchRefPrefix)
}

// ShouldBuild reports whether this event is a commit push to the given
// branch. Branch deletions arrive as pushes too and must not build.
func (e PushEvent) ShouldBuild(branch string) bool {
	return !e.Deleted && e.Branch() == branch && e.After != ""
}
