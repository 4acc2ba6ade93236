package ports

import "context"

// Workspace is a checked-out copy of a repository on local disk.
type Workspace struct {
	Dir       string
	CommitSHA string
	// Cleanup removes the checkout. Always safe to call.
	Cleanup func()
}

// SourceService fetches repository contents for building.
type SourceService interface {
	// Checkout clones repoURL and checks out the given commit. An empty
	// sha means the remote HEAD. The returned workspace reports the
	// commit that was actually checked out.
	Checkout(ctx context.Context, repoURL, sha string) (Workspace, error)
}
