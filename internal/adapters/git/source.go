// Package git checks out repositories for building using go-git.
package git

import (
	"context"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"

	"github.com/slipway-ci/slipway/internal/core/ports"
)

// Adapter implements ports.SourceService with go-git.
type Adapter struct {
	log *zap.Logger
}

func NewAdapter(log *zap.Logger) *Adapter {
	return &Adapter{log: log}
}

// Checkout clones repoURL into a temp dir and checks out the given commit.
// The clone is full rather than shallow: a webhook can race ahead of the
// remote's HEAD, so the requested commit may not be reachable at depth 1.
func (a *Adapter) Checkout(ctx context.Context, repoURL, sha string) (ports.Workspace, error) {
	tmpDir, err := os.MkdirTemp("", "slipway-checkout-*")
	if err != nil {
		return ports.Workspace{}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	a.log.Info("cloning repository", zap.String("repo", repoURL), zap.String("dir", tmpDir))
	repo, err := gogit.PlainCloneContext(ctx, tmpDir, false, &gogit.CloneOptions{
		URL: repoURL,
	})
	if err != nil {
		cleanup()
		return ports.Workspace{}, fmt.Errorf("failed to clone repo: %w", err)
	}

	if sha != "" {
		wt, err := repo.Worktree()
		if err != nil {
			cleanup()
			return ports.Workspace{}, fmt.Errorf("failed to open worktree: %w", err)
		}
		if err := wt.Checkout(&gogit.CheckoutOptions{Hash: plumbing.NewHash(sha)}); err != nil {
			cleanup()
			return ports.Workspace{}, fmt.Errorf("failed to checkout %s: %w", sha, err)
		}
		return ports.Workspace{Dir: tmpDir, CommitSHA: sha, Cleanup: cleanup}, nil
	}

	head, err := repo.Head()
	if err != nil {
		cleanup()
		return ports.Workspace{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return ports.Workspace{Dir: tmpDir, CommitSHA: head.Hash().String(), Cleanup: cleanup}, nil
}
