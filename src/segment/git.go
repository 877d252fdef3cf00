package segment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	log "github.com/sirupsen/logrus"

	"pista/src/config"
	perrors "pista/src/errors"
)

const shortHashLen = 7

// GitInfo is the repository state shown by the git segments
type GitInfo struct {
	Branch   string // branch name, or short commit hash when Detached
	Detached bool

	Staged    bool
	Unstaged  bool
	Untracked bool

	// Commits relative to the upstream tracking branch, zero without one
	Ahead  int
	Behind int
}

// InspectGit opens the repository containing dir and reads its HEAD. The
// worktree status and upstream distance are only computed when withStatus
// is set, since they are the expensive part. Returns errors.ErrNotARepo
// outside a repository.
func InspectGit(ctx context.Context, dir string, withStatus bool) (*GitInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, perrors.ErrNotARepo
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	info := &GitInfo{}
	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// Unborn branch: HEAD points at a branch with no commits yet
		ref, err := repo.Reference(plumbing.HEAD, false)
		if err != nil {
			return nil, fmt.Errorf("failed to read HEAD: %w", err)
		}
		info.Branch = ref.Target().Short()
		return info, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read HEAD: %w", err)
	case head.Name().IsBranch():
		info.Branch = head.Name().Short()
	default:
		info.Detached = true
		info.Branch = head.Hash().String()[:shortHashLen]
	}

	if !withStatus {
		return info, nil
	}
	if err := ctx.Err(); err != nil {
		return info, err
	}

	if err := readWorktreeStatus(repo, info); err != nil {
		return info, err
	}

	if !info.Detached {
		if err := readUpstreamDistance(ctx, repo, head, info); err != nil {
			log.WithFields(log.Fields{"branch": info.Branch, "error": err}).Debug("upstream distance unavailable")
		}
	}
	return info, nil
}

func readWorktreeStatus(repo *git.Repository, info *GitInfo) error {
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil
		}
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("failed to get worktree status: %w", err)
	}

	for _, fs := range status {
		if fs.Worktree == git.Untracked {
			info.Untracked = true
			continue
		}
		if fs.Staging != git.Unmodified {
			info.Staged = true
		}
		if fs.Worktree != git.Unmodified {
			info.Unstaged = true
		}
	}
	return nil
}

func readUpstreamDistance(ctx context.Context, repo *git.Repository, head *plumbing.Reference, info *GitInfo) error {
	cfg, err := repo.Config()
	if err != nil {
		return err
	}
	branch, ok := cfg.Branches[info.Branch]
	if !ok || branch.Remote == "" || branch.Merge == "" {
		return nil
	}

	upstreamName := plumbing.NewRemoteReferenceName(branch.Remote, branch.Merge.Short())
	if branch.Remote == "." {
		upstreamName = branch.Merge
	}
	upstream, err := repo.Reference(upstreamName, true)
	if err != nil {
		return fmt.Errorf("failed to resolve upstream %s: %w", upstreamName, err)
	}
	if upstream.Hash() == head.Hash() {
		return nil
	}

	local, err := ancestors(ctx, repo, head.Hash())
	if err != nil {
		return err
	}
	remote, err := ancestors(ctx, repo, upstream.Hash())
	if err != nil {
		return err
	}

	for h := range local {
		if _, ok := remote[h]; !ok {
			info.Ahead++
		}
	}
	for h := range remote {
		if _, ok := local[h]; !ok {
			info.Behind++
		}
	}
	return nil
}

// ancestors returns the set of commits reachable from h, h included
func ancestors(ctx context.Context, repo *git.Repository, h plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	commit, err := repo.CommitObject(h)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", h, err)
	}

	seen := make(map[plumbing.Hash]struct{})
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	return seen, err
}

// GitBranch formats the branch segment text. Empty when the segment is
// disabled or there is no repository.
func GitBranch(cfg config.PromptConfig, info *GitInfo) string {
	if cfg.GitBranchDisable || info == nil || info.Branch == "" {
		return ""
	}
	if cfg.GitBranchIcon == "" {
		return info.Branch
	}
	return cfg.GitBranchIcon + " " + info.Branch
}

// GitStatus formats the status segment text: one icon per kind of change,
// followed by ahead/behind icons with their commit counts.
func GitStatus(cfg config.PromptConfig, info *GitInfo) string {
	if cfg.GitStatusDisable || info == nil {
		return ""
	}

	var b strings.Builder
	if info.Staged {
		b.WriteString(cfg.GitStatusStagedIcon)
	}
	if info.Unstaged {
		b.WriteString(cfg.GitStatusUnstagedIcon)
	}
	if info.Untracked {
		b.WriteString(cfg.GitStatusUntrackedIcon)
	}
	if info.Ahead > 0 {
		b.WriteString(cfg.GitStatusAheadIcon + strconv.Itoa(info.Ahead))
	}
	if info.Behind > 0 {
		b.WriteString(cfg.GitStatusBehindIcon + strconv.Itoa(info.Behind))
	}
	return b.String()
}
