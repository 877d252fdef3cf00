package segment

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pista/src/config"
	perrors "pista/src/errors"
)

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cwd  string
		home string
		want string
	}{
		{"home itself", "/home/ana", "/home/ana", "~"},
		{"below home", "/home/ana/src/pista", "/home/ana", "~/src/pista"},
		{"sibling prefix", "/home/anabel", "/home/ana", "/home/anabel"},
		{"outside home", "/etc", "/home/ana", "/etc"},
		{"trailing slash home", "/home/ana/x", "/home/ana/", "~/x"},
		{"no home", "/tmp", "", "/tmp"},
		{"root home", "/srv", "/", "/srv"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Path(tt.cwd, tt.home))
		})
	}
}

func TestChar(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultPromptConfig()
	cfg.CharUserFailedIcon = "✗"
	cfg.CharRootFailedIcon = "‼"

	icon, color := Char(cfg, false, 0)
	assert.Equal(t, "$", icon)
	assert.Equal(t, config.Green, color)

	icon, color = Char(cfg, false, 127)
	assert.Equal(t, "✗", icon)
	assert.Equal(t, config.Red, color)

	icon, _ = Char(cfg, true, 0)
	assert.Equal(t, "#", icon)

	icon, color = Char(cfg, true, 1)
	assert.Equal(t, "‼", icon)
	assert.Equal(t, config.Red, color)
}

func TestGitSegments(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultPromptConfig()
	info := &GitInfo{Branch: "main", Staged: true, Untracked: true, Ahead: 2, Behind: 1}

	assert.Equal(t, "\ue0a0 main", GitBranch(cfg, info))
	assert.Equal(t, "+?↥2↧1", GitStatus(cfg, info))

	cfg.GitBranchIcon = ""
	assert.Equal(t, "main", GitBranch(cfg, info))

	cfg.GitBranchDisable = true
	cfg.GitStatusDisable = true
	assert.Empty(t, GitBranch(cfg, info))
	assert.Empty(t, GitStatus(cfg, info))

	assert.Empty(t, GitBranch(config.DefaultPromptConfig(), nil))
	assert.Empty(t, GitStatus(config.DefaultPromptConfig(), &GitInfo{Branch: "main"}))
}

var testSig = &object.Signature{Name: "pista", Email: "pista@example.com", When: time.Unix(1700000000, 0)}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) plumbing.Hash {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	_, err = wt.Add(name)
	require.NoError(t, err)
	h, err := wt.Commit("update "+name, &git.CommitOptions{Author: testSig})
	require.NoError(t, err)
	return h
}

func TestInspectGitNotARepo(t *testing.T) {
	t.Parallel()

	_, err := InspectGit(context.Background(), t.TempDir(), true)
	assert.ErrorIs(t, err, perrors.ErrNotARepo)
}

func TestInspectGitUnborn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	head, err := repo.Reference(plumbing.HEAD, false)
	require.NoError(t, err)

	info, err := InspectGit(context.Background(), dir, true)
	require.NoError(t, err)
	assert.Equal(t, head.Target().Short(), info.Branch)
	assert.False(t, info.Detached)
}

func TestInspectGitStatus(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	commitFile(t, repo, dir, "a.txt", "one")

	head, err := repo.Head()
	require.NoError(t, err)
	branch := head.Name().Short()

	info, err := InspectGit(context.Background(), dir, true)
	require.NoError(t, err)
	assert.Equal(t, &GitInfo{Branch: branch}, info)

	// unstaged change, a staged new file and an untracked file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("two"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("b.txt")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("c"), 0644))

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))

	info, err = InspectGit(context.Background(), sub, true)
	require.NoError(t, err)
	assert.True(t, info.Staged)
	assert.True(t, info.Unstaged)
	assert.True(t, info.Untracked)

	info, err = InspectGit(context.Background(), dir, false)
	require.NoError(t, err)
	assert.Equal(t, &GitInfo{Branch: branch}, info, "status skipped without withStatus")
}

func TestInspectGitDetached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	first := commitFile(t, repo, dir, "a.txt", "one")
	commitFile(t, repo, dir, "a.txt", "two")

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Hash: first}))

	info, err := InspectGit(context.Background(), dir, false)
	require.NoError(t, err)
	assert.True(t, info.Detached)
	assert.Equal(t, first.String()[:7], info.Branch)
}

func TestInspectGitUpstream(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	base := commitFile(t, repo, dir, "a.txt", "one")

	head, err := repo.Head()
	require.NoError(t, err)
	branch := head.Name().Short()

	// upstream gets one commit the local branch lacks
	remoteTip := commitFile(t, repo, dir, "r.txt", "remote")
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", branch), remoteTip)))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Reset(&git.ResetOptions{Commit: base, Mode: git.HardReset}))
	commitFile(t, repo, dir, "l1.txt", "local")
	commitFile(t, repo, dir, "l2.txt", "local")

	require.NoError(t, repo.CreateBranch(&gitconfig.Branch{
		Name:   branch,
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName(branch),
	}))

	info, err := InspectGit(context.Background(), dir, true)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Ahead)
	assert.Equal(t, 1, info.Behind)
}
