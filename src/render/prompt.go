package render

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"pista/src/config"
	perrors "pista/src/errors"
	"pista/src/segment"
)

// Env describes the shell state a prompt is rendered for
type Env struct {
	Cwd        string
	Home       string
	Root       bool
	LastStatus int // exit status of the previous command
}

// GitInspector reads repository state for a directory
type GitInspector func(ctx context.Context, dir string, withStatus bool) (*segment.GitInfo, error)

// Prompt assembles the two-line prompt: path and git segments on the
// first line, the prompt character on the second.
func Prompt(ctx context.Context, cfg config.PromptConfig, env Env, p *Painter, inspect GitInspector) string {
	parts := []string{p.Paint(segment.Path(env.Cwd, env.Home), cfg.PathColor)}

	if info := gitInfo(ctx, cfg, env.Cwd, inspect); info != nil {
		if branch := segment.GitBranch(cfg, info); branch != "" {
			parts = append(parts, p.Paint(branch, cfg.GitBranchColor))
		}
		if status := segment.GitStatus(cfg, info); status != "" {
			parts = append(parts, p.Paint(status, cfg.GitStatusColor))
		}
	}

	icon, color := segment.Char(cfg, env.Root, env.LastStatus)
	return strings.Join(parts, " ") + "\n" + p.Paint(icon, color) + " "
}

func gitInfo(ctx context.Context, cfg config.PromptConfig, dir string, inspect GitInspector) *segment.GitInfo {
	if cfg.GitBranchDisable && cfg.GitStatusDisable {
		return nil
	}
	if inspect == nil {
		inspect = segment.InspectGit
	}

	info, err := inspect(ctx, dir, !cfg.GitStatusDisable)
	switch {
	case errors.Is(err, perrors.ErrNotARepo):
		return nil
	case err != nil:
		log.WithFields(log.Fields{"dir": dir, "error": err}).Warn("git segments unavailable")
		// a partially read repository still shows its branch
		return info
	}
	return info
}
