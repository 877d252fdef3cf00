package render

import (
	"context"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pista/src/config"
	perrors "pista/src/errors"
	"pista/src/segment"
)

func TestForeground(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color config.Color
		want  termenv.Color
	}{
		{"default", config.Default, termenv.NoColor{}},
		{"black", config.Black, termenv.ANSIBlack},
		{"red", config.Red, termenv.ANSIRed},
		{"white", config.White, termenv.ANSIWhite},
		{"fixed", config.Fixed(208), termenv.ANSI256Color(208)},
		{"rgb", config.RGB(255, 0, 128), termenv.RGBColor("#ff0080")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Foreground(tt.color))
		})
	}
}

func TestPaint(t *testing.T) {
	t.Parallel()

	p := NewPainter(termenv.TrueColor, ShellNone)
	assert.Equal(t, "\x1b[34m~/src\x1b[0m", p.Paint("~/src", config.Blue))
	assert.Equal(t, "\x1b[38;5;208mx\x1b[0m", p.Paint("x", config.Fixed(208)))
	assert.Equal(t, "\x1b[38;2;0;255;0mx\x1b[0m", p.Paint("x", config.RGB(0, 255, 0)))
	assert.Equal(t, "plain", p.Paint("plain", config.Default))
	assert.Empty(t, p.Paint("", config.Red))

	ascii := NewPainter(termenv.Ascii, ShellNone)
	assert.Equal(t, "x", ascii.Paint("x", config.RGB(1, 2, 3)))

	zsh := NewPainter(termenv.ANSI, ShellZsh)
	assert.Equal(t, "%{\x1b[31m%}$%{\x1b[0m%}", zsh.Paint("$", config.Red))

	assert.Equal(t, "%{\x1b[34m%}~/100%%%{\x1b[0m%}", zsh.Paint("~/100%", config.Blue))
	assert.Equal(t, "50%%", NewPainter(termenv.Ascii, ShellZsh).Paint("50%", config.Red))
	assert.Equal(t, "50%", NewPainter(termenv.Ascii, ShellBash).Paint("50%", config.Red))

	bash := NewPainter(termenv.ANSI, ShellBash)
	assert.Equal(t, "\\[\x1b[32m\\]$\\[\x1b[0m\\]", bash.Paint("$", config.Green))
}

func TestParseShell(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Shell{"": ShellNone, "none": ShellNone, "zsh": ShellZsh, "bash": ShellBash} {
		got, err := ParseShell(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseShell("fish")
	assert.Error(t, err)
}

func stubInspector(info *segment.GitInfo, err error, calls *int, sawStatus *bool) GitInspector {
	return func(ctx context.Context, dir string, withStatus bool) (*segment.GitInfo, error) {
		*calls++
		*sawStatus = withStatus
		return info, err
	}
}

func TestPrompt(t *testing.T) {
	t.Parallel()

	plain := NewPainter(termenv.Ascii, ShellNone)
	env := Env{Cwd: "/home/ana/src", Home: "/home/ana"}
	info := &segment.GitInfo{Branch: "main", Unstaged: true}

	var calls int
	var sawStatus bool
	cfg := config.DefaultPromptConfig()
	got := Prompt(context.Background(), cfg, env, plain, stubInspector(info, nil, &calls, &sawStatus))
	assert.Equal(t, "~/src \ue0a0 main !\n$ ", got)
	assert.Equal(t, 1, calls)
	assert.True(t, sawStatus)

	cfg.GitStatusDisable = true
	env.Root = true
	env.LastStatus = 1
	got = Prompt(context.Background(), cfg, env, plain, stubInspector(info, nil, &calls, &sawStatus))
	assert.Equal(t, "~/src \ue0a0 main\n# ", got)
	assert.False(t, sawStatus)

	cfg.GitBranchDisable = true
	calls = 0
	got = Prompt(context.Background(), cfg, env, plain, stubInspector(info, nil, &calls, &sawStatus))
	assert.Equal(t, "~/src\n# ", got)
	assert.Zero(t, calls, "git not inspected when both segments are disabled")
}

func TestPromptGitErrors(t *testing.T) {
	t.Parallel()

	plain := NewPainter(termenv.Ascii, ShellNone)
	env := Env{Cwd: "/tmp"}
	cfg := config.DefaultPromptConfig()
	var calls int
	var sawStatus bool

	got := Prompt(context.Background(), cfg, env, plain, stubInspector(nil, perrors.ErrNotARepo, &calls, &sawStatus))
	assert.Equal(t, "/tmp\n$ ", got)

	partial := &segment.GitInfo{Branch: "dev"}
	got = Prompt(context.Background(), cfg, env, plain, stubInspector(partial, errors.New("status failed"), &calls, &sawStatus))
	assert.Equal(t, "/tmp \ue0a0 dev\n$ ", got)
}
