package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	perrors "pista/src/errors"
)

// Recognized config keys
const (
	KeyPathColor              = "path_color"
	KeyGitBranchIcon          = "git_branch_icon"
	KeyGitBranchColor         = "git_branch_color"
	KeyGitBranchDisable       = "git_branch_disable"
	KeyGitStatusStagedIcon    = "git_status_staged_icon"
	KeyGitStatusUnstagedIcon  = "git_status_unstaged_icon"
	KeyGitStatusUntrackedIcon = "git_status_untracked_icon"
	KeyGitStatusAheadIcon     = "git_status_ahead_icon"
	KeyGitStatusBehindIcon    = "git_status_behind_icon"
	KeyGitStatusColor         = "git_status_color"
	KeyGitStatusDisable       = "git_status_disable"
	KeyCharUserIcon           = "char_user_icon"
	KeyCharUserColor          = "char_user_color"
	KeyCharUserFailedIcon     = "char_user_failed_icon"
	KeyCharUserFailedColor    = "char_user_failed_color"
	KeyCharRootIcon           = "char_root_icon"
	KeyCharRootColor          = "char_root_color"
	KeyCharRootFailedIcon     = "char_root_failed_icon"
	KeyCharRootFailedColor    = "char_root_failed_color"
)

// PromptConfig holds the icons, colors and toggles of every prompt segment
type PromptConfig struct {
	PathColor Color `toml:"path_color"`

	GitBranchIcon    string `toml:"git_branch_icon"`
	GitBranchColor   Color  `toml:"git_branch_color"`
	GitBranchDisable bool   `toml:"git_branch_disable"`

	GitStatusStagedIcon    string `toml:"git_status_staged_icon"`
	GitStatusUnstagedIcon  string `toml:"git_status_unstaged_icon"`
	GitStatusUntrackedIcon string `toml:"git_status_untracked_icon"`
	GitStatusAheadIcon     string `toml:"git_status_ahead_icon"`
	GitStatusBehindIcon    string `toml:"git_status_behind_icon"`
	GitStatusColor         Color  `toml:"git_status_color"`
	GitStatusDisable       bool   `toml:"git_status_disable"`

	CharUserIcon        string `toml:"char_user_icon"`
	CharUserColor       Color  `toml:"char_user_color"`
	CharUserFailedIcon  string `toml:"char_user_failed_icon"`
	CharUserFailedColor Color  `toml:"char_user_failed_color"`
	CharRootIcon        string `toml:"char_root_icon"`
	CharRootColor       Color  `toml:"char_root_color"`
	CharRootFailedIcon  string `toml:"char_root_failed_icon"`
	CharRootFailedColor Color  `toml:"char_root_failed_color"`
}

// DefaultPromptConfig returns the config used when no value is supplied
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		PathColor: Blue,

		GitBranchIcon:    "\ue0a0", // powerline branch glyph
		GitBranchColor:   Cyan,
		GitBranchDisable: false,

		GitStatusStagedIcon:    "+",
		GitStatusUnstagedIcon:  "!",
		GitStatusUntrackedIcon: "?",
		GitStatusAheadIcon:     "↥",
		GitStatusBehindIcon:    "↧",
		GitStatusColor:         Cyan,
		GitStatusDisable:       false,

		CharUserIcon:        "$",
		CharUserColor:       Green,
		CharUserFailedIcon:  "$",
		CharUserFailedColor: Red,
		CharRootIcon:        "#",
		CharRootColor:       Green,
		CharRootFailedIcon:  "#",
		CharRootFailedColor: Red,
	}
}

// field binds a config key to the PromptConfig member it populates. Exactly
// one of color, flag or text is set.
type field struct {
	key   string
	color func(*PromptConfig) *Color
	flag  func(*PromptConfig) *bool
	text  func(*PromptConfig) *string
}

// fields lists every recognized key in declaration order
var fields = []field{
	{key: KeyPathColor, color: func(c *PromptConfig) *Color { return &c.PathColor }},
	{key: KeyGitBranchIcon, text: func(c *PromptConfig) *string { return &c.GitBranchIcon }},
	{key: KeyGitBranchColor, color: func(c *PromptConfig) *Color { return &c.GitBranchColor }},
	{key: KeyGitBranchDisable, flag: func(c *PromptConfig) *bool { return &c.GitBranchDisable }},
	{key: KeyGitStatusStagedIcon, text: func(c *PromptConfig) *string { return &c.GitStatusStagedIcon }},
	{key: KeyGitStatusUnstagedIcon, text: func(c *PromptConfig) *string { return &c.GitStatusUnstagedIcon }},
	{key: KeyGitStatusUntrackedIcon, text: func(c *PromptConfig) *string { return &c.GitStatusUntrackedIcon }},
	{key: KeyGitStatusAheadIcon, text: func(c *PromptConfig) *string { return &c.GitStatusAheadIcon }},
	{key: KeyGitStatusBehindIcon, text: func(c *PromptConfig) *string { return &c.GitStatusBehindIcon }},
	{key: KeyGitStatusColor, color: func(c *PromptConfig) *Color { return &c.GitStatusColor }},
	{key: KeyGitStatusDisable, flag: func(c *PromptConfig) *bool { return &c.GitStatusDisable }},
	{key: KeyCharUserIcon, text: func(c *PromptConfig) *string { return &c.CharUserIcon }},
	{key: KeyCharUserColor, color: func(c *PromptConfig) *Color { return &c.CharUserColor }},
	{key: KeyCharUserFailedIcon, text: func(c *PromptConfig) *string { return &c.CharUserFailedIcon }},
	{key: KeyCharUserFailedColor, color: func(c *PromptConfig) *Color { return &c.CharUserFailedColor }},
	{key: KeyCharRootIcon, text: func(c *PromptConfig) *string { return &c.CharRootIcon }},
	{key: KeyCharRootColor, color: func(c *PromptConfig) *Color { return &c.CharRootColor }},
	{key: KeyCharRootFailedIcon, text: func(c *PromptConfig) *string { return &c.CharRootFailedIcon }},
	{key: KeyCharRootFailedColor, color: func(c *PromptConfig) *Color { return &c.CharRootFailedColor }},
}

// Keys returns every recognized config key in declaration order
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// IsKey reports whether key is a recognized config key
func IsKey(key string) bool {
	for _, f := range fields {
		if f.key == key {
			return true
		}
	}
	return false
}

// IsColorKey reports whether key holds a color
func IsColorKey(key string) bool {
	for _, f := range fields {
		if f.key == key {
			return f.color != nil
		}
	}
	return false
}

// set parses raw into the member of cfg bound to f
func (f field) set(cfg *PromptConfig, raw string) error {
	switch {
	case f.color != nil:
		c, err := ParseColor(raw)
		if err != nil {
			return perrors.WithField(err, f.key)
		}
		*f.color(cfg) = c
	case f.flag != nil:
		b, err := ParseBool(raw)
		if err != nil {
			return perrors.WithField(err, f.key)
		}
		*f.flag(cfg) = b
	default:
		*f.text(cfg) = raw
	}
	return nil
}

// kindErr is the sentinel for a value of the wrong type for f
func (f field) kindErr() error {
	switch {
	case f.color != nil:
		return perrors.ErrInvalidColor
	case f.flag != nil:
		return perrors.ErrInvalidBool
	default:
		return perrors.ErrInvalidText
	}
}

func (f field) format(cfg *PromptConfig) string {
	switch {
	case f.color != nil:
		return f.color(cfg).String()
	case f.flag != nil:
		return formatBool(*f.flag(cfg))
	default:
		return *f.text(cfg)
	}
}

// FromMap builds a PromptConfig from raw key/value pairs. Unknown keys are
// ignored and absent keys keep their default. The first invalid value, in
// declaration order, fails the whole record with a *errors.FieldError.
func FromMap(values map[string]string) (PromptConfig, error) {
	cfg := DefaultPromptConfig()
	for _, f := range fields {
		raw, ok := values[f.key]
		if !ok {
			continue
		}
		if err := f.set(&cfg, raw); err != nil {
			return PromptConfig{}, err
		}
	}
	return cfg, nil
}

// ToMap serializes every field of cfg to the string form FromMap accepts
func ToMap(cfg PromptConfig) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.key] = f.format(&cfg)
	}
	return out
}

// Get returns the canonical string value of key in cfg
func Get(cfg PromptConfig, key string) (string, bool) {
	for _, f := range fields {
		if f.key == key {
			return f.format(&cfg), true
		}
	}
	return "", false
}

// Check validates every recognized key present in values and reports all
// failures at once, keyed by config key. It returns nil when FromMap would
// succeed.
func Check(values map[string]string) error {
	errs := validation.Errors{}
	for _, f := range fields {
		raw, ok := values[f.key]
		if !ok || f.text != nil {
			continue
		}
		f := f
		errs[f.key] = validation.Validate(raw, validation.By(func(value interface{}) error {
			var scratch PromptConfig
			return f.set(&scratch, value.(string))
		}))
	}
	return errs.Filter()
}
