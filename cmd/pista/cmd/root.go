package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pista/src/config"
	perrors "pista/src/errors"
	"pista/src/logging"
	"pista/src/render"
	"pista/src/segment"
)

const envPrefix = "PISTA"

var (
	// Config file
	cfgFile string

	// Per-invocation overrides, key=value
	sets []string

	// Prompt flags
	lastStatus int
	shellName  string
	colorMode  string
	timeout    time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pista [flags]",
	Short: "Print a shell prompt with path, git and user segments",
	Long: `pista prints a two-line shell prompt: the working directory with git
branch and status, then a character that changes for root and after a failed
command.

Settings are read from the TOML config file, then PISTA_<KEY> environment
variables, then --set key=value flags, each layer overriding the previous one.

Example for zsh:
  PROMPT='$(pista --shell zsh --status $?)'`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(os.Stderr, viper.GetString("log_level"))
	},
	RunE: runPrompt,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithFields(errorFields(err)).Error(err)
		os.Exit(1)
	}
}

// errorFields returns the log fields for a failed run. Invalid setting
// values point at the command that lists all of them.
func errorFields(err error) log.Fields {
	fields := log.Fields{"command": os.Args[0]}
	if perrors.IsValueError(err) {
		fields["hint"] = "run 'pista config check' to list every invalid setting"
	}
	return fields
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pista/config.toml)")
	rootCmd.PersistentFlags().StringArrayVar(&sets, "set", nil, "Override a setting, e.g. --set path_color=#ff8800 (repeatable)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "Log level for messages on stderr (debug, info, warn, error)")

	rootCmd.Flags().IntVarP(&lastStatus, "status", "s", 0, "Exit status of the previous command")
	rootCmd.Flags().StringVar(&shellName, "shell", string(render.ShellNone), "Escape style for invisible sequences: zsh, bash or none")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Color profile: auto, truecolor, 256, ansi or none")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 500*time.Millisecond, "Time budget for resolving HEAD and the ahead/behind walk; worktree status is not interrupted")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig sets up environment variable lookups
func initConfig() {
	bindEnv(viper.GetViper())
}

// bindEnv makes v resolve keys from PISTA_<KEY> environment variables
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.AllowEmptyEnv(true) // an empty icon is a valid setting
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// configPath returns the --config file or the default location
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.ConfigFilePath()
}

// collectValues merges the raw setting layers: the TOML file at path, then
// environment variables seen by v, then key=value overrides.
func collectValues(v *viper.Viper, path string, overrides []string) (map[string]string, error) {
	values, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	for _, key := range config.Keys() {
		if v.IsSet(key) {
			values[key] = v.GetString(key)
		}
	}

	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", kv)
		}
		if !config.IsKey(key) {
			log.WithFields(log.Fields{"key": key}).Warn("ignoring unknown setting")
			continue
		}
		values[key] = value
	}
	return values, nil
}

// loadPromptConfig builds the effective config for this invocation
func loadPromptConfig() (config.PromptConfig, map[string]string, error) {
	path, err := configPath()
	if err != nil {
		return config.PromptConfig{}, nil, err
	}
	values, err := collectValues(viper.GetViper(), path, sets)
	if err != nil {
		return config.PromptConfig{}, nil, err
	}
	cfg, err := config.FromMap(values)
	if err != nil {
		return config.PromptConfig{}, values, err
	}
	return cfg, values, nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadPromptConfig()
	if err != nil {
		return err
	}

	shell, err := render.ParseShell(shellName)
	if err != nil {
		return err
	}
	profile, ok := render.ParseProfile(colorMode)
	if !ok {
		return fmt.Errorf("unsupported color mode %q", colorMode)
	}

	cwd, err := segment.WorkingDir()
	if err != nil {
		return err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Debug("home directory unknown")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	env := render.Env{
		Cwd:        cwd,
		Home:       home,
		Root:       os.Geteuid() == 0,
		LastStatus: lastStatus,
	}
	prompt := render.Prompt(ctx, cfg, env, render.NewPainter(profile, shell), segment.InspectGit)
	_, err = fmt.Fprint(cmd.OutOrStdout(), prompt)
	return err
}
