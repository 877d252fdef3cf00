package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pista/src/config"
	"pista/src/render"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect pista configuration",
	Long: `Inspect pista configuration settings.

Examples:
  pista config list
  pista config get path_color
  pista config check
  pista config defaults > ~/.config/pista/config.toml
  pista config edit`,
}

// configListCmd represents the config list command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective value of every setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, values, err := loadPromptConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range config.Keys() {
			value, _ := config.Get(cfg, key)
			source := "default"
			if _, ok := values[key]; ok {
				source = "set"
			}
			line := fmt.Sprintf("  %-26s = %q", key, value)
			if c, err := config.ParseColor(value); err == nil && config.IsColorKey(key) {
				line += " " + render.Swatch(c)
			}
			fmt.Fprintf(out, "%s  (%s)\n", line, source)
		}

		if path, err := configPath(); err == nil {
			fmt.Fprintf(out, "\nConfig file: %s\n", path)
		}
		return nil
	},
}

// configGetCmd represents the config get command
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadPromptConfig()
		if err != nil {
			return err
		}
		value, ok := config.Get(cfg, args[0])
		if !ok {
			return fmt.Errorf("unknown setting %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

// configDefaultsCmd represents the config defaults command
var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default settings as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.WriteDefaults(cmd.OutOrStdout(), config.DefaultPromptConfig())
	},
}

// configCheckCmd represents the config check command
var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report every invalid setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		values, err := collectValues(viper.GetViper(), path, sets)
		if err != nil {
			return err
		}

		err = config.Check(values)
		var errs validation.Errors
		if !errors.As(err, &errs) {
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		}

		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", k, errs[k])
		}
		return fmt.Errorf("%d invalid setting(s)", len(errs))
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// configEditCmd represents the config edit command
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file in your default editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := cfgFile
		if configFile == "" {
			if _, err := config.EnsureConfigDir(); err != nil {
				return err
			}
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			configFile = path
		}

		// Seed a new file with the defaults
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			f, err := os.Create(configFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(f, "# pista configuration file")
			werr := config.WriteDefaults(f, config.DefaultPromptConfig())
			if err := f.Close(); err != nil {
				return err
			}
			if werr != nil {
				return werr
			}
		}

		// Get editor from environment
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = os.Getenv("VISUAL")
		}
		if editor == "" {
			// Try common editors
			for _, e := range []string{"vim", "vi", "nano", "emacs"} {
				if _, err := exec.LookPath(e); err == nil {
					editor = e
					break
				}
			}
		}
		if editor == "" {
			return fmt.Errorf("no editor found; set $EDITOR or $VISUAL")
		}

		editorCmd := exec.Command(editor, configFile)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr

		return editorCmd.Run()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}
