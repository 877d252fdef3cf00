package segment

import "pista/src/config"

// Char picks the prompt character icon and color for the current user and
// the exit status of the previous command.
func Char(cfg config.PromptConfig, root bool, lastStatus int) (string, config.Color) {
	failed := lastStatus != 0
	switch {
	case root && failed:
		return cfg.CharRootFailedIcon, cfg.CharRootFailedColor
	case root:
		return cfg.CharRootIcon, cfg.CharRootColor
	case failed:
		return cfg.CharUserFailedIcon, cfg.CharUserFailedColor
	default:
		return cfg.CharUserIcon, cfg.CharUserColor
	}
}
