package commands

import (
	"git.home.luguber.info/inful/postindex/internal/config"
	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	global.printf("Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		return ierrors.New(ierrors.CategoryConfig, ierrors.SeverityFatal, err.Error()).
			WithContext("path", root.Config)
	}
	global.printf("Initialized successfully\n")
	return nil
}
