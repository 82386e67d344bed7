package clirelayer

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	configFlag     = "config"
	configFlagDesc = "path to config json file"
)

type initParams struct {
	config string
}

func (ip *initParams) validateFlags() error {
	if ip.config == "" {
		return fmt.Errorf("--%s flag not specified", configFlag)
	}

	return nil
}

func (ip *initParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&ip.config,
		configFlag,
		"",
		configFlagDesc,
	)
}
