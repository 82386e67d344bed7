package cligenerateconfigs

import (
	"errors"

	"github.com/spf13/cobra"
)

const (
	outputFlag     = "output"
	outputFlagDesc = "path of the generated config json file"
)

type initParams struct {
	output string
}

func (ip *initParams) validateFlags() error {
	if ip.output == "" {
		return errors.New("output path not specified")
	}

	return nil
}

func (ip *initParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&ip.output,
		outputFlag,
		"config.json",
		outputFlagDesc,
	)
}
