package cliversion

import (
	"bytes"
	"fmt"

	"github.com/Ethernal-Tech/bridge-relay/common"
	"github.com/Ethernal-Tech/bridge-relay/versioning"
	"github.com/spf13/cobra"
)

func GetVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current bridge-relay version",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(
		&versionCmdResult{
			Version:   versioning.Version,
			Commit:    versioning.Commit,
			Branch:    versioning.Branch,
			BuildTime: versioning.BuildTime,
		},
	)
}

type versionCmdResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"buildTime"`
}

var _ common.ICommandResult = (*versionCmdResult)(nil)

func (r versionCmdResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString(fmt.Sprintf("Version:    %s\n", r.Version))
	buffer.WriteString(fmt.Sprintf("Commit:     %s\n", r.Commit))
	buffer.WriteString(fmt.Sprintf("Branch:     %s\n", r.Branch))
	buffer.WriteString(fmt.Sprintf("Build time: %s", r.BuildTime))

	return buffer.String()
}
