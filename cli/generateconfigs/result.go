package cligenerateconfigs

import (
	"bytes"
	"fmt"

	"github.com/Ethernal-Tech/bridge-relay/common"
)

type CmdResult struct {
	OutputPath string `json:"outputPath"`
}

var _ common.ICommandResult = (*CmdResult)(nil)

func (r CmdResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString(fmt.Sprintf("configuration written to %s", r.OutputPath))

	return buffer.String()
}
