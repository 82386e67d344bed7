package common

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type ICommandResult interface {
	GetOutput() string
}

// OutputFormatter buffers a command result or error and writes it
// once the command finishes.
type OutputFormatter struct {
	command *cobra.Command
	result  ICommandResult
	err     error
}

func InitializeOutputter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{command: cmd}
}

func (o *OutputFormatter) SetError(err error) {
	o.err = err
}

func (o *OutputFormatter) SetCommandResult(result ICommandResult) {
	o.result = result
}

func (o *OutputFormatter) WriteOutput() {
	if o.err != nil {
		_, _ = fmt.Fprintln(os.Stderr, o.getErrorOutput())

		os.Exit(1)
	}

	if o.result != nil {
		_, _ = fmt.Fprintln(os.Stdout, o.result.GetOutput())
	}
}

func (o *OutputFormatter) getErrorOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("Error: ")
	buffer.WriteString(o.err.Error())

	if o.command != nil {
		buffer.WriteString("\n\n")
		buffer.WriteString(o.command.UsageString())
	}

	return buffer.String()
}
