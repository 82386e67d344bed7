package main

import (
	"github.com/Ethernal-Tech/bridge-relay/cli"
)

func main() {
	cli.NewRootCommand().Execute()
}
