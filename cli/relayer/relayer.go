package clirelayer

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ethernal-Tech/bridge-relay/common"
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	relayermanager "github.com/Ethernal-Tech/bridge-relay/relayer/relayer_manager"
	"github.com/Ethernal-Tech/bridge-relay/telemetry"
	"github.com/spf13/cobra"
)

var initParamsData = &initParams{}

func GetRunRelayerCommand() *cobra.Command {
	runRelayerCmd := &cobra.Command{
		Use:     "run-relayer",
		Short:   "runs the deposit relayer",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	initParamsData.setFlags(runRelayerCmd)

	return runRelayerCmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return initParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config, err := core.LoadConfig(initParamsData.config)
	if err != nil {
		outputter.SetError(err)

		return
	}

	logger, err := common.NewLogger(config.Logger)
	if err != nil {
		outputter.SetError(err)

		return
	}

	telemetryService := telemetry.NewTelemetry(config.Telemetry, logger.Named("TELEMETRY"))
	if telemetryService.IsEnabled() {
		if err := telemetryService.Start(); err != nil {
			logger.Error("telemetry start failed", "err", err)
			outputter.SetError(err)

			return
		}

		defer func() {
			_ = telemetryService.Close(context.Background())
		}()
	}

	relayerManager, err := relayermanager.NewRelayerManager(config, logger)
	if err != nil {
		logger.Error("relayer manager creation failed", "err", err)
		outputter.SetError(err)

		return
	}

	if err := relayerManager.Start(); err != nil {
		logger.Error("relayer manager start failed", "err", err)
		outputter.SetError(err)

		return
	}

	defer relayerManager.Stop()

	signalChannel := make(chan os.Signal, 1)
	// Notify the signalChannel when the interrupt signal is received (Ctrl+C)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	select {
	case <-signalChannel:
	case err = <-relayerManager.ErrorCh():
		outputter.SetError(err)
	}
}
