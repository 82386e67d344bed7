package cligenerateconfigs

import (
	"time"

	"github.com/Ethernal-Tech/bridge-relay/common"
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	"github.com/Ethernal-Tech/bridge-relay/telemetry"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var initParamsData = &initParams{}

func GetGenerateConfigsCommand() *cobra.Command {
	generateConfigsCmd := &cobra.Command{
		Use:     "generate-configs",
		Short:   "writes a default relayer configuration file",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	initParamsData.setFlags(generateConfigsCmd)

	return generateConfigsCmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return initParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config := defaultConfig()

	if err := common.SaveJSON(initParamsData.output, config, true); err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&CmdResult{OutputPath: initParamsData.output})
}

func defaultConfig() *core.RelayerConfiguration {
	return &core.RelayerConfiguration{
		Home: core.HomeChainConfig{
			NodeURL:               "http://localhost:8545",
			BridgeAddress:         "",
			RequestTimeout:        10 * time.Second,
			RequiredConfirmations: 12,
			MaxBlockRange:         1000,
			StartBlock:            0,
		},
		Foreign: core.ForeignChainConfig{
			NodeURL:        "http://localhost:9545",
			BridgeAddress:  "",
			ChainID:        1,
			RequestTimeout: 10 * time.Second,
			KeyFilePath:    "relayer.key",
			SyncInterval:   10 * time.Second,
		},
		Txs: core.TxConfig{
			GasLimit: 3_000_000,
			GasPrice: 1_000_000_000,
		},
		PullTimeMilis: 1000,
		DBPath:        "db/relayer.db",
		API: core.APIConfig{
			Port:           0,
			PathPrefix:     "api",
			AllowedHeaders: []string{"Content-Type"},
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
		},
		Telemetry: telemetry.TelemetryConfig{
			PrometheusAddr: "",
			DataDogAddr:    "",
		},
		Logger: common.LoggerConfig{
			LogLevel:      hclog.Info,
			JSONLogFormat: false,
			AppendFile:    true,
			LogFilePath:   "logs/relayer.log",
		},
	}
}
