package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ethernal-Tech/bridge-relay/common"
	"github.com/Ethernal-Tech/bridge-relay/telemetry"
)

type HomeChainConfig struct {
	NodeURL               string        `json:"nodeUrl"`
	BridgeAddress         string        `json:"bridgeAddress"`
	RequestTimeout        time.Duration `json:"requestTimeout"`
	RequiredConfirmations uint64        `json:"requiredConfirmations"`
	MaxBlockRange         uint64        `json:"maxBlockRange"`
	// StartBlock seeds the log stream cursor when the database holds no
	// checkpoint yet.
	StartBlock uint64 `json:"startBlock"`
}

type ForeignChainConfig struct {
	NodeURL        string        `json:"nodeUrl"`
	BridgeAddress  string        `json:"bridgeAddress"`
	ChainID        uint64        `json:"chainId"`
	RequestTimeout time.Duration `json:"requestTimeout"`
	KeyFilePath    string        `json:"keyFilePath"`
	// SyncInterval is how often the account watcher refreshes the shared
	// balance and nonce snapshots.
	SyncInterval time.Duration `json:"syncInterval"`
}

// TxConfig holds the fixed gas parameters for relay transactions.
type TxConfig struct {
	GasLimit uint64 `json:"gasLimit"`
	GasPrice uint64 `json:"gasPrice"`
}

type APIConfig struct {
	Port           uint32   `json:"port"` // 0 disables the api
	PathPrefix     string   `json:"pathPrefix"`
	AllowedHeaders []string `json:"allowedHeaders"`
	AllowedOrigins []string `json:"allowedOrigins"`
	AllowedMethods []string `json:"allowedMethods"`
}

type RelayerConfiguration struct {
	Home          HomeChainConfig           `json:"home"`
	Foreign       ForeignChainConfig        `json:"foreign"`
	Txs           TxConfig                  `json:"txs"`
	PullTimeMilis uint64                    `json:"pullTime"`
	DBPath        string                    `json:"dbPath"`
	API           APIConfig                 `json:"api"`
	Telemetry     telemetry.TelemetryConfig `json:"telemetry"`
	Logger        common.LoggerConfig       `json:"logger"`
}

func LoadConfig(path string) (*RelayerConfiguration, error) {
	config, err := common.LoadConfig[RelayerConfiguration](path)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (config *RelayerConfiguration) Validate() error {
	if !common.IsValidURL(config.Home.NodeURL) {
		return fmt.Errorf("invalid home node url: %s", config.Home.NodeURL)
	}

	if !common.IsValidURL(config.Foreign.NodeURL) {
		return fmt.Errorf("invalid foreign node url: %s", config.Foreign.NodeURL)
	}

	if config.Home.BridgeAddress == "" || config.Foreign.BridgeAddress == "" {
		return errors.New("bridge contract addresses must be set")
	}

	if config.Txs.GasLimit == 0 || config.Txs.GasPrice == 0 {
		return errors.New("gas limit and gas price must be set")
	}

	if config.PullTimeMilis == 0 {
		return errors.New("pull time must be set")
	}

	if config.DBPath == "" {
		return errors.New("db path must be set")
	}

	return nil
}
