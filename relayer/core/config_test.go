package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() *RelayerConfiguration {
	return &RelayerConfiguration{
		Home: HomeChainConfig{
			NodeURL:               "http://localhost:8545",
			BridgeAddress:         "0x00000000000000000000000000000000000000b1",
			RequiredConfirmations: 12,
		},
		Foreign: ForeignChainConfig{
			NodeURL:       "http://localhost:8546",
			BridgeAddress: "0x00000000000000000000000000000000000000f1",
			ChainID:       1337,
		},
		Txs: TxConfig{
			GasLimit: 3_000_000,
			GasPrice: 1_000_000_000,
		},
		PullTimeMilis: 1000,
		DBPath:        "relay.db",
	}
}

func TestRelayerConfigurationValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("invalid home node url", func(t *testing.T) {
		config := validConfig()
		config.Home.NodeURL = "not a url"

		require.ErrorContains(t, config.Validate(), "invalid home node url")
	})

	t.Run("invalid foreign node url", func(t *testing.T) {
		config := validConfig()
		config.Foreign.NodeURL = ""

		require.ErrorContains(t, config.Validate(), "invalid foreign node url")
	})

	t.Run("missing bridge address", func(t *testing.T) {
		config := validConfig()
		config.Foreign.BridgeAddress = ""

		require.ErrorContains(t, config.Validate(), "bridge contract addresses")
	})

	t.Run("missing gas parameters", func(t *testing.T) {
		config := validConfig()
		config.Txs.GasPrice = 0

		require.ErrorContains(t, config.Validate(), "gas limit and gas price")
	})

	t.Run("missing pull time", func(t *testing.T) {
		config := validConfig()
		config.PullTimeMilis = 0

		require.ErrorContains(t, config.Validate(), "pull time")
	})

	t.Run("missing db path", func(t *testing.T) {
		config := validConfig()
		config.DBPath = ""

		require.ErrorContains(t, config.Validate(), "db path")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{
			"home": {
				"nodeUrl": "http://localhost:8545",
				"bridgeAddress": "0x00000000000000000000000000000000000000b1",
				"requiredConfirmations": 12,
				"startBlock": 100
			},
			"foreign": {
				"nodeUrl": "http://localhost:8546",
				"bridgeAddress": "0x00000000000000000000000000000000000000f1",
				"chainId": 1337
			},
			"txs": {
				"gasLimit": 3000000,
				"gasPrice": 1000000000
			},
			"pullTime": 1000,
			"dbPath": "relay.db"
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, uint64(100), config.Home.StartBlock)
		require.Equal(t, uint64(1337), config.Foreign.ChainID)
		require.Equal(t, uint64(3_000_000), config.Txs.GasLimit)
	})

	t.Run("invalid content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"pullTime": 1000}`), 0600))

		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "invalid configuration")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})
}
