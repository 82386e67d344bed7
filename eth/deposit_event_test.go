package eth

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const (
	fixtureLogData = "000000000000000000000000aff3454fce5edbc8cca8697c15331677e6ebcccc" +
		"00000000000000000000000000000000000000000000000000000000000000f0"
	fixtureDepositTopic = "e1fffcc4923d04b559f4d29a8bfc6cda04eb5b0d3c460751c2402c5c5cc9109c"
	fixtureSourceTxHash = "884edad9ce6fa2440d8a54cc123490eb96d2768479d49ff9c7366125a9424364"
	fixturePayload      = "26b3293f" +
		"000000000000000000000000aff3454fce5edbc8cca8697c15331677e6ebcccc" +
		"00000000000000000000000000000000000000000000000000000000000000f0" +
		"884edad9ce6fa2440d8a54cc123490eb96d2768479d49ff9c7366125a9424364"
)

func fixtureDepositLog(t *testing.T) types.Log {
	t.Helper()

	data, err := hex.DecodeString(fixtureLogData)
	require.NoError(t, err)

	return types.Log{
		Data:   data,
		Topics: []common.Hash{common.HexToHash(fixtureDepositTopic)},
		TxHash: common.HexToHash(fixtureSourceTxHash),
	}
}

func TestParseDepositLog(t *testing.T) {
	t.Run("valid log", func(t *testing.T) {
		event, err := ParseDepositLog(fixtureDepositLog(t))
		require.NoError(t, err)

		require.Equal(t, common.HexToAddress("aff3454fce5edbc8cca8697c15331677e6ebcccc"), event.Recipient)
		require.Equal(t, big.NewInt(240), event.Value)
		require.Equal(t, common.HexToHash(fixtureSourceTxHash), event.SourceTxHash)
	})

	t.Run("no topics", func(t *testing.T) {
		log := fixtureDepositLog(t)
		log.Topics = nil

		_, err := ParseDepositLog(log)
		require.ErrorIs(t, err, ErrDepositLogMismatch)
	})

	t.Run("wrong topic", func(t *testing.T) {
		log := fixtureDepositLog(t)
		log.Topics = []common.Hash{common.HexToHash("0x01")}

		_, err := ParseDepositLog(log)
		require.ErrorIs(t, err, ErrDepositLogMismatch)
	})

	t.Run("missing transaction hash", func(t *testing.T) {
		log := fixtureDepositLog(t)
		log.TxHash = common.Hash{}

		_, err := ParseDepositLog(log)
		require.ErrorIs(t, err, ErrDepositLogNotMined)
	})

	t.Run("truncated data", func(t *testing.T) {
		log := fixtureDepositLog(t)
		log.Data = log.Data[:31]

		_, err := ParseDepositLog(log)
		require.ErrorIs(t, err, ErrDepositLogMismatch)
	})
}

func TestDepositRelayPayload(t *testing.T) {
	event, err := ParseDepositLog(fixtureDepositLog(t))
	require.NoError(t, err)

	payload, err := DepositRelayPayload(event)
	require.NoError(t, err)

	require.Equal(t, fixturePayload, hex.EncodeToString(payload))

	// deterministic: encoding the same event twice yields identical bytes
	payloadAgain, err := DepositRelayPayload(event)
	require.NoError(t, err)
	require.Equal(t, payload, payloadAgain)
}
