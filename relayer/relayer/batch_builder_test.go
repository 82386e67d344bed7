package relayer

import (
	"math/big"
	"testing"

	ethtxhelper "github.com/Ethernal-Tech/bridge-relay/eth/txhelper"
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	databaseaccess "github.com/Ethernal-Tech/bridge-relay/relayer/database_access"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestBuildBatch(t *testing.T) {
	wallet, err := ethtxhelper.GenerateNewTxWallet()
	require.NoError(t, err)

	r := NewDepositRelay(
		testRelayerConfig(),
		&core.LogStreamerMock{}, &core.AccountReaderMock{}, wallet, &core.TxSenderMock{},
		&databaseaccess.DBMock{}, hclog.NewNullLogger())

	payloads := [][]byte{{0x01}, {0x02}, {0x03}}

	txs, err := r.buildBatch(payloads, 11)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	signer := types.NewLondonSigner(new(big.Int).SetUint64(testRelayerConfig().Foreign.ChainID))

	for i, tx := range txs {
		require.Equal(t, uint64(11+i), tx.Nonce())
		require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000f1"), *tx.To())
		require.Zero(t, tx.Value().Sign())
		require.Equal(t, uint64(100_000), tx.Gas())
		require.Equal(t, big.NewInt(10), tx.GasPrice())
		require.Equal(t, payloads[i], tx.Data())

		// every transaction must be signed by the relay wallet
		from, err := types.Sender(signer, tx)
		require.NoError(t, err)
		require.Equal(t, wallet.GetAddress(), from)
	}
}

func TestBuildBatchEmpty(t *testing.T) {
	wallet, err := ethtxhelper.GenerateNewTxWallet()
	require.NoError(t, err)

	r := NewDepositRelay(
		testRelayerConfig(),
		&core.LogStreamerMock{}, &core.AccountReaderMock{}, wallet, &core.TxSenderMock{},
		&databaseaccess.DBMock{}, hclog.NewNullLogger())

	txs, err := r.buildBatch(nil, 0)
	require.NoError(t, err)
	require.Empty(t, txs)
}
