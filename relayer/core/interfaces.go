package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ConfirmedBatch is a confirmation-safe slice of home chain logs. ToBlock is
// the highest home block whose logs are included; it becomes the checkpoint
// value once every log in the batch has been relayed.
type ConfirmedBatch struct {
	Logs    []types.Log
	ToBlock uint64
}

// LogStreamer produces confirmed batches in non-decreasing ToBlock order.
type LogStreamer interface {
	// Poll returns the next confirmed batch. ready is false when no new
	// confirmed range exists yet and the caller should try again later.
	Poll(ctx context.Context) (batch *ConfirmedBatch, ready bool, err error)
}

// TxSender broadcasts a signed transaction to the foreign chain.
type TxSender interface {
	SendRawTx(ctx context.Context, tx *types.Transaction) (common.Hash, error)
}

// AccountReader exposes shared snapshots of the relayer account on the
// foreign chain. Snapshots are refreshed out of band; false means the value
// is not known yet. Readers never mutate.
type AccountReader interface {
	Balance() (*big.Int, bool)
	Nonce() (uint64, bool)
}

type Database interface {
	GetLastProcessedBlock(direction string) (block uint64, exists bool, err error)
	SetLastProcessedBlock(direction string, block uint64) error
	MarkTxsRelayed(direction string, hashes []common.Hash) error
	IsTxRelayed(direction string, hash common.Hash) (bool, error)
	Close() error
}

type Relayer interface {
	Start(ctx context.Context) error
}

type RelayerManager interface {
	Start() error
	Stop() error
	ErrorCh() <-chan error
}

// DirectionDeposit labels the home to foreign relay direction in the
// database and metrics. A withdrawal direction would get its own label.
const DirectionDeposit = "deposit"
