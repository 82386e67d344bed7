package relayer

import (
	"github.com/ethereum/go-ethereum/common"
)

type stateKind int

const (
	// stateWait: no batch in flight, waiting for snapshots and logs.
	stateWait stateKind = iota
	// stateRelaying: a batch of submissions is in flight.
	stateRelaying
	// stateYield: a checkpoint is ready to be handed to the caller.
	stateYield
)

// relayState is a tagged variant; only the fields of the active kind are
// meaningful. Transitions happen exclusively inside Poll.
type relayState struct {
	kind stateKind

	// stateRelaying
	pending      *submissionJoin
	block        uint64
	sourceHashes []common.Hash

	// stateYield; nil means the checkpoint was already consumed and the
	// next transition goes back to stateWait.
	checkpoint *uint64
}

func waitState() relayState {
	return relayState{kind: stateWait}
}

func relayingState(pending *submissionJoin, block uint64, sourceHashes []common.Hash) relayState {
	return relayState{
		kind:         stateRelaying,
		pending:      pending,
		block:        block,
		sourceHashes: sourceHashes,
	}
}

func yieldState(block uint64) relayState {
	return relayState{kind: stateYield, checkpoint: &block}
}
