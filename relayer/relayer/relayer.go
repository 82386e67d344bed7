package relayer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/Ethernal-Tech/bridge-relay/eth"
	ethtxhelper "github.com/Ethernal-Tech/bridge-relay/eth/txhelper"
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	"github.com/Ethernal-Tech/bridge-relay/telemetry"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"
)

const defaultPerTxTimeout = 10 * time.Second

// DepositRelay watches confirmed Deposit logs on the home chain and replays
// them on the foreign chain, one nonce-ordered transaction batch at a time.
// It never starts a new batch while a previous one is in flight, and it
// reports a checkpoint only after the whole batch has been accepted.
type DepositRelay struct {
	config  *core.RelayerConfiguration
	logs    core.LogStreamer
	account core.AccountReader
	signer  ethtxhelper.ITxSigner
	sender  core.TxSender
	db      core.Database
	logger  hclog.Logger

	foreignContract common.Address
	foreignChainID  *big.Int
	perTxTimeout    time.Duration
	state           relayState
}

var _ core.Relayer = (*DepositRelay)(nil)

func NewDepositRelay(
	config *core.RelayerConfiguration, logs core.LogStreamer, account core.AccountReader,
	signer ethtxhelper.ITxSigner, sender core.TxSender, db core.Database, logger hclog.Logger,
) *DepositRelay {
	perTxTimeout := config.Foreign.RequestTimeout
	if perTxTimeout == 0 {
		perTxTimeout = defaultPerTxTimeout
	}

	return &DepositRelay{
		config:          config,
		logs:            logs,
		account:         account,
		signer:          signer,
		sender:          sender,
		db:              db,
		logger:          logger,
		foreignContract: common.HexToAddress(config.Foreign.BridgeAddress),
		foreignChainID:  new(big.Int).SetUint64(config.Foreign.ChainID),
		perTxTimeout:    perTxTimeout,
		state:           waitState(),
	}
}

// Start drives the state machine until the context is cancelled or a fatal
// condition terminates the relay. Every emitted checkpoint is persisted
// before the next poll, so a restart resumes from the last committed batch.
func (r *DepositRelay) Start(ctx context.Context) error {
	r.logger.Debug("Deposit relay started")

	ticker := time.NewTicker(time.Millisecond * time.Duration(r.config.PullTimeMilis))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		for {
			checkpoint, ready, err := r.Poll(ctx)
			if err != nil {
				r.logger.Error("deposit relay terminated", "err", err)

				return err
			}

			if !ready {
				break
			}

			if err := r.db.SetLastProcessedBlock(core.DirectionDeposit, checkpoint); err != nil {
				return fmt.Errorf("failed to persist checkpoint %d: %w", checkpoint, err)
			}

			telemetry.UpdateRelayCheckpoint(core.DirectionDeposit, checkpoint)

			r.logger.Info("checkpoint persisted", "block", checkpoint)
		}
	}
}

// Poll advances the state machine by one or more synchronous transitions.
// ready is false when no progress is possible right now (unknown snapshots,
// no confirmed logs, or submissions still in flight); the state is left
// untouched in that case and polling again is always safe. A returned error
// is fatal for the relay instance.
func (r *DepositRelay) Poll(ctx context.Context) (checkpoint uint64, ready bool, err error) {
	for {
		switch r.state.kind {
		case stateWait:
			next, ok, err := r.pollWait(ctx)
			if err != nil || !ok {
				return 0, false, err
			}

			r.state = next
		case stateRelaying:
			next, ok, err := r.pollRelaying()
			if err != nil || !ok {
				return 0, false, err
			}

			r.state = next
		case stateYield:
			if r.state.checkpoint != nil {
				value := *r.state.checkpoint
				r.state.checkpoint = nil

				return value, true, nil
			}

			r.state = waitState()
		}
	}
}

func (r *DepositRelay) pollWait(ctx context.Context) (relayState, bool, error) {
	balance, balanceKnown := r.account.Balance()
	if !balanceKnown {
		r.logger.Warn("foreign account balance is unknown")

		return relayState{}, false, nil
	}

	nonce, nonceKnown := r.account.Nonce()
	if !nonceKnown {
		r.logger.Warn("foreign account nonce is unknown")

		return relayState{}, false, nil
	}

	batch, ready, err := r.logs.Poll(ctx)
	if err != nil || !ready {
		return relayState{}, false, err
	}

	r.logger.Info("got new deposits to relay", "count", len(batch.Logs), "block", batch.ToBlock)
	telemetry.UpdateDepositsObservedCounter(core.DirectionDeposit, len(batch.Logs))

	if len(batch.Logs) == 0 {
		return yieldState(batch.ToBlock), true, nil
	}

	events := make([]*eth.DepositEvent, 0, len(batch.Logs))

	for _, log := range batch.Logs {
		event, err := eth.ParseDepositLog(log)
		if err != nil {
			return relayState{}, false, fmt.Errorf("failed to decode deposit log: %w", err)
		}

		relayed, err := r.db.IsTxRelayed(core.DirectionDeposit, event.SourceTxHash)
		if err != nil {
			return relayState{}, false, err
		}

		if relayed {
			r.logger.Info("skipping already relayed deposit", "sourceTx", event.SourceTxHash)

			continue
		}

		events = append(events, event)
	}

	if len(events) == 0 {
		return yieldState(batch.ToBlock), true, nil
	}

	required := new(big.Int).Mul(
		new(big.Int).SetUint64(r.config.Txs.GasLimit),
		new(big.Int).SetUint64(r.config.Txs.GasPrice))
	required.Mul(required, big.NewInt(int64(len(events))))

	if required.Cmp(balance) > 0 {
		return relayState{}, false, fmt.Errorf("%w: required %s, balance %s",
			core.ErrInsufficientFunds, required, balance)
	}

	payloads := make([][]byte, len(events))
	sourceHashes := make([]common.Hash, len(events))

	for i, event := range events {
		payload, err := eth.DepositRelayPayload(event)
		if err != nil {
			return relayState{}, false, fmt.Errorf("failed to encode relay payload: %w", err)
		}

		payloads[i] = payload
		sourceHashes[i] = event.SourceTxHash
	}

	txs, err := r.buildBatch(payloads, nonce)
	if err != nil {
		return relayState{}, false, err
	}

	r.logger.Info("relaying deposits", "count", len(txs), "startNonce", nonce)

	join := newSubmissionJoin(ctx, r.sender, txs, r.perTxTimeout)

	return relayingState(join, batch.ToBlock, sourceHashes), true, nil
}

func (r *DepositRelay) pollRelaying() (relayState, bool, error) {
	done, hashes, err := r.state.pending.TryResult()
	if !done {
		return relayState{}, false, nil
	}

	if err != nil {
		telemetry.UpdateBatchSubmitFailed(core.DirectionDeposit)

		return relayState{}, false, fmt.Errorf("batch submission failed: %w", err)
	}

	if err := r.db.MarkTxsRelayed(core.DirectionDeposit, r.state.sourceHashes); err != nil {
		return relayState{}, false, fmt.Errorf("failed to record relayed deposits: %w", err)
	}

	r.logger.Info("deposit relay completed", "block", r.state.block, "txs", len(hashes))
	telemetry.UpdateBatchesRelayedCounter(core.DirectionDeposit)

	return yieldState(r.state.block), true, nil
}
