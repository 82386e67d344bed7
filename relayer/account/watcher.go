package account

import (
	"context"
	"math/big"
	"time"

	ethtxhelper "github.com/Ethernal-Tech/bridge-relay/eth/txhelper"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-retry"
)

const (
	defaultSyncInterval   = 10 * time.Second
	defaultRequestTimeout = 10 * time.Second
	retryBaseWait         = 500 * time.Millisecond
	retryMaxRetries       = 5
)

// Watcher refreshes the shared State from the foreign chain. It is the only
// writer; relay instances read the snapshots through core.AccountReader.
type Watcher struct {
	state          *State
	txHelper       ethtxhelper.IEthTxHelper
	addr           common.Address
	syncInterval   time.Duration
	requestTimeout time.Duration
	logger         hclog.Logger
}

func NewWatcher(
	state *State, txHelper ethtxhelper.IEthTxHelper, addr common.Address,
	syncInterval, requestTimeout time.Duration, logger hclog.Logger,
) *Watcher {
	if syncInterval == 0 {
		syncInterval = defaultSyncInterval
	}

	if requestTimeout == 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &Watcher{
		state:          state,
		txHelper:       txHelper,
		addr:           addr,
		syncInterval:   syncInterval,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

func (w *Watcher) Start(ctx context.Context) {
	w.logger.Debug("Account watcher started", "addr", w.addr)

	ticker := time.NewTicker(w.syncInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		w.refresh(ctx)
	}
}

// refresh reads balance and nonce with retries. On persistent failure the
// previous snapshot is kept.
func (w *Watcher) refresh(ctx context.Context) {
	fibonacci := retry.NewFibonacci(retryBaseWait)

	var (
		balance *big.Int
		nonce   uint64
	)

	err := retry.Do(ctx, retry.WithMaxRetries(retryMaxRetries, fibonacci),
		func(ctx context.Context) error {
			reqCtx, cancel := context.WithTimeout(ctx, w.requestTimeout)
			defer cancel()

			value, err := w.txHelper.GetBalance(reqCtx, w.addr)
			if err != nil {
				return retry.RetryableError(err)
			}

			pending, err := w.txHelper.GetNonce(reqCtx, w.addr, true)
			if err != nil {
				return retry.RetryableError(err)
			}

			balance = value
			nonce = pending

			return nil
		})
	if err != nil {
		w.logger.Error("failed to refresh account snapshots", "addr", w.addr, "err", err)

		return
	}

	w.state.Update(balance, nonce)

	w.logger.Debug("account snapshots refreshed", "balance", balance, "nonce", nonce)
}
