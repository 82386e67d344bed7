package relayer

import (
	"context"
	"fmt"
	"time"

	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"
)

// submissionJoin submits every transaction of a batch concurrently and joins
// the results. The join succeeds only if every submission succeeds within
// its timeout; the first failure cancels the remaining submissions. Already
// broadcast transactions are not rolled back.
type submissionJoin struct {
	done   chan struct{}
	hashes []common.Hash
	err    error
}

func newSubmissionJoin(
	ctx context.Context, sender core.TxSender, txs []*types.Transaction, perTxTimeout time.Duration,
) *submissionJoin {
	join := &submissionJoin{
		done:   make(chan struct{}),
		hashes: make([]common.Hash, len(txs)),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for i, tx := range txs {
		i, tx := i, tx

		group.Go(func() error {
			sendCtx, cancel := context.WithTimeout(groupCtx, perTxTimeout)
			defer cancel()

			hash, err := sender.SendRawTx(sendCtx, tx)
			if err != nil {
				return fmt.Errorf("failed to submit transaction with nonce %d: %w", tx.Nonce(), err)
			}

			join.hashes[i] = hash

			return nil
		})
	}

	go func() {
		join.err = group.Wait()
		close(join.done)
	}()

	return join
}

// TryResult reports completion without blocking. hashes is only valid when
// done is true and err is nil.
func (j *submissionJoin) TryResult() (done bool, hashes []common.Hash, err error) {
	select {
	case <-j.done:
		if j.err != nil {
			return true, nil, j.err
		}

		return true, j.hashes, nil
	default:
		return false, nil, nil
	}
}
