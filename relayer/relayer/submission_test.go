package relayer

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

type senderFunc func(ctx context.Context, tx *types.Transaction) (common.Hash, error)

func (f senderFunc) SendRawTx(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	return f(ctx, tx)
}

func unsignedBatch(count int, startNonce uint64) []*types.Transaction {
	txs := make([]*types.Transaction, count)
	for i := range txs {
		txs[i] = types.NewTx(&types.LegacyTx{
			Nonce:    startNonce + uint64(i),
			To:       &common.Address{},
			Value:    big.NewInt(0),
			Gas:      21_000,
			GasPrice: big.NewInt(1),
		})
	}

	return txs
}

func joinResult(t *testing.T, join *submissionJoin) ([]common.Hash, error) {
	t.Helper()

	var (
		hashes []common.Hash
		err    error
	)

	require.Eventually(t, func() bool {
		var done bool
		done, hashes, err = join.TryResult()

		return done
	}, 5*time.Second, 5*time.Millisecond)

	return hashes, err
}

func TestSubmissionJoinSuccess(t *testing.T) {
	sender := senderFunc(func(_ context.Context, tx *types.Transaction) (common.Hash, error) {
		return common.Hash{byte(tx.Nonce())}, nil
	})

	join := newSubmissionJoin(context.Background(), sender, unsignedBatch(3, 7), time.Second)

	hashes, err := joinResult(t, join)
	require.NoError(t, err)
	require.Equal(t, []common.Hash{{7}, {8}, {9}}, hashes)
}

func TestSubmissionJoinNotDoneWhileInFlight(t *testing.T) {
	release := make(chan struct{})

	sender := senderFunc(func(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
		select {
		case <-release:
			return common.Hash{byte(tx.Nonce())}, nil
		case <-ctx.Done():
			return common.Hash{}, ctx.Err()
		}
	})

	join := newSubmissionJoin(context.Background(), sender, unsignedBatch(2, 0), time.Minute)

	done, _, _ := join.TryResult()
	require.False(t, done)

	close(release)

	hashes, err := joinResult(t, join)
	require.NoError(t, err)
	require.Len(t, hashes, 2)
}

func TestSubmissionJoinSingleFailure(t *testing.T) {
	testError := errors.New("nonce too low")

	sender := senderFunc(func(_ context.Context, tx *types.Transaction) (common.Hash, error) {
		if tx.Nonce() == 1 {
			return common.Hash{}, testError
		}

		return common.Hash{byte(tx.Nonce())}, nil
	})

	join := newSubmissionJoin(context.Background(), sender, unsignedBatch(3, 0), time.Second)

	_, err := joinResult(t, join)
	require.ErrorIs(t, err, testError)
	require.ErrorContains(t, err, "failed to submit transaction with nonce 1")
}

func TestSubmissionJoinPerTxTimeout(t *testing.T) {
	sender := senderFunc(func(ctx context.Context, _ *types.Transaction) (common.Hash, error) {
		<-ctx.Done()

		return common.Hash{}, ctx.Err()
	})

	join := newSubmissionJoin(context.Background(), sender, unsignedBatch(1, 0), 50*time.Millisecond)

	_, err := joinResult(t, join)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
