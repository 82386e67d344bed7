package logstream

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-retry"
)

const (
	defaultMaxBlockRange  = 1000
	defaultRequestTimeout = 10 * time.Second
	retryBaseWait         = 500 * time.Millisecond
	retryMaxRetries       = 5
)

// EthClient is the part of ethclient.Client the stream needs. Kept small so
// tests can fake it.
type EthClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

type Config struct {
	// Address and Topic form the deposit event filter on the home bridge.
	Address common.Address
	Topic   common.Hash
	// StartBlock is the last already processed block; streaming resumes
	// after it.
	StartBlock            uint64
	RequiredConfirmations uint64
	MaxBlockRange         uint64
	RequestTimeout        time.Duration
}

// LogStream turns raw chain history into confirmation-safe batches. Each
// Poll covers at most MaxBlockRange blocks ending no closer than
// RequiredConfirmations blocks behind the head, and advances the cursor so
// batches never overlap.
type LogStream struct {
	client EthClient
	config Config
	cursor uint64
	logger hclog.Logger
}

var _ core.LogStreamer = (*LogStream)(nil)

func NewLogStream(client EthClient, config Config, logger hclog.Logger) *LogStream {
	if config.MaxBlockRange == 0 {
		config.MaxBlockRange = defaultMaxBlockRange
	}

	if config.RequestTimeout == 0 {
		config.RequestTimeout = defaultRequestTimeout
	}

	return &LogStream{
		client: client,
		config: config,
		cursor: config.StartBlock,
		logger: logger,
	}
}

func (ls *LogStream) Poll(ctx context.Context) (*core.ConfirmedBatch, bool, error) {
	var head uint64

	err := ls.withRetry(ctx, func(ctx context.Context) error {
		value, err := ls.client.BlockNumber(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}

		head = value

		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to retrieve head block: %w", err)
	}

	if head < ls.config.RequiredConfirmations {
		return nil, false, nil
	}

	lastConfirmed := head - ls.config.RequiredConfirmations
	if lastConfirmed <= ls.cursor {
		return nil, false, nil
	}

	from := ls.cursor + 1
	to := min(lastConfirmed, ls.cursor+ls.config.MaxBlockRange)

	var logs []types.Log

	err = ls.withRetry(ctx, func(ctx context.Context) error {
		value, err := ls.client.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(to),
			Addresses: []common.Address{ls.config.Address},
			Topics:    [][]common.Hash{{ls.config.Topic}},
		})
		if err != nil {
			return retry.RetryableError(err)
		}

		logs = value

		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to filter logs for range [%d, %d]: %w", from, to, err)
	}

	ls.logger.Debug("confirmed range ready", "from", from, "to", to, "logs", len(logs))

	ls.cursor = to

	return &core.ConfirmedBatch{Logs: logs, ToBlock: to}, true, nil
}

func (ls *LogStream) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	fibonacci := retry.NewFibonacci(retryBaseWait)

	return retry.Do(ctx, retry.WithMaxRetries(retryMaxRetries, fibonacci),
		func(ctx context.Context) error {
			reqCtx, cancel := context.WithTimeout(ctx, ls.config.RequestTimeout)
			defer cancel()

			return fn(reqCtx)
		})
}
