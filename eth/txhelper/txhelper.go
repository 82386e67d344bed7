package ethtxhelper

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

const (
	defaultNumRetries      = 1000
	defaultReceiptWaitTime = 50 * time.Millisecond
)

type IEthTxHelper interface {
	GetClient() *ethclient.Client
	GetNonce(ctx context.Context, addr common.Address, pending bool) (uint64, error)
	GetBalance(ctx context.Context, addr common.Address) (*big.Int, error)
	SendRawTx(ctx context.Context, tx *types.Transaction) (common.Hash, error)
	WaitForReceipt(ctx context.Context, hash common.Hash, skipNotFound bool) (*types.Receipt, error)
}

type EthTxHelperImpl struct {
	client          *ethclient.Client
	nodeURL         string
	numRetries      int
	receiptWaitTime time.Duration
}

var _ IEthTxHelper = (*EthTxHelperImpl)(nil)

func NewEthTxHelper(opts ...TxHelperOption) (*EthTxHelperImpl, error) {
	t := &EthTxHelperImpl{
		receiptWaitTime: defaultReceiptWaitTime,
		numRetries:      defaultNumRetries,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.client == nil {
		client, err := ethclient.Dial(t.nodeURL)
		if err != nil {
			return nil, err
		}

		t.client = client
	}

	return t, nil
}

func (t *EthTxHelperImpl) GetClient() *ethclient.Client {
	return t.client
}

func (t *EthTxHelperImpl) GetNonce(ctx context.Context, addr common.Address, pending bool) (uint64, error) {
	if pending {
		return t.client.PendingNonceAt(ctx, addr)
	}

	return t.client.NonceAt(ctx, addr, nil)
}

func (t *EthTxHelperImpl) GetBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	return t.client.BalanceAt(ctx, addr, nil)
}

// SendRawTx broadcasts an already signed transaction and returns its hash.
func (t *EthTxHelperImpl) SendRawTx(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	if err := t.client.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, err
	}

	return tx.Hash(), nil
}

func (t *EthTxHelperImpl) WaitForReceipt(
	ctx context.Context, hash common.Hash, skipNotFound bool,
) (*types.Receipt, error) {
	for count := 0; count < t.numRetries; count++ {
		receipt, err := t.client.TransactionReceipt(ctx, hash)
		if err != nil {
			if !skipNotFound && errors.Is(err, ethereum.NotFound) {
				return nil, err
			}
		} else if receipt != nil {
			return receipt, nil
		}

		select {
		case <-time.After(t.receiptWaitTime):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("timeout while waiting for transaction %s to be processed", hash)
}

type TxHelperOption func(*EthTxHelperImpl)

func WithClient(client *ethclient.Client) TxHelperOption {
	return func(t *EthTxHelperImpl) {
		t.client = client
	}
}

func WithNodeURL(nodeURL string) TxHelperOption {
	return func(t *EthTxHelperImpl) {
		t.nodeURL = nodeURL
	}
}

func WithReceiptWaitTime(receiptWaitTime time.Duration) TxHelperOption {
	return func(t *EthTxHelperImpl) {
		t.receiptWaitTime = receiptWaitTime
	}
}

// WithNumRetries sets the maximum number of eth_getTransactionReceipt retries
// before considering the transaction as lost.
func WithNumRetries(numRetries int) TxHelperOption {
	return func(t *EthTxHelperImpl) {
		t.numRetries = numRetries
	}
}
