package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
)

type LogStreamerMock struct {
	mock.Mock
}

var _ LogStreamer = (*LogStreamerMock)(nil)

func (m *LogStreamerMock) Poll(ctx context.Context) (*ConfirmedBatch, bool, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*ConfirmedBatch), args.Bool(1), args.Error(2)
}

type TxSenderMock struct {
	mock.Mock
}

var _ TxSender = (*TxSenderMock)(nil)

func (m *TxSenderMock) SendRawTx(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	args := m.Called(ctx, tx)

	return args.Get(0).(common.Hash), args.Error(1)
}

type AccountReaderMock struct {
	mock.Mock
}

var _ AccountReader = (*AccountReaderMock)(nil)

func (m *AccountReaderMock) Balance() (*big.Int, bool) {
	args := m.Called()

	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*big.Int), args.Bool(1)
}

func (m *AccountReaderMock) Nonce() (uint64, bool) {
	args := m.Called()

	return args.Get(0).(uint64), args.Bool(1)
}
