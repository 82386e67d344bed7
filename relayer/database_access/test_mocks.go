package databaseaccess

import (
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type DBMock struct {
	mock.Mock
}

var _ core.Database = (*DBMock)(nil)

func (d *DBMock) GetLastProcessedBlock(direction string) (uint64, bool, error) {
	args := d.Called(direction)

	return args.Get(0).(uint64), args.Bool(1), args.Error(2)
}

func (d *DBMock) SetLastProcessedBlock(direction string, block uint64) error {
	return d.Called(direction, block).Error(0)
}

func (d *DBMock) MarkTxsRelayed(direction string, hashes []common.Hash) error {
	return d.Called(direction, hashes).Error(0)
}

func (d *DBMock) IsTxRelayed(direction string, hash common.Hash) (bool, error) {
	args := d.Called(direction, hash)

	return args.Bool(0), args.Error(1)
}

func (d *DBMock) Close() error {
	return nil
}
