package databaseaccess

import (
	"fmt"

	bridgecommon "github.com/Ethernal-Tech/bridge-relay/common"
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	"github.com/ethereum/go-ethereum/common"
	"go.etcd.io/bbolt"
)

var (
	lastProcessedBlockBucket = []byte("lastProcessedBlock")
	relayedTxsBucket         = []byte("relayedTxs")
)

type BBoltDatabase struct {
	db *bbolt.DB
}

var _ core.Database = (*BBoltDatabase)(nil)

func (bd *BBoltDatabase) Init(filePath string) error {
	db, err := bbolt.Open(filePath, 0660, nil)
	if err != nil {
		return fmt.Errorf("could not open db: %w", err)
	}

	bd.db = db

	return db.Update(func(tx *bbolt.Tx) error {
		for _, bn := range [][]byte{lastProcessedBlockBucket, relayedTxsBucket} {
			_, err := tx.CreateBucketIfNotExists(bn)
			if err != nil {
				return fmt.Errorf("could not create bucket: %s, err: %w", string(bn), err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) Close() error {
	return bd.db.Close()
}

func (bd *BBoltDatabase) GetLastProcessedBlock(direction string) (uint64, bool, error) {
	var (
		block  uint64
		exists bool
	)

	err := bd.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(lastProcessedBlockBucket).Get([]byte(direction))
		if bytes == nil {
			return nil
		}

		block = bridgecommon.BytesToUint64(bytes)
		exists = true

		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return block, exists, nil
}

func (bd *BBoltDatabase) SetLastProcessedBlock(direction string, block uint64) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(lastProcessedBlockBucket)

		if err := bucket.Put([]byte(direction), bridgecommon.Uint64ToBytes(block)); err != nil {
			return fmt.Errorf("last processed block write error: %w", err)
		}

		return nil
	})
}

func (bd *BBoltDatabase) MarkTxsRelayed(direction string, hashes []common.Hash) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(relayedTxsBucket)

		for _, hash := range hashes {
			if err := bucket.Put(relayedTxKey(direction, hash), []byte{1}); err != nil {
				return fmt.Errorf("relayed tx write error: %w", err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) IsTxRelayed(direction string, hash common.Hash) (bool, error) {
	var relayed bool

	err := bd.db.View(func(tx *bbolt.Tx) error {
		relayed = tx.Bucket(relayedTxsBucket).Get(relayedTxKey(direction, hash)) != nil

		return nil
	})
	if err != nil {
		return false, err
	}

	return relayed, nil
}

func relayedTxKey(direction string, hash common.Hash) []byte {
	return append([]byte(direction+"_"), hash[:]...)
}
