package relayer

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

// buildBatch creates one signed legacy transaction per payload with strictly
// increasing nonces starting at startNonce. Gas parameters come from
// configuration; signer failure aborts the whole batch.
func (r *DepositRelay) buildBatch(payloads [][]byte, startNonce uint64) ([]*types.Transaction, error) {
	txs := make([]*types.Transaction, len(payloads))

	for i, payload := range payloads {
		tx := types.NewTx(&types.LegacyTx{
			Nonce:    startNonce + uint64(i),
			To:       &r.foreignContract,
			Value:    big.NewInt(0),
			Gas:      r.config.Txs.GasLimit,
			GasPrice: new(big.Int).SetUint64(r.config.Txs.GasPrice),
			Data:     payload,
		})

		signedTx, err := r.signer.SignTx(r.foreignChainID, tx)
		if err != nil {
			return nil, fmt.Errorf("failed to sign relay transaction: %w", err)
		}

		txs[i] = signedTx
	}

	return txs, nil
}
