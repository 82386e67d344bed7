package account

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Run("unknown until first update", func(t *testing.T) {
		state := NewState()

		balance, known := state.Balance()
		require.False(t, known)
		require.Nil(t, balance)

		nonce, known := state.Nonce()
		require.False(t, known)
		require.Zero(t, nonce)
	})

	t.Run("update populates both snapshots", func(t *testing.T) {
		state := NewState()
		state.Update(big.NewInt(500), 7)

		balance, known := state.Balance()
		require.True(t, known)
		require.Equal(t, big.NewInt(500), balance)

		nonce, known := state.Nonce()
		require.True(t, known)
		require.Equal(t, uint64(7), nonce)
	})

	t.Run("balance is a defensive copy", func(t *testing.T) {
		state := NewState()
		state.Update(big.NewInt(500), 0)

		balance, _ := state.Balance()
		balance.SetUint64(0)

		fresh, _ := state.Balance()
		require.Equal(t, big.NewInt(500), fresh)
	})
}
