package account

import (
	"math/big"
	"sync"

	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
)

// State holds the shared balance and nonce snapshots of the relayer account
// on the foreign chain. Snapshots start unknown and stay unknown until the
// watcher populates them. Multiple relay instances targeting the same
// account may read the same State concurrently; only the watcher writes.
type State struct {
	mu      sync.RWMutex
	balance *big.Int
	nonce   uint64
	known   bool // nonce populated at least once
}

var _ core.AccountReader = (*State)(nil)

func NewState() *State {
	return &State{}
}

func (s *State) Balance() (*big.Int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.balance == nil {
		return nil, false
	}

	return new(big.Int).Set(s.balance), true
}

func (s *State) Nonce() (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nonce, s.known
}

func (s *State) Update(balance *big.Int, nonce uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance = new(big.Int).Set(balance)
	s.nonce = nonce
	s.known = true
}
