package core

import "errors"

// ErrInsufficientFunds means the projected cost of a batch exceeds the known
// relayer account balance. Fatal for the relay instance: balance will not
// change without an external top up, so retrying is pointless.
var ErrInsufficientFunds = errors.New("insufficient funds for relaying batch")
