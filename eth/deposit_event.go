package eth

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Ethernal-Tech/bridge-relay/contractbinding"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DepositEvent is a decoded HomeBridge Deposit log.
type DepositEvent struct {
	Recipient    common.Address
	Value        *big.Int
	SourceTxHash common.Hash
}

var (
	ErrDepositLogMismatch = errors.New("log does not match the deposit event signature")
	ErrDepositLogNotMined = errors.New("deposit log does not contain a transaction hash")
)

// ParseDepositLog decodes a raw home chain log into a DepositEvent. A mined
// log always carries a transaction hash; its absence means the upstream feed
// handed us something it should not have.
func ParseDepositLog(log types.Log) (*DepositEvent, error) {
	parsedABI, err := contractbinding.HomeBridgeContractMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	event := parsedABI.Events[contractbinding.DepositEventName]

	if len(log.Topics) == 0 || log.Topics[0] != event.ID {
		return nil, fmt.Errorf("%w: topics %v", ErrDepositLogMismatch, log.Topics)
	}

	if log.TxHash == (common.Hash{}) {
		return nil, ErrDepositLogNotMined
	}

	values, err := event.Inputs.Unpack(log.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDepositLogMismatch, err)
	}

	recipient, okRecipient := values[0].(common.Address)
	value, okValue := values[1].(*big.Int)

	if !okRecipient || !okValue {
		return nil, fmt.Errorf("%w: unexpected argument types", ErrDepositLogMismatch)
	}

	return &DepositEvent{
		Recipient:    recipient,
		Value:        value,
		SourceTxHash: log.TxHash,
	}, nil
}

// DepositRelayPayload encodes the foreign chain call which records the given
// deposit: deposit(recipient, value, sourceTxHash). Pure and deterministic.
func DepositRelayPayload(event *DepositEvent) ([]byte, error) {
	parsedABI, err := contractbinding.ForeignBridgeContractMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return parsedABI.Pack(
		contractbinding.DepositMethodName,
		event.Recipient, event.Value, [common.HashLength]byte(event.SourceTxHash))
}
