package contractbinding

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// HomeBridgeContractMetaData contains all meta data concerning the HomeBridge contract.
// Only the surface used by the relayer is declared here.
var HomeBridgeContractMetaData = &bind.MetaData{
	ABI: "[{\"anonymous\":false,\"inputs\":[{\"indexed\":false,\"internalType\":\"address\",\"name\":\"recipient\",\"type\":\"address\"},{\"indexed\":false,\"internalType\":\"uint256\",\"name\":\"value\",\"type\":\"uint256\"}],\"name\":\"Deposit\",\"type\":\"event\"}]",
}

const DepositEventName = "Deposit"
