package contractbinding

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// ForeignBridgeContractMetaData contains all meta data concerning the ForeignBridge contract.
// deposit(address,uint256,bytes32) records a home chain deposit on the foreign chain.
var ForeignBridgeContractMetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[{\"internalType\":\"address\",\"name\":\"recipient\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"value\",\"type\":\"uint256\"},{\"internalType\":\"bytes32\",\"name\":\"transactionHash\",\"type\":\"bytes32\"}],\"name\":\"deposit\",\"outputs\":[],\"stateMutability\":\"nonpayable\",\"type\":\"function\"}]",
}

const DepositMethodName = "deposit"
