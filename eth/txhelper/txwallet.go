package ethtxhelper

import (
	"crypto/ecdsa"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type ITxSigner interface {
	GetAddress() common.Address
	SignTx(chainID *big.Int, tx *types.Transaction) (*types.Transaction, error)
}

type TxWallet struct {
	addr       common.Address
	privateKey *ecdsa.PrivateKey
}

var _ ITxSigner = (*TxWallet)(nil)

func NewTxWallet(pk string) (*TxWallet, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(pk), "0x"))
	if err != nil {
		return nil, err
	}

	return &TxWallet{
		privateKey: privateKey,
		addr:       crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// NewTxWalletFromFile loads a hex encoded private key from a file.
func NewTxWalletFromFile(path string) (*TxWallet, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return NewTxWallet(string(bytes))
}

func GenerateNewTxWallet() (*TxWallet, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}

	return &TxWallet{
		privateKey: privateKey,
		addr:       crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

func (w *TxWallet) GetAddress() common.Address {
	return w.addr
}

func (w *TxWallet) GetAddressHex() string {
	return w.addr.String()
}

func (w *TxWallet) SignTx(chainID *big.Int, tx *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(tx, types.NewLondonSigner(chainID), w.privateKey)
}
