package bip32

import (
	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/key"
)

func newPrivkeyFromRaw(oracle crypto.Oracle, raw []byte) (*key.Privkey, er.R) {
	return key.NewPrivkey(oracle, raw, true)
}

func newPubkeyFromRaw(oracle crypto.Oracle, raw []byte) (*key.Pubkey, er.R) {
	return key.NewPubkey(oracle, raw)
}
