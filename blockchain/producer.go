// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/crypto"
	dbm "github.com/33cn/wintergame/common/db"
	"github.com/33cn/wintergame/types"
	"github.com/pkg/errors"
)

var producerKey = []byte("ProducerKey")

//loadProducer key signing the seed chain: [blockchain] producerKey, else the key kept in db, else a new one saved to db
func loadProducer(cfg *types.BlockChain, db dbm.DB) (crypto.PrivKey, error) {
	if cfg.ProducerKey != "" {
		b, err := common.FromHex(cfg.ProducerKey)
		if err != nil {
			return crypto.PrivKey{}, errors.Wrap(types.ErrInvalidParam, "producerKey")
		}
		return crypto.PrivKeyFromBytes(b)
	}
	if b, err := db.Get(producerKey); err == nil && len(b) > 0 {
		return crypto.PrivKeyFromBytes(b)
	}
	priv, err := crypto.GenKey()
	if err != nil {
		return crypto.PrivKey{}, err
	}
	if err := db.SetSync(producerKey, priv.Bytes()); err != nil {
		return crypto.PrivKey{}, errors.Wrap(err, "save producer key")
	}
	chainlog.Info("loadProducer new key", "pubkey", common.ToHex(priv.PubKey().Bytes()))
	return priv, nil
}
