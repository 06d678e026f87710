// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/binary"

	"github.com/33cn/wintergame/common"
	"github.com/33cn/wintergame/common/crypto"
)

//clocks a delay or cooldown can be measured in
const (
	ClockTime  = "time"
	ClockRound = "round"
	ClockEpoch = "epoch"
)

//BlockEnv clocks and seed visible to executors
type BlockEnv struct {
	Height     int64
	BlockTime  int64
	Round      int64
	Epoch      int64
	RandomSeed []byte
}

//Env execution environment of the block
func (block *Block) Env() *BlockEnv {
	return &BlockEnv{
		Height:     block.Height,
		BlockTime:  block.BlockTime,
		Round:      block.Round,
		Epoch:      block.Epoch,
		RandomSeed: block.RandomSeed,
	}
}

//ValidClock clock name known by BlockEnv.Clock
func ValidClock(clock string) bool {
	switch clock {
	case ClockTime, ClockRound, ClockEpoch:
		return true
	}
	return false
}

//Clock reading of the named clock, unknown names read the block time
func (env *BlockEnv) Clock(clock string) int64 {
	switch clock {
	case ClockRound:
		return env.Round
	case ClockEpoch:
		return env.Epoch
	case ClockTime:
		return env.BlockTime
	}
	tlog.Error("BlockEnv.Clock unknown clock", "clock", clock)
	return env.BlockTime
}

//ClockUnit plural unit of a clock for diagnostics
func ClockUnit(clock string) string {
	if clock == ClockTime {
		return "seconds"
	}
	return clock + "s"
}

//SeedUint64 big endian uint64 of the first 8 bytes of a block seed, shorter seeds are zero padded
func SeedUint64(seed []byte) uint64 {
	var buf [8]byte
	copy(buf[:], seed)
	return binary.BigEndian.Uint64(buf[:])
}

//Hash hash of the header fields, txs are covered by TxHash
func (block *Block) Hash() []byte {
	head := *block
	head.Txs = nil
	return common.Sha256(Encode(&head))
}

//CalcTxHash hash of the ordered tx hashes
func CalcTxHash(txs []*Transaction) []byte {
	var buf []byte
	for _, tx := range txs {
		buf = append(buf, tx.Hash()...)
	}
	return common.Sha256(buf)
}

func seedMsg(parentSeed []byte, height int64) []byte {
	msg := make([]byte, 0, len(parentSeed)+8)
	msg = append(msg, parentSeed...)
	return append(msg, common.Int64ToBytes(height)...)
}

//CalcRandomSeed seed of the block at height: the producer signs the parent seed and the height.
//Nothing a tx carries enters the seed, callers cannot grind it by re-signing.
//The signature is deterministic (rfc6979), the proof lets anyone holding the producer pubkey verify the chain.
func CalcRandomSeed(producer crypto.PrivKey, parentSeed []byte, height int64) (seed, proof []byte) {
	proof = producer.Sign(seedMsg(parentSeed, height))
	return common.Sha256(proof), proof
}

//VerifySeed block seed was produced by pub over its parent seed
func VerifySeed(pub crypto.PubKey, parentSeed []byte, block *Block) bool {
	if !bytes.Equal(common.Sha256(block.SeedProof), block.RandomSeed) {
		return false
	}
	return pub.VerifyBytes(seedMsg(parentSeed, block.Height), block.SeedProof)
}

//GenesisSeed seed of the genesis block, its txs come from config only
func GenesisSeed(txHash []byte, blockTime int64) []byte {
	return common.Sha256(append(append([]byte{}, txHash...), common.Int64ToBytes(blockTime)...))
}

//CalcEpoch epoch of a round
func CalcEpoch(round, roundsPerEpoch int64) int64 {
	if roundsPerEpoch <= 0 {
		roundsPerEpoch = DefaultRoundsPerEpoch
	}
	return round / roundsPerEpoch
}

//NewBlock child of parent carrying txs signed into the seed chain by producer, round follows the height
func NewBlock(producer crypto.PrivKey, parent *Block, txs []*Transaction, height, blockTime, roundsPerEpoch int64) *Block {
	block := &Block{
		ParentHash: parent.Hash(),
		Height:     height,
		BlockTime:  blockTime,
		Round:      height,
		Txs:        txs,
	}
	block.Epoch = CalcEpoch(block.Round, roundsPerEpoch)
	block.TxHash = CalcTxHash(txs)
	block.RandomSeed, block.SeedProof = CalcRandomSeed(producer, parent.RandomSeed, block.Height)
	return block
}
