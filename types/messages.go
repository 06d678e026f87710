// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//KeyValue state or local db write
type KeyValue struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

//GetKey getter
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

//GetValue getter
func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

//ReceiptLog typed receipt log
type ReceiptLog struct {
	Ty  int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Log []byte `protobuf:"bytes,2,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *ReceiptLog) Reset()         { *m = ReceiptLog{} }
func (m *ReceiptLog) String() string { return proto.CompactTextString(m) }
func (*ReceiptLog) ProtoMessage()    {}

//GetTy getter
func (m *ReceiptLog) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetLog getter
func (m *ReceiptLog) GetLog() []byte {
	if m != nil {
		return m.Log
	}
	return nil
}

//Receipt result of Exec
type Receipt struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	KV   []*KeyValue   `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return proto.CompactTextString(m) }
func (*Receipt) ProtoMessage()    {}

//GetTy getter
func (m *Receipt) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetKV getter
func (m *Receipt) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

//GetLogs getter
func (m *Receipt) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

//ReceiptData receipt kept with the block
type ReceiptData struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,2,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *ReceiptData) Reset()         { *m = ReceiptData{} }
func (m *ReceiptData) String() string { return proto.CompactTextString(m) }
func (*ReceiptData) ProtoMessage()    {}

//GetTy getter
func (m *ReceiptData) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetLogs getter
func (m *ReceiptData) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

//LocalDBSet local index writes
type LocalDBSet struct {
	KV []*KeyValue `protobuf:"bytes,1,rep,name=KV,proto3" json:"KV,omitempty"`
}

func (m *LocalDBSet) Reset()         { *m = LocalDBSet{} }
func (m *LocalDBSet) String() string { return proto.CompactTextString(m) }
func (*LocalDBSet) ProtoMessage()    {}

//GetKV getter
func (m *LocalDBSet) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

//Account balance record of one token
type Account struct {
	Token   string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Balance int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	Addr    string `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

//GetToken getter
func (m *Account) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetBalance getter
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

//GetAddr getter
func (m *Account) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//ReceiptAccountTransfer balance change log
type ReceiptAccountTransfer struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

//GetPrev getter
func (m *ReceiptAccountTransfer) GetPrev() *Account {
	if m != nil {
		return m.Prev
	}
	return nil
}

//GetCurrent getter
func (m *ReceiptAccountTransfer) GetCurrent() *Account {
	if m != nil {
		return m.Current
	}
	return nil
}

//ReceiptTokenSupply mint or burn log
type ReceiptTokenSupply struct {
	Token    string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Executor string `protobuf:"bytes,2,opt,name=executor,proto3" json:"executor,omitempty"`
	Addr     string `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
	Amount   int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Prev     int64  `protobuf:"varint,5,opt,name=prev,proto3" json:"prev,omitempty"`
	Current  int64  `protobuf:"varint,6,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptTokenSupply) Reset()         { *m = ReceiptTokenSupply{} }
func (m *ReceiptTokenSupply) String() string { return proto.CompactTextString(m) }
func (*ReceiptTokenSupply) ProtoMessage()    {}

//GetToken getter
func (m *ReceiptTokenSupply) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetExecutor getter
func (m *ReceiptTokenSupply) GetExecutor() string {
	if m != nil {
		return m.Executor
	}
	return ""
}

//GetAddr getter
func (m *ReceiptTokenSupply) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//GetAmount getter
func (m *ReceiptTokenSupply) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//GetPrev getter
func (m *ReceiptTokenSupply) GetPrev() int64 {
	if m != nil {
		return m.Prev
	}
	return 0
}

//GetCurrent getter
func (m *ReceiptTokenSupply) GetCurrent() int64 {
	if m != nil {
		return m.Current
	}
	return 0
}

//Payment token attached to a transaction
type Payment struct {
	Token  string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Nonce  uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Amount int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Payment) Reset()         { *m = Payment{} }
func (m *Payment) String() string { return proto.CompactTextString(m) }
func (*Payment) ProtoMessage()    {}

//GetToken getter
func (m *Payment) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetNonce getter
func (m *Payment) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetAmount getter
func (m *Payment) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

//ReceiptPaymentIntake payments moved into an executor
type ReceiptPaymentIntake struct {
	From     string     `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	Execer   string     `protobuf:"bytes,2,opt,name=execer,proto3" json:"execer,omitempty"`
	Payments []*Payment `protobuf:"bytes,3,rep,name=payments,proto3" json:"payments,omitempty"`
}

func (m *ReceiptPaymentIntake) Reset()         { *m = ReceiptPaymentIntake{} }
func (m *ReceiptPaymentIntake) String() string { return proto.CompactTextString(m) }
func (*ReceiptPaymentIntake) ProtoMessage()    {}

//GetFrom getter
func (m *ReceiptPaymentIntake) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

//GetExecer getter
func (m *ReceiptPaymentIntake) GetExecer() string {
	if m != nil {
		return m.Execer
	}
	return ""
}

//GetPayments getter
func (m *ReceiptPaymentIntake) GetPayments() []*Payment {
	if m != nil {
		return m.Payments
	}
	return nil
}

//Signature tx signature
type Signature struct {
	Ty        int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Pubkey    []byte `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()    {}

//GetTy getter
func (m *Signature) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetPubkey getter
func (m *Signature) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

//GetSignature getter
func (m *Signature) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

//Transaction signed call of an executor action
type Transaction struct {
	Execer    []byte     `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	Payload   []byte     `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Signature *Signature `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
	Nonce     int64      `protobuf:"varint,4,opt,name=nonce,proto3" json:"nonce,omitempty"`
	To        string     `protobuf:"bytes,5,opt,name=to,proto3" json:"to,omitempty"`
	Payments  []*Payment `protobuf:"bytes,6,rep,name=payments,proto3" json:"payments,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

//GetExecer getter
func (m *Transaction) GetExecer() []byte {
	if m != nil {
		return m.Execer
	}
	return nil
}

//GetPayload getter
func (m *Transaction) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

//GetSignature getter
func (m *Transaction) GetSignature() *Signature {
	if m != nil {
		return m.Signature
	}
	return nil
}

//GetNonce getter
func (m *Transaction) GetNonce() int64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetTo getter
func (m *Transaction) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

//GetPayments getter
func (m *Transaction) GetPayments() []*Payment {
	if m != nil {
		return m.Payments
	}
	return nil
}

//Block ordered txs plus the host clocks and seed
type Block struct {
	ParentHash []byte         `protobuf:"bytes,1,opt,name=parent_hash,proto3" json:"parentHash,omitempty"`
	TxHash     []byte         `protobuf:"bytes,2,opt,name=tx_hash,proto3" json:"txHash,omitempty"`
	Height     int64          `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	BlockTime  int64          `protobuf:"varint,4,opt,name=block_time,proto3" json:"blockTime,omitempty"`
	Round      int64          `protobuf:"varint,5,opt,name=round,proto3" json:"round,omitempty"`
	Epoch      int64          `protobuf:"varint,6,opt,name=epoch,proto3" json:"epoch,omitempty"`
	RandomSeed []byte         `protobuf:"bytes,7,opt,name=random_seed,proto3" json:"randomSeed,omitempty"`
	Txs        []*Transaction `protobuf:"bytes,8,rep,name=txs,proto3" json:"txs,omitempty"`
	SeedProof  []byte         `protobuf:"bytes,9,opt,name=seed_proof,proto3" json:"seedProof,omitempty"`
}

func (m *Block) Reset()         { *m = Block{} }
func (m *Block) String() string { return proto.CompactTextString(m) }
func (*Block) ProtoMessage()    {}

//GetParentHash getter
func (m *Block) GetParentHash() []byte {
	if m != nil {
		return m.ParentHash
	}
	return nil
}

//GetTxHash getter
func (m *Block) GetTxHash() []byte {
	if m != nil {
		return m.TxHash
	}
	return nil
}

//GetHeight getter
func (m *Block) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

//GetBlockTime getter
func (m *Block) GetBlockTime() int64 {
	if m != nil {
		return m.BlockTime
	}
	return 0
}

//GetRound getter
func (m *Block) GetRound() int64 {
	if m != nil {
		return m.Round
	}
	return 0
}

//GetEpoch getter
func (m *Block) GetEpoch() int64 {
	if m != nil {
		return m.Epoch
	}
	return 0
}

//GetRandomSeed getter
func (m *Block) GetRandomSeed() []byte {
	if m != nil {
		return m.RandomSeed
	}
	return nil
}

//GetTxs getter
func (m *Block) GetTxs() []*Transaction {
	if m != nil {
		return m.Txs
	}
	return nil
}

//GetSeedProof getter
func (m *Block) GetSeedProof() []byte {
	if m != nil {
		return m.SeedProof
	}
	return nil
}

//BlockDetail block with receipts
type BlockDetail struct {
	Block    *Block         `protobuf:"bytes,1,opt,name=block,proto3" json:"block,omitempty"`
	Receipts []*ReceiptData `protobuf:"bytes,2,rep,name=receipts,proto3" json:"receipts,omitempty"`
}

func (m *BlockDetail) Reset()         { *m = BlockDetail{} }
func (m *BlockDetail) String() string { return proto.CompactTextString(m) }
func (*BlockDetail) ProtoMessage()    {}

//GetBlock getter
func (m *BlockDetail) GetBlock() *Block {
	if m != nil {
		return m.Block
	}
	return nil
}

//GetReceipts getter
func (m *BlockDetail) GetReceipts() []*ReceiptData {
	if m != nil {
		return m.Receipts
	}
	return nil
}

//TxResult tx location and receipt
type TxResult struct {
	Height    int64        `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	Index     int32        `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	BlockTime int64        `protobuf:"varint,3,opt,name=block_time,proto3" json:"blockTime,omitempty"`
	Tx        *Transaction `protobuf:"bytes,4,opt,name=tx,proto3" json:"tx,omitempty"`
	Receipt   *ReceiptData `protobuf:"bytes,5,opt,name=receipt,proto3" json:"receipt,omitempty"`
}

func (m *TxResult) Reset()         { *m = TxResult{} }
func (m *TxResult) String() string { return proto.CompactTextString(m) }
func (*TxResult) ProtoMessage()    {}

//GetHeight getter
func (m *TxResult) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

//GetIndex getter
func (m *TxResult) GetIndex() int32 {
	if m != nil {
		return m.Index
	}
	return 0
}

//GetBlockTime getter
func (m *TxResult) GetBlockTime() int64 {
	if m != nil {
		return m.BlockTime
	}
	return 0
}

//GetTx getter
func (m *TxResult) GetTx() *Transaction {
	if m != nil {
		return m.Tx
	}
	return nil
}

//GetReceipt getter
func (m *TxResult) GetReceipt() *ReceiptData {
	if m != nil {
		return m.Receipt
	}
	return nil
}

//TokenClass registered token class
type TokenClass struct {
	Class    string   `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
	Name     string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Kind     int32    `protobuf:"varint,3,opt,name=kind,proto3" json:"kind,omitempty"`
	Decimals int32    `protobuf:"varint,4,opt,name=decimals,proto3" json:"decimals,omitempty"`
	Tier     string   `protobuf:"bytes,5,opt,name=tier,proto3" json:"tier,omitempty"`
	Issuer   string   `protobuf:"bytes,6,opt,name=issuer,proto3" json:"issuer,omitempty"`
	Minters  []string `protobuf:"bytes,7,rep,name=minters,proto3" json:"minters,omitempty"`
}

func (m *TokenClass) Reset()         { *m = TokenClass{} }
func (m *TokenClass) String() string { return proto.CompactTextString(m) }
func (*TokenClass) ProtoMessage()    {}

//GetClass getter
func (m *TokenClass) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetName getter
func (m *TokenClass) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

//GetKind getter
func (m *TokenClass) GetKind() int32 {
	if m != nil {
		return m.Kind
	}
	return 0
}

//GetDecimals getter
func (m *TokenClass) GetDecimals() int32 {
	if m != nil {
		return m.Decimals
	}
	return 0
}

//GetTier getter
func (m *TokenClass) GetTier() string {
	if m != nil {
		return m.Tier
	}
	return ""
}

//GetIssuer getter
func (m *TokenClass) GetIssuer() string {
	if m != nil {
		return m.Issuer
	}
	return ""
}

//GetMinters getter
func (m *TokenClass) GetMinters() []string {
	if m != nil {
		return m.Minters
	}
	return nil
}

//TokenSupply minted minus burned
type TokenSupply struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Total int64  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *TokenSupply) Reset()         { *m = TokenSupply{} }
func (m *TokenSupply) String() string { return proto.CompactTextString(m) }
func (*TokenSupply) ProtoMessage()    {}

//GetToken getter
func (m *TokenSupply) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetTotal getter
func (m *TokenSupply) GetTotal() int64 {
	if m != nil {
		return m.Total
	}
	return 0
}

//NftAttributes attributes of one nft instance
type NftAttributes struct {
	Class      string `protobuf:"bytes,1,opt,name=class,proto3" json:"class,omitempty"`
	Nonce      uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Kind       string `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	Attack     uint32 `protobuf:"varint,4,opt,name=attack,proto3" json:"attack,omitempty"`
	Defense    uint32 `protobuf:"varint,5,opt,name=defense,proto3" json:"defense,omitempty"`
	Attributes string `protobuf:"bytes,6,opt,name=attributes,proto3" json:"attributes,omitempty"`
	Creator    string `protobuf:"bytes,7,opt,name=creator,proto3" json:"creator,omitempty"`
}

func (m *NftAttributes) Reset()         { *m = NftAttributes{} }
func (m *NftAttributes) String() string { return proto.CompactTextString(m) }
func (*NftAttributes) ProtoMessage()    {}

//GetClass getter
func (m *NftAttributes) GetClass() string {
	if m != nil {
		return m.Class
	}
	return ""
}

//GetNonce getter
func (m *NftAttributes) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//GetKind getter
func (m *NftAttributes) GetKind() string {
	if m != nil {
		return m.Kind
	}
	return ""
}

//GetAttack getter
func (m *NftAttributes) GetAttack() uint32 {
	if m != nil {
		return m.Attack
	}
	return 0
}

//GetDefense getter
func (m *NftAttributes) GetDefense() uint32 {
	if m != nil {
		return m.Defense
	}
	return 0
}

//GetAttributes getter
func (m *NftAttributes) GetAttributes() string {
	if m != nil {
		return m.Attributes
	}
	return ""
}

//GetCreator getter
func (m *NftAttributes) GetCreator() string {
	if m != nil {
		return m.Creator
	}
	return ""
}

//ReceiptNftAttributes nft attribute change log
type ReceiptNftAttributes struct {
	Prev    *NftAttributes `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *NftAttributes `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptNftAttributes) Reset()         { *m = ReceiptNftAttributes{} }
func (m *ReceiptNftAttributes) String() string { return proto.CompactTextString(m) }
func (*ReceiptNftAttributes) ProtoMessage()    {}

//GetPrev getter
func (m *ReceiptNftAttributes) GetPrev() *NftAttributes {
	if m != nil {
		return m.Prev
	}
	return nil
}

//GetCurrent getter
func (m *ReceiptNftAttributes) GetCurrent() *NftAttributes {
	if m != nil {
		return m.Current
	}
	return nil
}

//ConfigItem manage config entry
type ConfigItem struct {
	Key   string   `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []string `protobuf:"bytes,2,rep,name=value,proto3" json:"value,omitempty"`
}

func (m *ConfigItem) Reset()         { *m = ConfigItem{} }
func (m *ConfigItem) String() string { return proto.CompactTextString(m) }
func (*ConfigItem) ProtoMessage()    {}

//GetKey getter
func (m *ConfigItem) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

//GetValue getter
func (m *ConfigItem) GetValue() []string {
	if m != nil {
		return m.Value
	}
	return nil
}

//ReceiptConfig config change log
type ReceiptConfig struct {
	Prev    *ConfigItem `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *ConfigItem `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptConfig) Reset()         { *m = ReceiptConfig{} }
func (m *ReceiptConfig) String() string { return proto.CompactTextString(m) }
func (*ReceiptConfig) ProtoMessage()    {}

//GetPrev getter
func (m *ReceiptConfig) GetPrev() *ConfigItem {
	if m != nil {
		return m.Prev
	}
	return nil
}

//GetCurrent getter
func (m *ReceiptConfig) GetCurrent() *ConfigItem {
	if m != nil {
		return m.Current
	}
	return nil
}

//Int64 wrapper
type Int64 struct {
	Data int64 `protobuf:"varint,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Int64) Reset()         { *m = Int64{} }
func (m *Int64) String() string { return proto.CompactTextString(m) }
func (*Int64) ProtoMessage()    {}

//GetData getter
func (m *Int64) GetData() int64 {
	if m != nil {
		return m.Data
	}
	return 0
}

//ReqString wrapper
type ReqString struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReqString) Reset()         { *m = ReqString{} }
func (m *ReqString) String() string { return proto.CompactTextString(m) }
func (*ReqString) ProtoMessage()    {}

//GetData getter
func (m *ReqString) GetData() string {
	if m != nil {
		return m.Data
	}
	return ""
}

//ReplyString wrapper
type ReplyString struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReplyString) Reset()         { *m = ReplyString{} }
func (m *ReplyString) String() string { return proto.CompactTextString(m) }
func (*ReplyString) ProtoMessage()    {}

//GetData getter
func (m *ReplyString) GetData() string {
	if m != nil {
		return m.Data
	}
	return ""
}

//ReqNil empty
type ReqNil struct {
}

func (m *ReqNil) Reset()         { *m = ReqNil{} }
func (m *ReqNil) String() string { return proto.CompactTextString(m) }
func (*ReqNil) ProtoMessage()    {}

//ReqBalance balance of one token instance
type ReqBalance struct {
	Addr  string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Token string `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Nonce uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *ReqBalance) Reset()         { *m = ReqBalance{} }
func (m *ReqBalance) String() string { return proto.CompactTextString(m) }
func (*ReqBalance) ProtoMessage()    {}

//GetAddr getter
func (m *ReqBalance) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//GetToken getter
func (m *ReqBalance) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetNonce getter
func (m *ReqBalance) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

//ReqHolders top holders of the tokens under a class prefix
type ReqHolders struct {
	Prefix string `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`
	Count  int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *ReqHolders) Reset()         { *m = ReqHolders{} }
func (m *ReqHolders) String() string { return proto.CompactTextString(m) }
func (*ReqHolders) ProtoMessage()    {}

//GetPrefix getter
func (m *ReqHolders) GetPrefix() string {
	if m != nil {
		return m.Prefix
	}
	return ""
}

//GetCount getter
func (m *ReqHolders) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

//HolderEntry one holder in a leaderboard
type HolderEntry struct {
	Token   string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Balance int64  `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	Amount  string `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *HolderEntry) Reset()         { *m = HolderEntry{} }
func (m *HolderEntry) String() string { return proto.CompactTextString(m) }
func (*HolderEntry) ProtoMessage()    {}

//GetToken getter
func (m *HolderEntry) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

//GetAddr getter
func (m *HolderEntry) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

//GetBalance getter
func (m *HolderEntry) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

//GetAmount getter
func (m *HolderEntry) GetAmount() string {
	if m != nil {
		return m.Amount
	}
	return ""
}

//ReplyHolders leaderboard
type ReplyHolders struct {
	Holders []*HolderEntry `protobuf:"bytes,1,rep,name=holders,proto3" json:"holders,omitempty"`
}

func (m *ReplyHolders) Reset()         { *m = ReplyHolders{} }
func (m *ReplyHolders) String() string { return proto.CompactTextString(m) }
func (*ReplyHolders) ProtoMessage()    {}

//GetHolders getter
func (m *ReplyHolders) GetHolders() []*HolderEntry {
	if m != nil {
		return m.Holders
	}
	return nil
}

//ReplyAccounts account list
type ReplyAccounts struct {
	Accounts []*Account `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *ReplyAccounts) Reset()         { *m = ReplyAccounts{} }
func (m *ReplyAccounts) String() string { return proto.CompactTextString(m) }
func (*ReplyAccounts) ProtoMessage()    {}

//GetAccounts getter
func (m *ReplyAccounts) GetAccounts() []*Account {
	if m != nil {
		return m.Accounts
	}
	return nil
}

//ReplyStrings string list
type ReplyStrings struct {
	Data []string `protobuf:"bytes,1,rep,name=data,proto3" json:"data,omitempty"`
}

func (m *ReplyStrings) Reset()         { *m = ReplyStrings{} }
func (m *ReplyStrings) String() string { return proto.CompactTextString(m) }
func (*ReplyStrings) ProtoMessage()    {}

//GetData getter
func (m *ReplyStrings) GetData() []string {
	if m != nil {
		return m.Data
	}
	return nil
}
