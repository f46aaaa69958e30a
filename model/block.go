package model

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/Luismorlan/ledger_in_go/utils"
)

const (
	// Sentinel previous hash of the genesis block.
	GENESIS_PREV_HASH = "0"
	// Prefix of every wallet address, followed by the block id.
	WALLET_ADDRESS_PREFIX = "WalletAddress-"
)

var (
	// ErrBlockClosed is returned when mutating a block that is already sealed.
	ErrBlockClosed = errors.New("block is already closed")
	// ErrMiningExhausted is returned when the nonce search hits its iteration cap.
	ErrMiningExhausted = errors.New("mining iteration cap reached without a valid hash")
)

// Block is a unit of the chain. It is open until CloseBlock seals it with a
// proof-of-work hash; after that nonce, hash and transactions never change.
type Block struct {
	// Sequence number, genesis is 1.
	id int
	// Hash of the previous block in hex, "0" for genesis.
	previousHash string
	// Hash of this block in hex. Empty while the block is open.
	hash string
	// The account owned by this block.
	walletAddress string
	// Creation time in unix milliseconds.
	timestamp int64
	// Proof-of-work counter, only moved by mining.
	nonce int64
	// Transactions in insertion order.
	txs []Transaction
	// Current balance, may go negative.
	funds int64
}

// Create a new open block stamped with the current time.
func NewBlock(id int, previousHash string) *Block {
	return NewBlockAt(id, previousHash, time.Now())
}

// Create a new open block stamped with t.
func NewBlockAt(id int, previousHash string, t time.Time) *Block {
	return &Block{
		id:            id,
		previousHash:  previousHash,
		walletAddress: WALLET_ADDRESS_PREFIX + strconv.Itoa(id),
		timestamp:     t.UnixNano() / int64(time.Millisecond),
		txs:           []Transaction{},
	}
}

// AddData appends a transaction. The block does not cap the number of
// transactions, that is up to the caller.
func (b *Block) AddData(tx Transaction) error {
	if b.IsClosed() {
		return ErrBlockClosed
	}
	b.txs = append(b.txs, tx)
	return nil
}

// Payload is the byte string hashed while mining, for the current nonce.
func (b *Block) Payload() []byte {
	return []byte(b.payloadAt(b.nonce))
}

func (b *Block) payloadAt(nonce int64) string {
	return b.previousHash +
		strconv.FormatInt(b.timestamp, 10) +
		strconv.FormatInt(nonce, 10) +
		FormatTransactions(b.txs) +
		b.walletAddress
}

// MineBlock searches nonces, starting at the current one, until the digest has
// difficulty leading hex zeros. It does not seal the block.
// maxIterations <= 0 means no cap. On cap or cancellation the reached nonce is
// kept so a later call resumes the search.
func (b *Block) MineBlock(ctx context.Context, difficulty int, maxIterations int64) (string, error) {
	if b.IsClosed() {
		return "", ErrBlockClosed
	}
	for i := int64(0); maxIterations <= 0 || i < maxIterations; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		digest := utils.Digest([]byte(b.payloadAt(b.nonce)))
		if utils.HasLeadingHexZeros(digest, difficulty) {
			return digest, nil
		}
		b.nonce++
	}
	return "", ErrMiningExhausted
}

// CloseBlock mines the block and seals it. Closing a closed block is an error.
func (b *Block) CloseBlock(ctx context.Context, difficulty int, maxIterations int64) error {
	start := time.Now()
	digest, err := b.MineBlock(ctx, difficulty, maxIterations)
	if err != nil {
		return err
	}
	b.hash = digest
	log.Printf("sealed block %d with nonce %d in %v: %s", b.id, b.nonce, time.Since(start), b.hash)
	return nil
}

// Credit the block balance. Closed blocks can still be credited.
func (b *Block) AddFunds(amount int64) {
	b.funds += amount
}

// Debit the block balance, which is allowed to go negative.
func (b *Block) SubtractFunds(amount int64) {
	b.funds -= amount
}

// Get the block sequence number.
func (b *Block) ID() int { return b.id }

// Get the hash this block links to, "0" for genesis.
func (b *Block) PreviousHash() string { return b.previousHash }

// Hash is empty until the block is closed.
func (b *Block) Hash() string { return b.hash }

// Get the address of the account owned by this block.
func (b *Block) WalletAddress() string { return b.walletAddress }

// Get the creation time in unix milliseconds.
func (b *Block) Timestamp() int64 { return b.timestamp }

func (b *Block) Nonce() int64 { return b.nonce }

// A block is closed once it carries a hash.
func (b *Block) IsClosed() bool { return b.hash != "" }

func (b *Block) TransactionCount() int { return len(b.txs) }

// Transactions returns a copy of the recorded transactions.
func (b *Block) Transactions() []Transaction {
	out := make([]Transaction, len(b.txs))
	copy(out, b.txs)
	return out
}

// FundsAdded is the current balance of the block.
func (b *Block) FundsAdded() int64 { return b.funds }

// RemainingFunds is the current balance of the block, same as FundsAdded.
func (b *Block) RemainingFunds() int64 { return b.funds }
