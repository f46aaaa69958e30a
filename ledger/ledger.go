package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/model"
	uuid "github.com/satori/go.uuid"
)

// ErrBlockFull is returned when the open block already holds MAX_TRANSACTIONS.
var ErrBlockFull = errors.New("current block already holds the maximum number of transactions")

// IsPreconditionViolation reports whether err is a refused action rather than
// a failure: a full block or a closed block.
func IsPreconditionViolation(err error) bool {
	return errors.Is(err, ErrBlockFull) || errors.Is(err, model.ErrBlockClosed)
}

// A ledger owns one blockchain and serializes every operation on it.
type Ledger struct {
	// The blockchain it needs to maintain.
	blockchain *model.Blockchain
	// Ledger config.
	config config.AppConfig
	// A single mutex for all state. Reads take it too because AllBlocks
	// writes the genesis pool.
	m sync.Mutex
	// A unique identifier of this ledger, only used to tell ledgers apart.
	uuid string
}

// Receipt describes where a registered transaction ended up.
type Receipt struct {
	// Block that recorded the transaction.
	BlockID int
	// Transactions in that block after this one.
	TransactionCount int
	// Set when the block was closed right after the transaction.
	Sealed *model.BlockView
	// Address of the open block after the call.
	CurrentWalletAddress string
}

// Create a brand new ledger, which contains an open genesis block.
func NewLedger(c config.AppConfig) (*Ledger, error) {
	return newLedger(c, time.Now)
}

func newLedger(c config.AppConfig, now func() time.Time) (*Ledger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ledger config: %w", err)
	}
	myuuid := uuid.NewV4()
	l := &Ledger{
		blockchain: model.NewBlockChainWithClock(c.INITIAL_FUNDS, now),
		config:     c,
		uuid:       myuuid.String(),
	}
	log.Printf("ledger %s started, difficulty %d, %d transactions per block", l.uuid, c.DIFFICULTY, c.MAX_TRANSACTIONS)
	return l, nil
}

func (l *Ledger) ID() string { return l.uuid }

func (l *Ledger) Config() config.AppConfig { return l.config }

// RegisterTransaction records a transfer on the open block. A full block is
// refused without touching any state. With AUTO_CLOSE the block is mined as
// soon as it reaches MAX_TRANSACTIONS; if mining fails the transaction stays
// recorded and the error is returned alongside the receipt.
func (l *Ledger) RegisterTransaction(ctx context.Context, sender string, amount int64, receiver string) (Receipt, error) {
	l.m.Lock()
	defer l.m.Unlock()

	current := l.blockchain.Current()
	if current.TransactionCount() >= l.config.MAX_TRANSACTIONS {
		return Receipt{}, fmt.Errorf("block %d: %w", current.ID(), ErrBlockFull)
	}

	tx := model.Transaction{Sender: sender, Amount: amount, Receiver: receiver}
	if err := l.blockchain.RegisterTransaction(tx); err != nil {
		return Receipt{}, fmt.Errorf("block %d: %w", current.ID(), err)
	}
	receipt := Receipt{
		BlockID:              current.ID(),
		TransactionCount:     current.TransactionCount(),
		CurrentWalletAddress: current.WalletAddress(),
	}

	if l.config.AUTO_CLOSE && current.TransactionCount() >= l.config.MAX_TRANSACTIONS {
		sealed, err := l.closeCurrentBlock(ctx)
		if err != nil {
			return receipt, err
		}
		receipt.Sealed = &sealed
		receipt.CurrentWalletAddress = l.blockchain.CurrentWalletAddress()
	}
	return receipt, nil
}

// CloseCurrentBlock mines and seals the open block and opens the next one.
func (l *Ledger) CloseCurrentBlock(ctx context.Context) (model.BlockView, error) {
	l.m.Lock()
	defer l.m.Unlock()
	return l.closeCurrentBlock(ctx)
}

func (l *Ledger) closeCurrentBlock(ctx context.Context) (model.BlockView, error) {
	id := l.blockchain.Current().ID()
	log.Printf("mining block %d at difficulty %d", id, l.config.DIFFICULTY)
	sealed, err := l.blockchain.CloseCurrentBlock(ctx, l.config.DIFFICULTY, l.config.MAX_MINING_ITERATIONS)
	if err != nil {
		return model.BlockView{}, fmt.Errorf("close block %d: %w", id, err)
	}
	return sealed.View(), nil
}

func (l *Ledger) CurrentWalletAddress() string {
	l.m.Lock()
	defer l.m.Unlock()
	return l.blockchain.CurrentWalletAddress()
}

// FindBlockByWallet returns a snapshot of the block owning address.
func (l *Ledger) FindBlockByWallet(address string) (model.BlockView, bool) {
	l.m.Lock()
	defer l.m.Unlock()
	b, ok := l.blockchain.FindBlockByWallet(address)
	if !ok {
		return model.BlockView{}, false
	}
	return b.View(), true
}

// AllBlocks returns the full dump. Each call lowers the tracked genesis pool
// by the spending of every non-genesis block.
func (l *Ledger) AllBlocks() model.Report {
	l.m.Lock()
	defer l.m.Unlock()
	return l.blockchain.AllBlocks()
}

// GenesisFunds reads the genesis pool without the report side effect.
func (l *Ledger) GenesisFunds() int64 {
	l.m.Lock()
	defer l.m.Unlock()
	return l.blockchain.GenesisFunds()
}

// Height is the number of blocks, the open one included.
func (l *Ledger) Height() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.blockchain.Len()
}

// Verify checks linkage and proof-of-work of the whole chain.
func (l *Ledger) Verify() error {
	l.m.Lock()
	defer l.m.Unlock()
	return l.blockchain.Verify(l.config.DIFFICULTY)
}

// Views snapshots every block without touching the genesis pool.
func (l *Ledger) Views() []model.BlockView {
	l.m.Lock()
	defer l.m.Unlock()
	blocks := l.blockchain.Blocks()
	views := make([]model.BlockView, 0, len(blocks))
	for _, b := range blocks {
		views = append(views, b.View())
	}
	return views
}
