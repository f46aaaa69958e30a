package model

import (
	"github.com/jinzhu/copier"
)

// BlockView is a detached, read-only snapshot of a block for rendering.
type BlockView struct {
	ID               int
	PreviousHash     string
	Hash             string
	WalletAddress    string
	Timestamp        int64
	Nonce            int64
	TransactionCount int
	Transactions     []Transaction
	FundsAdded       int64
	RemainingFunds   int64
	IsClosed         bool
}

// Report is the full dump of the chain.
type Report struct {
	Blocks []BlockView
	// Genesis pool after the report's own recomputation.
	GenesisBalance int64
}

// View fills a BlockView from the block accessors. The copy shares nothing
// with the block.
func (b *Block) View() BlockView {
	v := BlockView{}
	if err := copier.CopyWithOption(&v, b, copier.Option{DeepCopy: true, CaseSensitive: true}); err != nil {
		// copier only fails on mismatched kinds, which these types never have.
		panic(err)
	}
	// copier reads methods only into non-slice fields.
	v.Transactions = b.Transactions()
	return v
}
