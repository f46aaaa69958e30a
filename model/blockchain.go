package model

import (
	"context"
	"log"
	"time"
)

// Id of the genesis block.
const GENESIS_ID = 1

// Blockchain is the ordered list of blocks plus the genesis fund pool. Only the
// last block is ever open. It is not safe for concurrent use.
type Blockchain struct {
	// Index 0 is genesis.
	blocks []*Block
	// Funds not yet handed out from genesis.
	genesisFunds int64
	// Clock for new blocks.
	now func() time.Time
}

// Create a new blockchain holding only the open genesis block.
func NewBlockChain(initialFunds int64) *Blockchain {
	return NewBlockChainWithClock(initialFunds, time.Now)
}

// Create a new blockchain whose blocks are stamped by now.
func NewBlockChainWithClock(initialFunds int64, now func() time.Time) *Blockchain {
	bc := &Blockchain{
		genesisFunds: initialFunds,
		now:          now,
	}
	bc.createGenesis(initialFunds)
	return bc
}

func (bc *Blockchain) createGenesis(initialFunds int64) {
	genesis := NewBlockAt(GENESIS_ID, GENESIS_PREV_HASH, bc.now())
	genesis.AddFunds(initialFunds)
	bc.blocks = append(bc.blocks, genesis)
	log.Printf("genesis block created at %s with %d funds", genesis.WalletAddress(), initialFunds)

	bc.DistributeFundsFromGenesis(genesis)
}

// DistributeFundsFromGenesis credits every open block before the last one that
// has a zero balance with min(pool, balance), ie. zero.
// TODO: the credited amount is always 0, confirm the intended top-up rule with the ledger owners before changing it.
func (bc *Blockchain) DistributeFundsFromGenesis(genesis *Block) {
	for i := len(bc.blocks) - 2; i >= 0; i-- {
		block := bc.blocks[i]
		if !block.IsClosed() && block.RemainingFunds() == 0 {
			distributed := min64(bc.genesisFunds, block.RemainingFunds())
			block.AddFunds(distributed)
			bc.genesisFunds -= distributed
		}
	}
}

// Blocks returns the chain in order. The blocks themselves are shared.
func (bc *Blockchain) Blocks() []*Block {
	out := make([]*Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

func (bc *Blockchain) Len() int { return len(bc.blocks) }

// Current is the open block at the end of the chain.
func (bc *Blockchain) Current() *Block {
	return bc.blocks[len(bc.blocks)-1]
}

func (bc *Blockchain) Genesis() *Block {
	return bc.blocks[0]
}

func (bc *Blockchain) GenesisFunds() int64 { return bc.genesisFunds }

// RegisterTransaction records tx on the current block and settles the amount:
//  1. The current block is debited the full amount.
//  2. Walking older blocks newest first, every open block whose balance is
//     below the remaining amount is credited min(amount, balance) and the
//     remaining amount shrinks by that much.
//  3. What is left comes out of the genesis pool.
// Nothing is mutated when the current block refuses the transaction.
func (bc *Blockchain) RegisterTransaction(tx Transaction) error {
	current := bc.Current()
	if err := current.AddData(tx); err != nil {
		return err
	}
	current.SubtractFunds(tx.Amount)

	amount := tx.Amount
	for i := len(bc.blocks) - 2; i >= 0; i-- {
		block := bc.blocks[i]
		if !block.IsClosed() && block.RemainingFunds() < amount {
			distributed := min64(amount, block.RemainingFunds())
			block.AddFunds(distributed)
			amount -= distributed
		}
	}

	bc.genesisFunds -= amount
	return nil
}

// CloseCurrentBlock seals the current block and appends a new open block
// linked to it. On mining failure the chain is left as it was, apart from the
// nonce progress of the current block.
func (bc *Blockchain) CloseCurrentBlock(ctx context.Context, difficulty int, maxIterations int64) (*Block, error) {
	current := bc.Current()
	if err := current.CloseBlock(ctx, difficulty, maxIterations); err != nil {
		return nil, err
	}

	next := NewBlockAt(current.ID()+1, current.Hash(), bc.now())
	bc.blocks = append(bc.blocks, next)
	log.Printf("opened block %d at %s", next.ID(), next.WalletAddress())
	return current, nil
}

func (bc *Blockchain) CurrentWalletAddress() string {
	return bc.Current().WalletAddress()
}

// FindBlockByWallet returns the first block owning address.
func (bc *Blockchain) FindBlockByWallet(address string) (*Block, bool) {
	for _, block := range bc.blocks {
		if block.WalletAddress() == address {
			return block, true
		}
	}
	return nil, false
}

// AllBlocks snapshots every block and recomputes the genesis balance by
// deducting what each non-genesis block spent (funds added minus remaining).
// The result is written back to the pool. Both amounts read the same balance,
// so the deduction is always 0 and repeated calls leave the pool unchanged.
func (bc *Blockchain) AllBlocks() Report {
	report := Report{Blocks: make([]BlockView, 0, len(bc.blocks))}
	for _, block := range bc.blocks {
		report.Blocks = append(report.Blocks, block.View())
	}

	var spent int64
	for i := 1; i < len(bc.blocks); i++ {
		block := bc.blocks[i]
		spent += block.FundsAdded() - block.RemainingFunds()
	}
	bc.genesisFunds -= spent

	report.GenesisBalance = bc.genesisFunds
	return report
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
