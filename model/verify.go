package model

import (
	"fmt"

	"github.com/Luismorlan/ledger_in_go/utils"
)

// Verify walks the whole chain and checks:
//  1. Genesis has id 1 and previous hash "0".
//  2. Ids increase by one.
//  3. Every block links to the hash of its predecessor.
//  4. Every closed block's hash recomputes from its payload and meets difficulty.
//  5. Only the last block is open.
func (bc *Blockchain) Verify(difficulty int) error {
	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}
	genesis := bc.blocks[0]
	if genesis.ID() != GENESIS_ID || genesis.PreviousHash() != GENESIS_PREV_HASH {
		return fmt.Errorf("invalid genesis block %d with previous hash %q", genesis.ID(), genesis.PreviousHash())
	}

	last := len(bc.blocks) - 1
	for i, block := range bc.blocks {
		if i > 0 {
			prev := bc.blocks[i-1]
			if block.ID() != prev.ID()+1 {
				return fmt.Errorf("block %d follows block %d", block.ID(), prev.ID())
			}
			if block.PreviousHash() != prev.Hash() {
				return fmt.Errorf("block %d previous hash %q does not match %q", block.ID(), block.PreviousHash(), prev.Hash())
			}
		}
		if !block.IsClosed() {
			if i != last {
				return fmt.Errorf("block %d is open but is not the last block", block.ID())
			}
			continue
		}
		if digest := utils.Digest(block.Payload()); digest != block.Hash() {
			return fmt.Errorf("block %d hash is invalid: got %s, recomputed %s", block.ID(), block.Hash(), digest)
		}
		if !utils.HasLeadingHexZeros(block.Hash(), difficulty) {
			return fmt.Errorf("block %d hash %s does not meet difficulty %d", block.ID(), block.Hash(), difficulty)
		}
	}
	return nil
}
