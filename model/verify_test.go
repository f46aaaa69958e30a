package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSealedChain(t *testing.T, n int) *Blockchain {
	bc := createTestChain()
	for i := 0; i < n; i++ {
		require.Nil(t, bc.RegisterTransaction(tx("alice", int64(i+1), "bob")))
		_, err := bc.CloseCurrentBlock(context.Background(), 2, 0)
		require.Nil(t, err)
	}
	return bc
}

func TestVerifyValidChain(t *testing.T) {
	bc := createSealedChain(t, 3)
	assert.Nil(t, bc.Verify(2))
	// A stricter difficulty than used for mining is reported.
	assert.NotNil(t, bc.Verify(64))
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(bc *Blockchain)
	}{
		{
			name: "transaction rewritten after sealing",
			tamper: func(bc *Blockchain) {
				bc.blocks[1].txs[0].Amount = 1000
			},
		},
		{
			name: "broken hash link",
			tamper: func(bc *Blockchain) {
				bc.blocks[2].previousHash = bc.blocks[0].hash
			},
		},
		{
			name: "open block in the middle",
			tamper: func(bc *Blockchain) {
				bc.blocks[1].hash = ""
			},
		},
		{
			name: "genesis previous hash",
			tamper: func(bc *Blockchain) {
				bc.blocks[0].previousHash = "1"
			},
		},
		{
			name: "id gap",
			tamper: func(bc *Blockchain) {
				bc.blocks[3].id = 9
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := createSealedChain(t, 3)
			tt.tamper(bc)
			assert.NotNil(t, bc.Verify(2))
		})
	}
}

func TestVerifyEmptyChain(t *testing.T) {
	bc := &Blockchain{}
	assert.NotNil(t, bc.Verify(2))
}
