package model

import (
	"fmt"
	"strings"
)

// Transaction is a single transfer recorded in a block. Sender and receiver are
// free text labels, they are never checked against real wallet ownership.
type Transaction struct {
	// Who pays.
	Sender string
	// How much is moved. No sign or solvency check is applied.
	Amount int64
	// Who gets paid.
	Receiver string
}

func (t Transaction) String() string {
	return fmt.Sprintf("Sender: %s, Amount: %d, Receiver: %s", t.Sender, t.Amount, t.Receiver)
}

// FormatTransactions renders txs as "[tx1, tx2, ...]". This exact rendering is
// part of the mining payload, changing it changes every block hash.
func FormatTransactions(txs []Transaction) string {
	parts := make([]string, 0, len(txs))
	for i := 0; i < len(txs); i++ {
		parts = append(parts, txs[i].String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
