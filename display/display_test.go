package display

import (
	"strings"
	"testing"

	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func createTestViews() []model.BlockView {
	return []model.BlockView{
		{
			ID:               1,
			PreviousHash:     "0",
			Hash:             "0000e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852",
			WalletAddress:    "WalletAddress-1",
			Nonce:            1234,
			TransactionCount: 1,
			Transactions:     []model.Transaction{{Sender: "alice", Amount: 10, Receiver: "bob"}},
			FundsAdded:       9_999_990,
			IsClosed:         true,
		},
		{
			ID:            2,
			PreviousHash:  "0000e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852",
			WalletAddress: "WalletAddress-2",
		},
	}
}

func TestFormatBlock(t *testing.T) {
	views := createTestViews()

	s := FormatBlock(views[0])
	assert.Contains(t, s, "Block id: 1")
	assert.Contains(t, s, "Nonce: 1234")
	assert.Contains(t, s, "Funds: 9999990")
	assert.Contains(t, s, "Sender: alice, Amount: 10, Receiver: bob")
	assert.Contains(t, s, "WalletAddress-1")

	s = FormatBlock(views[1])
	assert.Contains(t, s, "Hash: "+OPEN_HASH)
	assert.Contains(t, s, "Transactions: none")
}

func TestFormatReport(t *testing.T) {
	s, err := FormatReport(model.Report{Blocks: createTestViews(), GenesisBalance: 42})
	require.Nil(t, err)

	assert.Contains(t, s, "WalletAddress-1")
	assert.Contains(t, s, "WalletAddress-2")
	assert.Contains(t, s, "0000e3b0...7852")
	assert.Contains(t, s, "[WalletAddress-1] Sender: alice, Amount: 10, Receiver: bob")
	assert.True(t, strings.HasSuffix(s, "Genesis balance: 42"))
}

func TestFormatReceipt(t *testing.T) {
	assert.Equal(t, "transaction 2 registered on block 1", FormatReceipt(ledger.Receipt{BlockID: 1, TransactionCount: 2}))

	views := createTestViews()
	r := ledger.Receipt{BlockID: 1, TransactionCount: 3, Sealed: &views[0], CurrentWalletAddress: "WalletAddress-2"}
	s := FormatReceipt(r)
	assert.Contains(t, s, "block 1 closed with hash "+views[0].Hash)
	assert.Contains(t, s, "new block opened at WalletAddress-2")
}

func TestShortenHash(t *testing.T) {
	assert.Equal(t, "0", shortenHash("0"))
	assert.Equal(t, OPEN_HASH, shortenHash(OPEN_HASH))
	assert.Equal(t, "01234567...cdef", shortenHash("0123456789abcdef0123456789abcdef"))
}
