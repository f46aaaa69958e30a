package visualize

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestViews() []model.BlockView {
	return []model.BlockView{
		{
			ID:            1,
			PreviousHash:  "0",
			Hash:          "0000e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852",
			WalletAddress: "WalletAddress-1",
			Transactions:  []model.Transaction{{Sender: "alice", Amount: 10, Receiver: "bob"}},
			IsClosed:      true,
		},
		{
			ID:            2,
			PreviousHash:  "0000e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852",
			WalletAddress: "WalletAddress-2",
		},
	}
}

func TestConstructData(t *testing.T) {
	head := constructData(createTestViews())
	require.NotNil(t, head)
	assert.Equal(t, 1, head.id)
	assert.Equal(t, "0000e3...852", head.hash)
	assert.Equal(t, "0", head.prevHash)
	assert.Equal(t, []transaction{{sender: "alice", amount: 10, receiver: "bob"}}, head.txs)
	require.NotNil(t, head.next)
	assert.Equal(t, 2, head.next.id)
	assert.Equal(t, head.hash, head.next.prevHash)
	assert.Nil(t, head.next.next)
}

func TestRender(t *testing.T) {
	buf := &bytes.Buffer{}
	require.Nil(t, Render(buf, createTestViews()))
	assert.Contains(t, buf.String(), "digraph")
	assert.Contains(t, buf.String(), "WalletAddress-2")

	assert.NotNil(t, Render(buf, nil))
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.dot")
	require.Nil(t, RenderToFile(path, createTestViews()))
	data, err := ioutil.ReadFile(path)
	require.Nil(t, err)
	assert.Contains(t, string(data), "WalletAddress-1")
}
