package visualize

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/bradleyjkemp/memviz"
)

// We re-define the visualize model here because BlockView carries fields,
// like the timestamp, that only clutter the graph.
type transaction struct {
	sender   string
	amount   int64
	receiver string
}

type block struct {
	id            int
	walletAddress string
	hash          string
	prevHash      string
	nonce         int64
	funds         int64
	txs           []transaction
	// Next block in the chain, nil for the open tail.
	next *block
}

// The hash is just too long to render, instead we take only first 6 and last
// 3 characters and replace the middle part with '...'.
func shortenString(s string) string {
	if len(s) < 12 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:6], s[len(s)-3:])
}

func viewToBlock(v model.BlockView) *block {
	n := &block{
		id:            v.ID,
		walletAddress: v.WalletAddress,
		hash:          shortenString(v.Hash),
		prevHash:      shortenString(v.PreviousHash),
		nonce:         v.Nonce,
		funds:         v.FundsAdded,
	}
	for i := 0; i < len(v.Transactions); i++ {
		tx := v.Transactions[i]
		n.txs = append(n.txs, transaction{sender: tx.Sender, amount: tx.Amount, receiver: tx.Receiver})
	}
	return n
}

// Link the views from genesis to tail.
func constructData(views []model.BlockView) *block {
	var head, tail *block
	for i := 0; i < len(views); i++ {
		n := viewToBlock(views[i])
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head
}

// Render writes the chain as a graphviz digraph to w.
func Render(w io.Writer, views []model.BlockView) error {
	if len(views) == 0 {
		return fmt.Errorf("nothing to render")
	}
	chain := constructData(views)
	memviz.Map(w, chain)
	return nil
}

// RenderToFile writes the graphviz dump to path. Turn it into an image with
// `dot -Tpng <path> -o chain.png`.
func RenderToFile(path string, views []model.BlockView) error {
	buf := &bytes.Buffer{}
	if err := Render(buf, views); err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf.Bytes(), 0644)
}
