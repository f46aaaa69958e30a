package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/display"
	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/visualize"
)

// Dispatch runs one command against the ledger and writes the result to out.
// It returns false when the session should end.
func Dispatch(ctx context.Context, c commands.Command, l *ledger.Ledger, out io.Writer) bool {
	switch c.Op {
	case commands.REGISTER:
		amount, err := c.Amount()
		if err != nil {
			fmt.Fprintln(out, err)
			return true
		}
		r, err := l.RegisterTransaction(ctx, c.Args[0], amount, c.Args[2])
		if ledger.IsPreconditionViolation(err) {
			fmt.Fprintf(out, "transaction refused: %v, close the block first\n", err)
			return true
		}
		if err != nil {
			fmt.Fprintf(out, "transaction failed: %v\n", err)
			if r.BlockID == 0 {
				return true
			}
		}
		fmt.Fprintln(out, display.FormatReceipt(r))
	case commands.CLOSE:
		v, err := l.CloseCurrentBlock(ctx)
		if err != nil {
			fmt.Fprintf(out, "failed to close block: %v\n", err)
			return true
		}
		fmt.Fprintln(out, display.FormatBlock(v))
		fmt.Fprintf(out, "new block opened at %s\n", l.CurrentWalletAddress())
	case commands.ADDRESS:
		fmt.Fprintf(out, "current address: %s\n", l.CurrentWalletAddress())
	case commands.FIND:
		v, ok := l.FindBlockByWallet(c.Args[0])
		if !ok {
			fmt.Fprintln(out, display.FormatNotFound(c.Args[0]))
			return true
		}
		fmt.Fprintln(out, display.FormatBlock(v))
	case commands.SHOW:
		s, err := display.FormatReport(l.AllBlocks())
		if err != nil {
			fmt.Fprintf(out, "failed to render blocks: %v\n", err)
			return true
		}
		fmt.Fprintln(out, s)
	case commands.VERIFY:
		if err := l.Verify(); err != nil {
			fmt.Fprintf(out, "chain is invalid: %v\n", err)
			return true
		}
		fmt.Fprintf(out, "chain is valid, %d blocks\n", l.Height())
	case commands.RENDER:
		if err := visualize.RenderToFile(c.Args[0], l.Views()); err != nil {
			fmt.Fprintf(out, "failed to render chain: %v\n", err)
			return true
		}
		fmt.Fprintf(out, "chain written to %s\n", c.Args[0])
	case commands.HELP:
		fmt.Fprintln(out, commands.USAGE)
	case commands.QUIT:
		return false
	default:
		fmt.Fprintf(out, "Unrecognized command: %d\n", c.Op)
	}
	return true
}
