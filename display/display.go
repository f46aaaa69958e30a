package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/pterm/pterm"
)

// Placeholder for the hash of an open block.
const OPEN_HASH = "(open)"

func hashOrOpen(h string) string {
	if h == "" {
		return OPEN_HASH
	}
	return h
}

// The full hash is too long for a table cell, keep the first 8 and last 4
// characters. E.g. "0000abcdef...9f3c".
func shortenHash(s string) string {
	if len(s) < 16 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:8], s[len(s)-4:])
}

// FormatBlock renders one block with all of its transactions.
func FormatBlock(v model.BlockView) string {
	var sb strings.Builder
	sb.WriteString(pterm.Sprintfln("Block id: %d", v.ID))
	sb.WriteString(pterm.Sprintfln("Nonce: %d", v.Nonce))
	sb.WriteString(pterm.Sprintfln("Previous hash: %s", v.PreviousHash))
	sb.WriteString(pterm.Sprintfln("Hash: %s", hashOrOpen(v.Hash)))
	sb.WriteString(pterm.Sprintfln("Wallet address: %s", v.WalletAddress))
	sb.WriteString(pterm.Sprintfln("Funds: %d", v.FundsAdded))
	sb.WriteString("Transactions:")
	if len(v.Transactions) == 0 {
		sb.WriteString(" none")
	}
	for _, tx := range v.Transactions {
		sb.WriteString("\n  " + tx.String())
	}

	title := v.WalletAddress
	if v.IsClosed {
		title = pterm.LightGreen(title)
	} else {
		title = pterm.LightYellow(title)
	}
	return pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Sprint(sb.String())
}

// FormatReport renders a summary table of the chain followed by the genesis balance.
func FormatReport(r model.Report) (string, error) {
	data := pterm.TableData{
		{"ID", "Wallet address", "Nonce", "Previous hash", "Hash", "Funds", "Transactions"},
	}
	for _, v := range r.Blocks {
		data = append(data, []string{
			strconv.Itoa(v.ID),
			v.WalletAddress,
			strconv.FormatInt(v.Nonce, 10),
			shortenHash(v.PreviousHash),
			shortenHash(hashOrOpen(v.Hash)),
			strconv.FormatInt(v.FundsAdded, 10),
			strconv.Itoa(v.TransactionCount),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(table)
	sb.WriteString("\n")
	for _, v := range r.Blocks {
		for _, tx := range v.Transactions {
			sb.WriteString(pterm.Sprintfln("[%s] %s", v.WalletAddress, tx.String()))
		}
	}
	sb.WriteString(pterm.Sprintf("Genesis balance: %d", r.GenesisBalance))
	return sb.String(), nil
}

// FormatReceipt tells where a transaction went and what got sealed.
func FormatReceipt(r ledger.Receipt) string {
	s := pterm.Sprintf("transaction %d registered on block %d", r.TransactionCount, r.BlockID)
	if r.Sealed != nil {
		s += "\n" + pterm.Sprintf("block %d closed with hash %s, new block opened at %s", r.Sealed.ID, r.Sealed.Hash, r.CurrentWalletAddress)
	}
	return s
}

// FormatNotFound is printed when no block owns address.
func FormatNotFound(address string) string {
	return pterm.Sprintf("no block found with wallet address: %s", address)
}
