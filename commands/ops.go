package commands

import (
	"errors"
	"strconv"
	"strings"
)

type Operation int

const (
	DEFAULT Operation = iota
	// Register a transaction: register <sender> <amount> <receiver>.
	REGISTER
	// Mine and close the open block.
	CLOSE
	// Print the wallet address of the open block.
	ADDRESS
	// Show the block owning a wallet address: find <address>.
	FIND
	// Show every block and the genesis balance.
	SHOW
	// Check hash linkage and proof-of-work of the chain.
	VERIFY
	// Write a graphviz dump of the chain: render <path>.
	RENDER
	// Print usage.
	HELP
	// Leave.
	QUIT
)

// A command contains a operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case CLOSE, ADDRESS, SHOW, VERIFY, HELP, QUIT:
		return len(c.Args) == 0
	case REGISTER:
		if len(c.Args) != 3 {
			return false
		}
		// amount must be a whole number.
		_, err := strconv.ParseInt(c.Args[1], 10, 64)
		return err == nil
	case FIND, RENDER:
		return len(c.Args) == 1
	default:
		return false
	}
}

// From string, create a command. Words are separated by any whitespace.
func CreateCommand(s string) (Command, error) {
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return Command{}, errors.New("command is empty")
	}
	cmd := Command{}
	switch strings.ToLower(ss[0]) {
	case "register":
		cmd.Op = REGISTER
	case "close":
		cmd.Op = CLOSE
	case "address":
		cmd.Op = ADDRESS
	case "find":
		cmd.Op = FIND
	case "show":
		cmd.Op = SHOW
	case "verify":
		cmd.Op = VERIFY
	case "render":
		cmd.Op = RENDER
	case "help":
		cmd.Op = HELP
	case "quit", "exit":
		cmd.Op = QUIT
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, errors.New("invalid command: " + s)
	}
	return cmd, nil
}

// Amount parses the amount of a REGISTER command.
func (c Command) Amount() (int64, error) {
	if c.Op != REGISTER || len(c.Args) != 3 {
		return 0, errors.New("not a register command")
	}
	return strconv.ParseInt(c.Args[1], 10, 64)
}

// Create a brand new command with default operation.
func NewDefaultCommand() Command {
	return Command{
		Op: DEFAULT,
	}
}

func (c Command) IsDefault() bool {
	return c.Op == DEFAULT
}

// Usage lists every command, one per line.
const USAGE = `register <sender> <amount> <receiver>  record a transaction on the open block
close                                   mine and close the open block
address                                 print the wallet address of the open block
find <address>                          show the block owning a wallet address
show                                    show every block and the genesis balance
verify                                  check the chain
render <path>                           write a graphviz dump of the chain
help                                    print this help
quit                                    leave`
