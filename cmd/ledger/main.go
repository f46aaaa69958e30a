package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/layout"
	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/jroimartin/gocui"
)

var (
	configPath *string
	debugMode  *bool
)

func init() {
	configPath = flag.String("config_path", "", "path to ledger config, built-in defaults are used when empty")
	debugMode = flag.Bool("debug_mode", false, "Using debug mode will disable fancy GUI.")
}

// Return where output goes, stdout in debug mode and the logger view
// otherwise, and a func that releases the terminal.
func ListenOnInput(cmd chan commands.Command, debugMode bool) (io.Writer, func()) {
	if debugMode {
		go ParseCommand(cmd, os.Stdin, os.Stdout)
		return os.Stdout, func() {}
	}
	g, err := layout.CreateGui(cmd, commands.USAGE)
	if err != nil {
		log.Fatalln(err)
	}
	go func() {
		if err := g.MainLoop(); err != nil {
			g.Close()
			if err == gocui.ErrQuit {
				os.Exit(0)
			}
			os.Exit(1)
		}
	}()
	w := layout.NewViewWriter(g)
	// Anything logged straight to the terminal would tear the gui apart.
	log.SetOutput(w)
	return w, g.Close
}

// Parse commands line by line from in. End of input quits.
func ParseCommand(cmd chan commands.Command, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		c, err := commands.CreateCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			fmt.Fprint(out, "> ")
			continue
		}
		cmd <- c
	}
	cmd <- commands.Command{Op: commands.QUIT}
}

// HandleCommand runs commands until QUIT or until ctx is done.
func HandleCommand(ctx context.Context, cmd chan commands.Command, l *ledger.Ledger, out io.Writer, prompt bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-cmd:
			if !Dispatch(ctx, c, l, out) {
				return
			}
			if prompt {
				fmt.Fprint(out, "> ")
			}
		}
	}
}

func main() {
	flag.Parse()

	cfg := config.DefaultAppConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.ParseAppConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	l, err := ledger.NewLedger(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Ctrl-C interrupts a running mining job and leaves.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := make(chan commands.Command)
	out, closeInput := ListenOnInput(cmd, *debugMode)
	defer closeInput()
	fmt.Fprintf(out, "ledger %s ready, current address: %s\n", l.ID(), l.CurrentWalletAddress())
	HandleCommand(ctx, cmd, l, out, *debugMode)
}
