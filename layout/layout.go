package layout

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/jroimartin/gocui"
)

const (
	PAST_CMD_VIEW = "pastcommand"
	INPUT_VIEW    = "input"
	LOGGER_VIEW   = "logger"
	MANUAL_VIEW   = "manual"

	// Commands entered while the ledger is busy mining wait here.
	INPUT_QUEUE_SIZE = 16
)

type cmd struct {
	str   string
	ready bool
	m     sync.RWMutex
}

var command cmd = cmd{}

// PastCmd is the ViewManager that logs past command.
type PastCmd struct {
	name string
}

// Input box for command.
type Input struct {
	name  string
	queue chan commands.Command
}

// Logger shows everything the ledger prints.
type Logger struct {
	name string
}

// Manual shows the command usage.
type Manual struct {
	name string
	text string
}

func (pc *PastCmd) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom left corner.
	v, err := g.SetView(pc.name, 1, maxY*2/3, maxX/3, maxY-6)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Autoscroll = true
	v.Wrap = true

	command.m.Lock()
	defer command.m.Unlock()
	if command.ready {
		fmt.Fprintln(v, "> "+command.str)
	}
	command.ready = false

	return nil
}

func (i *Input) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom.
	v, err := g.SetView(i.name, 1, maxY-5, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Wrap = true
	v.Autoscroll = true
	v.Editor = i
	v.Editable = true
	return nil
}

func (l *Logger) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Right side.
	v, err := g.SetView(l.name, maxX/3+1, 1, maxX-1, maxY-6)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Autoscroll = true
	v.Wrap = true
	return nil
}

func (m *Manual) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Top left corner.
	v, err := g.SetView(m.name, 1, 1, maxX/3, maxY*2/3-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Wrap = true
	v.Clear()
	fmt.Fprintln(v, m.text)
	return nil
}

func (i *Input) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	switch {
	case key == gocui.KeyEnter:
		// Read buffer.
		i.submit(v.Buffer())

		// Reset cursor.
		v.Clear()
		v.SetOrigin(0, 0)
		v.SetCursor(0, 0)

	case ch != 0 && mod == 0:
		v.EditWrite(ch)
	case key == gocui.KeySpace:
		v.EditWrite(' ')
	case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
		v.EditDelete(true)
	}
}

// submit parses one input line, echoes it to the past command view and
// queues it. It never blocks; a full queue drops the command.
func (i *Input) submit(s string) {
	// Remove \n from string.
	s = strings.Replace(s, "\n", "", -1)
	op, err := commands.CreateCommand(s)
	if err == nil {
		select {
		case i.queue <- op:
		default:
			err = fmt.Errorf("ledger is busy, command dropped")
		}
	}

	command.m.Lock()
	defer command.m.Unlock()
	command.str = s
	if err != nil {
		command.str = s + "\n" + err.Error()
	}
	command.ready = true
}

// forward hands queued commands to the ledger in the order they were entered.
func forward(queue <-chan commands.Command, cmd chan<- commands.Command) {
	for c := range queue {
		cmd <- c
	}
}

func SetFocus(name string) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		_, err := g.SetCurrentView(name)
		return err
	}
}

// Create a GUI, using the command channel to pass commands to the ledger.
// manual is shown in the top left view.
func CreateGui(cmd chan commands.Command, manual string) (*gocui.Gui, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	g.Cursor = true

	pc := &PastCmd{name: PAST_CMD_VIEW}
	l := &Logger{name: LOGGER_VIEW}
	m := &Manual{name: MANUAL_VIEW, text: manual}
	input := &Input{name: INPUT_VIEW, queue: make(chan commands.Command, INPUT_QUEUE_SIZE)}
	go forward(input.queue, cmd)
	focus := gocui.ManagerFunc(SetFocus(INPUT_VIEW))
	g.SetManager(pc, input, l, m, focus)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	return g, err
}

// ViewWriter appends everything written to it to the logger view.
type ViewWriter struct {
	g *gocui.Gui
}

func NewViewWriter(g *gocui.Gui) *ViewWriter {
	return &ViewWriter{g: g}
}

func (w *ViewWriter) Write(p []byte) (int, error) {
	s := string(p)
	w.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(LOGGER_VIEW)
		if err != nil {
			return err
		}
		fmt.Fprint(v, s)
		return nil
	})
	return len(p), nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
