// internal/console/console.go

// Package console is the interactive command line for inspecting and
// editing wheel configurations. Command execution is separated from the
// readline loop so handlers can be tested against a plain writer.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dehne/jogwheel/internal/action"
	"github.com/dehne/jogwheel/internal/led"
	"github.com/dehne/jogwheel/internal/store"
)

// Diagnostics surfaces decoder counters for the status command.
type Diagnostics interface {
	SampleErrors() uint64
}

type Config struct {
	Prompt      string
	HistoryFile string
}

type Console struct {
	cfg  Config
	st   *store.Store
	diag Diagnostics // may be nil
}

func New(cfg Config, st *store.Store, diag Diagnostics) (*Console, error) {
	if st == nil {
		return nil, errors.New("console: store required")
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "jogwheel> "
	}
	return &Console{cfg: cfg, st: st, diag: diag}, nil
}

// Command completer for readline
var completer = readline.NewPrefixCompleter(
	readline.PcItem("help",
		readline.PcItem("new"),
	),
	readline.PcItem("display"),
	readline.PcItem("new"),
	readline.PcItem("use"),
	readline.PcItem("remove"),
	readline.PcItem("status"),
	readline.PcItem("exit"),
)

// Run reads and executes commands until exit, EOF or cancellation.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.cfg.Prompt,
		HistoryFile:     c.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if c.Execute(rl.Stdout(), line) {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the console should
// exit. All user-facing output goes to w.
func (c *Console) Execute(w io.Writer, line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	switch words[0] {
	case "help", "h":
		c.help(w, words[1:])
	case "display", "d":
		c.display(w)
	case "new", "n":
		c.newConfig(w, words[1:])
	case "use", "u":
		c.use(w, words[1:])
	case "remove", "r":
		c.remove(w, words[1:])
	case "status":
		c.status(w)
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(w, "Unknown or unimplemented command.")
	}
	return false
}

const commandHelp = `JogWheel command list:
  help [new]      Display this list of commands or the help for the new command
  h [new]         Same as help
  display         Display a list of the configurations
  d               Same as display
  new <config>    Specify a new configuration. (Type "help new" for help)
  n <config>      Same as new
  use <c> <n>     Use configuration <n> for button combo <c>, 1 <= <c> <= 7
  u <c> <n>       Same as use
  remove <n>      Remove configuration <n>, 1 <= <n> <= 7
  r <n>           Same as remove
  status          Show selection, decoder and storage counters
  exit            Leave the console`

const newHelp = `JogWheel new command help
To make a new configuration, type "new <config>" where
  <config> = <spec> ( <spec>)*
There can be up to 31 specs per configuration (15 for mouse moves), separated by whitespace.
  <spec> = (K|k)<k-spec> <k-spec> | (M|m)<m-spec> <m-spec> | (W|w)<w-spec> <w-spec> | (C|c)<c-spec> <c-spec>
The first <*-spec> in a pair tells what to do on a clockwise click of the jogwheel. The other does the same for counterclockwise.
K means the action is a keystroke, M means a mouse movement spec, W means a mouse wheel roll, and C means a mouse click.
  <k-spec> = <k-modifiers><keystroke>
  <m-spec> = <k-modifiers><m-modifiers><x-dist><y-dist>
  <w-spec> = <k-modifiers><wheel-amt>
  <c-spec> = <k-modifiers><m-button>+
  <k-modifiers> = [(c|C)][(a|A)][(s|S)][(g|G)]
  <m-modifiers> = [(l|L)][(m|M)][(r|R)]
  <keystroke> = '<printable-char> | (0X|0x)<hex-digit><hex-digit>
  <x-dist> = <signed-num>
  <y-dist> = <signed-num>
  <wheel-amt> = <signed-num>
  <m-button> = (l|L)|(m|M)|(r|R)
  <signed-num> = (+|-)[<dec-digit>][<dec-digit>]<dec-digit> (whose value must be -255..+255)
For example, "k0xDA 0xD9" is the default config.`

func (c *Console) help(w io.Writer, args []string) {
	if len(args) > 0 && args[0] == "new" {
		fmt.Fprintln(w, newHelp)
		return
	}
	fmt.Fprintln(w, commandHelp)
}

func (c *Console) display(w io.Writer) {
	h := c.st.Header()

	fmt.Fprintln(w, "Button combination to configuration map")
	fmt.Fprintln(w, "Combo  Color    Config")
	for i, slot := range h.ActiveMap {
		combo := uint8(i + 1)
		fmt.Fprintf(w, "    %d  %-7s  %d\n", combo, led.ColorName(combo), slot)
	}

	fmt.Fprintln(w, "Configuration number to <config> map")
	fmt.Fprintln(w, "Number  <config>")
	for slot := 0; slot < c.st.ConfiguredCount(); slot++ {
		blk, err := c.st.ReadBlock(slot)
		if err != nil {
			fmt.Fprintf(w, "     %d  (unreadable: %v)\n", slot, err)
			continue
		}
		tokens, err := action.FormatConfig(blk.Entries)
		if err != nil {
			fmt.Fprintf(w, "     %d  (malformed: %v)\n", slot, err)
			continue
		}
		fmt.Fprintf(w, "     %d  %s\n", slot, strings.Join(tokens, " "))
	}

	free, err := c.st.FreeSpace()
	if err != nil {
		fmt.Fprintf(w, "Could not compute free space: %v\n", err)
		return
	}
	fmt.Fprintf(w, "There are %d bytes free for configurations.\n", free)
}

func (c *Console) newConfig(w io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(w, "Missing configuration. Type 'help new' for help.")
		return
	}
	entries, err := action.ParseConfig(args)
	if err != nil {
		fmt.Fprintf(w, "Could not add specification: %v. Type 'help new' for help.\n", err)
		return
	}
	slot, err := c.st.AddBlock(store.Block{Entries: entries})
	if err != nil {
		fmt.Fprintf(w, "Could not store configuration: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Added configuration %d.\n", slot)
}

func (c *Console) use(w io.Writer, args []string) {
	usage := func() {
		fmt.Fprintf(w, "To set which configuration to use, type 'use <combo> <n>' where <combo> is the\n"+
			"button combination to set and <n> is the number of the configuration to use.\n"+
			"1 <= <combo> <= %d and currently, 0 <= <n> <= %d.\n",
			store.NumCombos, c.st.ConfiguredCount()-1)
	}
	if len(args) != 2 {
		usage()
		return
	}
	combo, err1 := strconv.Atoi(args[0])
	slot, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || combo < 1 || combo > store.NumCombos {
		usage()
		return
	}
	if err := c.st.SetMapping(combo-1, slot); err != nil {
		fmt.Fprintf(w, "Could not set mapping: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Combo %d now uses configuration %d.\n", combo, slot)
}

func (c *Console) remove(w io.Writer, args []string) {
	usage := func() {
		fmt.Fprintf(w, "To remove a configuration, type 'remove <n>' where <n> is the configuration\n"+
			"number. Currently, 1 <= <n> <= %d.\n", c.st.ConfiguredCount()-1)
	}
	if len(args) != 1 {
		usage()
		return
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		usage()
		return
	}
	if err := c.st.RemoveBlock(slot); err != nil {
		fmt.Fprintf(w, "Could not remove configuration %d: %v\n", slot, err)
		return
	}
	fmt.Fprintf(w, "Removed configuration %d.\n", slot)
}

func (c *Console) status(w io.Writer) {
	sel := c.st.Selection()
	combo := uint8(sel + 1)
	fmt.Fprintf(w, "Selection: combo %d (%s)\n", combo, led.ColorName(combo))
	fmt.Fprintf(w, "Configurations: %d of %d slots used\n", c.st.ConfiguredCount(), store.NumSlots)
	if free, err := c.st.FreeSpace(); err == nil {
		fmt.Fprintf(w, "Free space: %d bytes\n", free)
	}
	if c.diag != nil {
		fmt.Fprintf(w, "Decoder sample errors: %d\n", c.diag.SampleErrors())
	}
}
