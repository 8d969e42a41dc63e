/*
Command farsicli is an interactive playground for Farsi text editing.

Lines typed at the prompt are inserted into the current surface's buffer in
logical order. The shaped display text is printed after every change,
together with a caret at the visual cursor position. Lines starting with a
colon are commands, see ':help'.

	farsicli -text "سلام" -trace Debug
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/rtltext/farsitext/core"
	"github.com/rtltext/farsitext/engine/surface"
	"github.com/rtltext/farsitext/engine/text/arabic"
	"golang.org/x/text/unicode/bidi"
)

// tracer traces with key 'farsitext.cli'
func tracer() tracing.Trace {
	return tracing.Select("farsitext.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.farsitext.cli":     "Info",
		"trace.farsitext.arabic":  "Error",
		"trace.farsitext.editbuf": "Error",
		"trace.farsitext.surface": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	text := flag.String("text", "", "Initial display text of the surface")
	id := flag.String("surface", "main", "Name of the surface to edit")
	flag.Parse()
	level := tracing.TraceLevelFromString(*tlevel)
	for _, key := range []string{"farsitext.arabic", "farsitext.editbuf", "farsitext.surface"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	pterm.Info.Println("Welcome to the Farsi text playground")
	tracer().Infof("Trace level is %s", level)
	//
	// set up REPL
	repl, err := readline.New("fa > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(repl)
	intp.switchSurface(*id, *text)
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or :quit")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	surfaces *surface.Registry
	current  string
}

// NewIntp creates an interpreter without any surfaces.
func NewIntp(repl *readline.Instance) *Intp {
	return &Intp{repl: repl, surfaces: surface.NewRegistry()}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			core.UserError(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command codes of the interpreter.
const (
	INSERT int = iota
	QUIT
	HELP
	DUMP
	LOGICAL
	DIRECTION
	SURFACE
	DISPOSE
	LIST
	KEY
	OP
	NEWLINE
)

// Command is a parsed input line.
type Command struct {
	code int
	args []string
	text string // text to insert, or raw command line
}

func parseCommand(line string) Command {
	if !strings.HasPrefix(line, ":") {
		return Command{code: INSERT, text: line}
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return Command{code: HELP}
	}
	cmd := Command{args: fields[1:], text: line}
	switch strings.ToLower(fields[0]) {
	case "quit", "q":
		cmd.code = QUIT
	case "dump":
		cmd.code = DUMP
	case "logical", "log":
		cmd.code = LOGICAL
	case "dir", "direction":
		cmd.code = DIRECTION
	case "surface", "s":
		cmd.code = SURFACE
	case "dispose":
		cmd.code = DISPOSE
	case "list", "ls":
		cmd.code = LIST
	case "key", "k":
		cmd.code = KEY
	case "op":
		cmd.code = OP
	case "nl":
		cmd.code = NEWLINE
	default:
		cmd.code = HELP
	}
	tracer().Debugf("parse command = %v", fields)
	return cmd
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
		return false, nil
	case SURFACE:
		if len(cmd.args) == 0 {
			pterm.Printfln("current surface is %q", intp.current)
			return false, nil
		}
		intp.switchSurface(cmd.args[0], strings.Join(cmd.args[1:], " "))
		return false, nil
	case DISPOSE:
		id := intp.current
		if len(cmd.args) > 0 {
			id = cmd.args[0]
		}
		if _, err := intp.surfaces.Lookup(id); err != nil {
			return false, err
		}
		intp.surfaces.Dispose(id)
		pterm.Printfln("disposed surface %q", id)
		return false, nil
	case LIST:
		for _, id := range intp.surfaces.IDs() {
			marker := " "
			if id == intp.current {
				marker = "*"
			}
			pterm.Printfln("%s %s", marker, id)
		}
		return false, nil
	}
	buf, err := intp.surfaces.Lookup(intp.current)
	if err != nil {
		return false, err
	}
	switch cmd.code {
	case INSERT:
		return false, surface.Apply(buf, surface.Command{Op: surface.InsertText, Text: cmd.text})
	case NEWLINE:
		return false, intp.surfaces.Dispatch(intp.current, "RET", "")
	case KEY:
		if len(cmd.args) == 0 {
			return false, core.Error(core.EINVALID, "usage: :key NAME [text]")
		}
		return false, intp.surfaces.Dispatch(intp.current, strings.ToUpper(cmd.args[0]),
			strings.Join(cmd.args[1:], " "))
	case OP:
		if len(cmd.args) == 0 {
			return false, core.Error(core.EINVALID, "usage: :op OPERATION [text]")
		}
		op, err := surface.ParseOp(cmd.args[0])
		if err != nil {
			return false, err
		}
		return false, surface.Apply(buf, surface.Command{Op: op, Text: strings.Join(cmd.args[1:], " ")})
	case DUMP:
		dump(buf.Logical(), buf.Display())
	case LOGICAL:
		pterm.Printfln("logical: %s", buf.Logical())
		pterm.Printfln("cursor:  %d of %d", buf.Cursor(), buf.Len())
	case DIRECTION:
		pterm.Printfln("paragraph direction: %s", directionName(arabic.Direction([]rune(buf.Logical()))))
	}
	return false, nil
}

// switchSurface makes id the current surface, creating a buffer for it if
// necessary.
func (intp *Intp) switchSurface(id string, display string) {
	intp.current = id
	intp.surfaces.Acquire(id, display, &terminalSink{name: id})
	intp.repl.SetPrompt(fmt.Sprintf("fa:%s > ", id))
	tracer().Infof("editing surface %q", id)
}

func directionName(dir bidi.Direction) string {
	switch dir {
	case bidi.LeftToRight:
		return "left to right"
	case bidi.RightToLeft:
		return "right to left"
	case bidi.Mixed:
		return "mixed"
	}
	return "neutral"
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<text>              insert text at the cursor
	:nl                 insert a newline
	:key NAME [text]    send a key to the surface, e.g. ':key RIGHT_ARROW'
	                    keys: BACK_SPACE DEL HOME END RIGHT_ARROW LEFT_ARROW
	                          UP_ARROW DOWN_ARROW RET PASTE
	:op OPERATION [t]   apply an edit operation, e.g. ':op LineUp'
	:logical            print the logical text and cursor
	:dump               print code points of logical and display text
	:dir                print the paragraph direction
	:surface [id [t]]   switch to surface id, created with display text t
	:dispose [id]       drop the buffer of a surface
	:list               list surfaces
	:quit               leave
	`)
}
