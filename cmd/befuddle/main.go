// Befuddle CLI - runs Befunge-93 programs
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tliron/commonlog"
	"golang.org/x/term"

	"github.com/chazu/befuddle/funge"
	"github.com/chazu/befuddle/manifest"
	"github.com/chazu/befuddle/render"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("befuddle")

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	width := flag.Int("w", 0, "Field width (overrides manifest)")
	height := flag.Int("h", 0, "Field height (overrides manifest)")
	rendererName := flag.String("r", "", "Renderer: line, terminal or none (overrides manifest)")
	delay := flag.Int("delay", -1, "Delay between steps in milliseconds (overrides manifest)")
	trace := flag.Bool("trace", false, "Draw field, stack and pointer after every step")
	seed := flag.Int64("seed", 0, "Seed for the ? opcode (0 means time-based)")
	imageOut := flag.String("image-out", "", "Write the loaded field as a .bfi image and exit")
	manifestDir := flag.String("manifest", "", "Directory containing befuddle.toml")
	noManifest := flag.Bool("no-manifest", false, "Skip befuddle.toml discovery")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: befuddle [options] <program>\n\n")
		fmt.Fprintf(os.Stderr, "Runs a Befunge-93 program (text source or .bfi field image).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  befuddle hello.bf               # Run with the line renderer\n")
		fmt.Fprintf(os.Stderr, "  befuddle -r terminal maze.bf    # Watch execution full-screen\n")
		fmt.Fprintf(os.Stderr, "  befuddle -w 32 -h 8 tiny.bf     # Non-standard field size\n")
		fmt.Fprintf(os.Stderr, "  befuddle -image-out p.bfi p.bf  # Save the loaded field\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	m, err := resolveManifest(*manifestDir, *noManifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if *width > 0 {
		m.Field.Width = *width
	}
	if *height > 0 {
		m.Field.Height = *height
	}
	if *rendererName != "" {
		m.Run.Renderer = *rendererName
	}
	if *delay >= 0 {
		m.Run.DelayMS = *delay
	}
	if *trace {
		m.Run.Trace = true
	}
	if *imageOut != "" {
		m.Image.Output = *imageOut
		m.Dir = "" // flag paths resolve against the working directory
	}

	path := flag.Arg(0)
	field, err := loadField(path, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Infof("loaded %s into a %dx%d field", path, field.Width(), field.Height())

	if out := m.ImageOutputPath(); out != "" {
		if err := writeImage(field, out, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	r, err := pickRenderer(m.Run.Renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var exec *funge.Execution
	if *seed != 0 {
		exec = funge.NewSeededExecution(field, r, *seed)
	} else {
		exec = funge.NewExecution(field, r)
	}

	// The terminal renderer is pointless without per-step drawing.
	doTrace := m.Run.Trace || m.Run.Renderer == "terminal"

	err = runLoop(exec, r, doTrace, m.Run.DelayMS)
	if r != nil {
		r.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
}

// resolveManifest picks the configuration source: an explicit
// directory, discovery from the working directory, or defaults.
func resolveManifest(dir string, skip bool) (*manifest.Manifest, error) {
	switch {
	case skip:
		return manifest.Default(), nil
	case dir != "":
		return manifest.Load(dir)
	default:
		return manifest.FindAndLoad(".")
	}
}

// loadField reads a program file and builds its field. Field images
// are recognized by magic; anything else is loaded as source text.
func loadField(path string, m *manifest.Manifest) (*funge.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read program: %w", err)
	}
	if funge.IsFieldImage(data) {
		return funge.UnmarshalField(data)
	}
	return funge.FieldFromString(string(data), m.Field.Width, m.Field.Height), nil
}

func writeImage(field *funge.Field, path string, verbose bool) error {
	img, err := funge.MarshalField(field)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, img, 0644); err != nil {
		return fmt.Errorf("cannot write field image: %w", err)
	}
	if verbose {
		fmt.Printf("Wrote field image %s (%d bytes)\n", path, len(img))
	}
	return nil
}

// pickRenderer builds the requested renderer. "terminal" needs a TTY
// and falls back to the line renderer without one; "none" runs the
// program with its I/O opcodes disconnected.
func pickRenderer(name string) (render.Renderer, error) {
	switch name {
	case "none":
		return nil, nil
	case "terminal":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			log.Warning("stdout is not a terminal, using the line renderer")
			return render.NewLineRenderer(os.Stdout, os.Stdin), nil
		}
		return render.NewTerminalRenderer()
	case "line":
		return render.NewLineRenderer(os.Stdout, os.Stdin), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

// runLoop steps the execution to completion, drawing snapshots between
// steps when tracing.
func runLoop(exec *funge.Execution, r render.Renderer, trace bool, delayMS int) error {
	draw := func() {
		if r == nil || !trace {
			return
		}
		p := exec.Pointer()
		r.DrawField(exec.Field())
		r.DrawStack(exec.Stack())
		r.DrawPointer(p.X, p.Y)
	}

	draw()
	for !exec.Halted() {
		if err := exec.Step(); err != nil {
			return err
		}
		draw()
		if delayMS > 0 {
			time.Sleep(time.Duration(delayMS) * time.Millisecond)
		}
	}
	return nil
}
