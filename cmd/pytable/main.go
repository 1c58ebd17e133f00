// pytable renders tabular data as aligned, bordered text tables for the
// terminal.
//
// It reads a YAML table document or a CSV file (from a path or stdin), lays
// the columns out to fit the terminal width, and prints the result. The
// table can also be re-rendered on every change to the input file, or opened
// in an interactive scrollable viewer.
//
// Usage:
//
//	pytable [flags]
//
// Flags:
//
//	-file string    Input file ("" or "-" reads stdin)
//	-format string  Input format: yaml or csv (default: by file extension)
//	-width int      Render width budget (0 = terminal width; unconstrained in pipes)
//	-border string  Border preset (unicode|rounded|ascii) or eleven glyphs
//	-padding int    Spaces on each side of cell content
//	-title string   Title overlaid on the top border
//	-footer string  Footer overlaid on the bottom border
//	-no-color       Disable ANSI styling
//	-tui            Open the table in the interactive viewer
//	-watch          Re-render whenever the input file changes
//	-demo           Render a built-in showcase table and exit
//	-verbose        Enable debug logging
//	-version        Print version and exit
//	-man            Print man page to stdout in roff format
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"
	"github.com/muesli/termenv"

	"github.com/biswanathroul/pytable-formatter/config"
	"github.com/biswanathroul/pytable-formatter/docs/manpage"
	"github.com/biswanathroul/pytable-formatter/internal/watch"
	"github.com/biswanathroul/pytable-formatter/table"
	"github.com/biswanathroul/pytable-formatter/tui"
)

const usageText = `pytable renders YAML table documents and CSV files as aligned, bordered text tables sized to the terminal. Documents describe layout (title, footer, padding, widths, border glyphs) and per-cell attributes (alignment, style, color, column span); CSV input treats the first record as the header row.`

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "pytable %s (%s) built %s\n\n", version, commit, date)
	fmt.Fprintln(out, wordwrap.WrapString(usageText, 76))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: pytable [flags]")
	fmt.Fprintln(out)
	flag.PrintDefaults()
}

func main() {
	var (
		filePath    = flag.String("file", "", `Input file ("" or "-" reads stdin)`)
		formatFlag  = flag.String("format", "", "Input format: yaml or csv (default: by file extension)")
		widthFlag   = flag.Int("width", 0, "Render width budget (0 = terminal width; unconstrained in pipes)")
		borderFlag  = flag.String("border", "", "Border preset (unicode|rounded|ascii) or eleven glyphs")
		paddingFlag = flag.Int("padding", 1, "Spaces on each side of cell content")
		titleFlag   = flag.String("title", "", "Title overlaid on the top border")
		footerFlag  = flag.String("footer", "", "Footer overlaid on the bottom border")
		noColor     = flag.Bool("no-color", false, "Disable ANSI styling")
		runTUI      = flag.Bool("tui", false, "Open the table in the interactive viewer")
		runWatch    = flag.Bool("watch", false, "Re-render whenever the input file changes")
		runDemo     = flag.Bool("demo", false, "Render a built-in showcase table and exit")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
		showMan     = flag.Bool("man", false, "Print man page to stdout in roff format")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("pytable %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *showMan {
		fmt.Print(manpage.Generate(version, commit, date))
		os.Exit(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// With color off, lipgloss chrome (viewer header, watch status line)
	// drops to plain text alongside the engine's own styling.
	enabled := colorEnabled(*noColor)
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	opts := table.DefaultOptions()
	opts.ColorEnabled = enabled
	opts.Logger = logger

	ov := overrides{
		title:   *titleFlag,
		footer:  *footerFlag,
		border:  *borderFlag,
		padding: *paddingFlag,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			ov.setTitle = true
		case "footer":
			ov.setFooter = true
		case "border":
			ov.setBorder = true
		case "padding":
			ov.setPadding = true
		}
	})
	opts, err := ov.options(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
		os.Exit(1)
	}

	// ---------------------------------------------------------------
	// Resolve the input source
	// ---------------------------------------------------------------

	var src tui.Source
	name := "stdin"
	path := *filePath
	fromStdin := false

	switch {
	case *runDemo:
		src = demoSource()
		name = "showcase"
		path = ""

	case path == "" || path == "-":
		fromStdin = true
		if isatty.IsTerminal(os.Stdin.Fd()) {
			flag.Usage()
			os.Exit(2)
		}
		format, err := inferFormat(*formatFlag, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
			os.Exit(1)
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pytable: read stdin: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("input resolved", slog.String("source", "stdin"), slog.String("format", format))
		src = byteSource(data, format, ov)

	default:
		format, err := inferFormat(*formatFlag, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("input resolved", slog.String("file", path), slog.String("format", format))
		src = fileSource(path, format, ov)
		name = filepath.Base(path)
	}

	if fromStdin && (*runTUI || *runWatch) {
		fmt.Fprintln(os.Stderr, "pytable: stdin input cannot be combined with -tui or -watch; pass -file")
		os.Exit(1)
	}
	if *runDemo && *runWatch {
		fmt.Fprintln(os.Stderr, "pytable: nothing to watch with -demo")
		os.Exit(1)
	}

	// ---------------------------------------------------------------
	// Interactive viewer
	// ---------------------------------------------------------------

	if *runTUI {
		var changes <-chan struct{}
		if *runWatch {
			w, err := watch.New(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
				os.Exit(1)
			}
			defer w.Close()
			changes = bridgeChanges(w, logger)
		}
		if err := tui.RunWithReload(name, src, opts, changes); err != nil {
			fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width := renderWidth(*widthFlag)
	logger.Debug("render width resolved", slog.Int("width", width))

	// ---------------------------------------------------------------
	// Watch mode
	// ---------------------------------------------------------------

	if *runWatch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		w, err := watch.New(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()

		watchLoop(ctx, w, src, opts, width, logger)
		return
	}

	// ---------------------------------------------------------------
	// One-shot render
	// ---------------------------------------------------------------

	tbl, err := src(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
		os.Exit(1)
	}
	out, err := tbl.Render(width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pytable: %v\n", err)
		os.Exit(1)
	}
	if out != "" {
		fmt.Println(out)
	}
}

// colorEnabled decides whether rendered output carries ANSI styling. The
// -no-color flag wins, then the NO_COLOR variable (https://no-color.org/),
// then pipe detection: a redirected stdout gets plain text.
func colorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderWidth resolves the render budget: an explicit flag value wins, then
// the terminal size, then the COLUMNS variable. Zero means unconstrained.
func renderWidth(flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

// inferFormat resolves the input format from the -format flag, falling back
// to the file extension, then to yaml.
func inferFormat(format, path string) (string, error) {
	switch format {
	case "yaml", "csv":
		return format, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q (supported: yaml, csv)", format)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return "csv", nil
	}
	return "yaml", nil
}

// overrides carries layout flags the user set explicitly, so defaults never
// clobber a document's own layout fields.
type overrides struct {
	title, footer string
	border        string
	padding       int

	setTitle, setFooter, setBorder, setPadding bool
}

// options returns base with the explicitly-set layout flags applied.
func (o overrides) options(base table.Options) (table.Options, error) {
	if o.setTitle {
		base.Title = o.title
	}
	if o.setFooter {
		base.Footer = o.footer
	}
	if o.setPadding {
		base.Padding = o.padding
	}
	if o.setBorder {
		border, err := config.BorderFromSpec(o.border)
		if err != nil {
			return base, fmt.Errorf("border: %w", err)
		}
		base.Border = border
	}
	return base, nil
}

// apply pushes the explicitly-set flags into a loaded document, whose own
// layout fields otherwise win during Build. A border flag clears the
// document's border so the flag value flows in from the base options and
// the viewer can keep cycling presets.
func (o overrides) apply(doc *config.Document) {
	if o.setTitle {
		doc.Title = o.title
	}
	if o.setFooter {
		doc.Footer = o.footer
	}
	if o.setPadding {
		doc.Padding = o.padding
	}
	if o.setBorder {
		doc.Border = ""
	}
}

// fileSource builds a table source that re-reads path on every call, so
// watch-mode renders and viewer reloads pick up edits.
func fileSource(path, format string, ov overrides) tui.Source {
	if format == "csv" {
		return func(opts table.Options) (*table.Table, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()
			return table.LoadCSV(f, true, opts)
		}
	}
	return func(opts table.Options) (*table.Table, error) {
		doc, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		ov.apply(doc)
		return doc.Build(opts)
	}
}

// byteSource serves one captured input (stdin) on every call, so the viewer
// can still rebuild with different options.
func byteSource(data []byte, format string, ov overrides) tui.Source {
	if format == "csv" {
		return func(opts table.Options) (*table.Table, error) {
			return table.LoadCSV(bytes.NewReader(data), true, opts)
		}
	}
	return func(opts table.Options) (*table.Table, error) {
		doc, err := config.Parse(data)
		if err != nil {
			return nil, err
		}
		ov.apply(doc)
		return doc.Build(opts)
	}
}
