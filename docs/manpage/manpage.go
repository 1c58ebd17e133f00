// Package manpage generates a roff-formatted man page for pytable.
//
// The page is generated at runtime from the viewer's actual key bindings and
// the compiled-in version information, keeping documentation in sync with
// the code.
//
// Usage:
//
//	pytable -man | man -l -
//	pytable -man > ~/.local/share/man/man1/pytable.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"github.com/biswanathroul/pytable-formatter/tui"
)

// Generate produces a complete roff-formatted man(1) page for pytable.
// The version, commit, and date parameters are passed from the build-time
// linker variables so the man page always reflects the current build.
func Generate(version, commit, date string) string {
	var b strings.Builder

	writeHeader(&b, version)
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b)
	writeKeybindings(&b)
	writeDocumentFormat(&b)
	writeExamples(&b)
	writeEnvironment(&b)
	writeExitStatus(&b)
	writeSeeAlso(&b)
	writeAuthors(&b)
	writeBugs(&b)
	writeFooter(&b, version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeHeader(b *strings.Builder, version string) {
	month := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH PYTABLE 1 \"%s\" \"pytable %s\" \"User Commands\"\n", month, version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
pytable \- render YAML and CSV data as bordered terminal tables
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B pytable
[\fIOPTIONS\fR]
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B pytable
reads a YAML table document or a CSV file and renders it as an aligned,
bordered text table sized to the terminal. Documents control table layout
(title, footer, padding, width limits, border glyphs) and per\-cell
presentation (alignment, bold/italic/underline, foreground and background
color, column span). A cell can hold a whole nested table. Content wider
than its column wraps onto further lines; it is never truncated.
.PP
The tool operates in several modes:
.IP \(bu 2
.B One\-shot mode
(default): Renders the input once to stdout, sized to the terminal width.
.IP \(bu 2
.B Watch mode
(\fB\-watch\fR): Re\-renders the table whenever the input file changes.
.IP \(bu 2
.B Viewer mode
(\fB\-tui\fR): Opens the table in an interactive scrollable viewer with
border cycling, a color toggle, and reload on demand.
.IP \(bu 2
.B Demo mode
(\fB\-demo\fR): Renders a built\-in showcase table without an input file.
`)
}

func writeOptions(b *strings.Builder) {
	b.WriteString(`.SH OPTIONS
`)

	flags := []struct {
		flag string
		arg  string
		desc string
	}{
		{"file", "PATH", `Input file. An empty value or "\-" reads from stdin. Stdin input cannot be combined with \fB\-watch\fR or \fB\-tui\fR.`},
		{"format", "FORMAT", `Input format, one of: yaml, csv. By default the format is inferred from the file extension, falling back to yaml. CSV input treats the first record as the header row.`},
		{"width", "N", "Render width budget in terminal cells. 0 (default) auto\\-detects the terminal width; output to a pipe renders unconstrained."},
		{"border", "STYLE", "Border glyph set: unicode (default), rounded, ascii, or eleven space\\-separated glyphs in the order vertical, top\\-left, top\\-right, bottom\\-left, bottom\\-right, left junction, right junction, top junction, bottom junction, cross, horizontal."},
		{"padding", "N", "Spaces on each side of cell content. Default: 1."},
		{"title", "TEXT", "Title overlaid centered on the top border. Overrides the document's own title."},
		{"footer", "TEXT", "Footer overlaid centered on the bottom border. Overrides the document's own footer."},
		{"no\\-color", "", "Disable ANSI styling even when stdout is a terminal."},
		{"tui", "", "Open the table in the interactive viewer instead of printing it."},
		{"watch", "", "Re\\-render whenever the input file changes. Combined with \\fB\\-tui\\fR, file changes reload the viewer in place."},
		{"demo", "", "Render a built\\-in showcase table (mixed value kinds, styling, a spanning row, a nested table) and exit."},
		{"verbose", "", "Enable debug\\-level logging to stderr."},
		{"version", "", "Print the version, commit hash, and build date, then exit."},
		{"man", "", "Print this man page to stdout in roff format. Pipe to man(1) for formatted viewing: \\fBpytable \\-man | man \\-l \\-\\fR."},
	}

	for _, f := range flags {
		b.WriteString(".TP\n")
		if f.arg != "" {
			fmt.Fprintf(b, ".BR \\-%s \" \\fI%s\\fR\"\n", f.flag, f.arg)
		} else {
			fmt.Fprintf(b, ".B \\-%s\n", f.flag)
		}
		b.WriteString(f.desc + "\n")
	}
}

func writeKeybindings(b *strings.Builder) {
	b.WriteString(`.SH KEYBINDINGS
Keys active in the interactive viewer (\fB\-tui\fR):
`)

	for _, bind := range tui.Bindings() {
		keysStr := strings.Join(bind.Keys(), ", ")
		fmt.Fprintf(b, ".TP\n.B %s\n%s\n", roffEscape(keysStr), bind.Help().Desc)
	}
}

func writeDocumentFormat(b *strings.Builder) {
	b.WriteString(`.SH DOCUMENT FORMAT
A YAML document describes one table:
.PP
.nf
title: Fleet
padding: 1
border: rounded
headers: [Name, Region, Requests]
rows:
  \- [api\-gateway, us\-east\-1, 1284902]
  \- \- value: all regions nominal
      span: 3
      align: center
      style: [bold]
      fg: green
.fi
.PP
Top\-level fields:
.TP
.B title
Text overlaid centered on the top border.
.TP
.B footer
Text overlaid centered on the bottom border.
.TP
.B padding
Spaces on each side of cell content. Default: 1.
.TP
.B min_width
Smallest total rendered width; columns grow evenly to reach it.
.TP
.B max_width
Largest total rendered width; columns shrink and content wraps to fit.
.TP
.B border
Preset name (unicode, rounded, ascii) or an eleven\-glyph set as for
\fB\-border\fR. When omitted, the border chosen on the command line applies.
.TP
.B headers
Optional header row. Headers fix the table's column count.
.TP
.B rows
Body rows in display order. Rows shorter than the column count are padded
with blank cells.
.PP
Each cell is a plain scalar or a mapping with the fields:
.TP
.B value
The cell's display text.
.TP
.B align
left (default), right, or center.
.TP
.B style
List drawn from: bold, italic, underline.
.TP
.B fg, bg
Foreground and background color names: black, red, green, yellow, blue,
magenta, cyan, white, or their bright\- variants.
.TP
.B span
Number of columns the cell covers. A row's spans must not sum to more than
the table's column count.
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
Render a document:
.PP
.nf
pytable \-file fleet.yaml
.fi
.PP
Render a CSV file with an ASCII border and a title:
.PP
.nf
pytable \-file parts.csv \-border ascii \-title Parts
.fi
.PP
Render from stdin:
.PP
.nf
cat fleet.yaml | pytable
.fi
.PP
Re\-render on every save:
.PP
.nf
pytable \-file fleet.yaml \-watch
.fi
.PP
Open the viewer and keep it in sync with the file:
.PP
.nf
pytable \-file fleet.yaml \-tui \-watch
.fi
.PP
Try the renderer without an input file:
.PP
.nf
pytable \-demo
.fi
.PP
View this man page:
.PP
.nf
pytable \-man | man \-l \-
.fi
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(`.SH ENVIRONMENT
.TP
.B NO_COLOR
Disables ANSI styling when set to any value, per <https://no\-color.org/>.
.TP
.B COLUMNS
Fallback render width when the terminal size cannot be queried.
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(".SH EXIT STATUS\n")
	b.WriteString(".TP\n.B 0\n")
	b.WriteString("Success.\n")
	b.WriteString(".TP\n.B 1\n")
	b.WriteString("Input, validation, or render failure.\n")
	b.WriteString(".TP\n.B 2\n")
	b.WriteString("Usage error.\n")
}

func writeSeeAlso(b *strings.Builder) {
	b.WriteString(`.SH SEE ALSO
.BR column (1),
.BR man (1)
`)
}

func writeAuthors(b *strings.Builder) {
	b.WriteString(`.SH AUTHORS
Biswanath Roul <https://github.com/biswanathroul>
`)
}

func writeBugs(b *strings.Builder) {
	b.WriteString(`.SH BUGS
Report bugs at <https://github.com/biswanathroul/pytable\-formatter/issues>.
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, ".SH VERSION\n%s (%s) built %s\n", version, commit, date)
}
