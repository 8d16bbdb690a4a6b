package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pact/internal/diag"
	"pact/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	noteColor    = color.New(color.FgBlue)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	if d.Primary == (source.Span{}) {
		// I/O и прочие диагностики без привязки к месту в файле.
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}

	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := f.FormatPath(opts.PathMode.formatMode(), fs.BaseDir())

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, d.Code.ID(), d.Message)
	writeSourceContext(w, f, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			writeNote(w, note, fs, opts)
		}
	}
}

// writeSourceContext печатает строку исходника и подчёркивание ^~~~ под span.
// Многострочный span подчёркивается до конца первой строки.
func writeSourceContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		width = len(line) - int(start.Col) + 1
	}
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}

	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), underline)
}

func writeNote(w io.Writer, note diag.Note, fs *source.FileSet, opts PrettyOpts) {
	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	if note.Span == (source.Span{}) {
		fmt.Fprintf(w, "  %s: %s\n", label, note.Msg)
		return
	}
	f := fs.Get(note.Span.File)
	start, _ := fs.Resolve(note.Span)
	path := f.FormatPath(opts.PathMode.formatMode(), fs.BaseDir())
	fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", label, path, start.Line, start.Col, note.Msg)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
