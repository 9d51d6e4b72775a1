package seeder

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints one status line per seed record.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{w: w}
}

func (r *Reporter) Report(result Result) {
	line := fmt.Sprintf("[%s] %s: %s", result.Kind, result.Subject, result.Message)
	if result.Kind == OutcomeUnparseable {
		line += " (unparseable)"
	}
	fmt.Fprintln(r.w, line)
}

func (r *Reporter) Section(title string) {
	fmt.Fprintf(r.w, "\n== %s ==\n", title)
}

func (r *Reporter) Summary(s *Summary) {
	fmt.Fprintf(r.w, "\n%d succeeded, %d already existed, %d failed\n",
		s.Success, s.Warning, s.Error+s.Unparseable)
}
