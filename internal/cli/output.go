package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// formatter applies a semantic color, or a plain prefix and suffix when
// colors are disabled.
type formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func (f formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// noColor honours NO_COLOR (https://no-color.org/) and fatih/color's own
// terminal detection.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	successText   = formatter{color.New(color.FgGreen), "", ""}
	errorText     = formatter{color.New(color.FgRed), "", ""}
	warningText   = formatter{color.New(color.FgYellow), "", ""}
	infoText      = formatter{color.New(color.FgCyan), "", ""}
	highlightText = formatter{color.New(color.FgCyan), "'", "'"}
	mutedText     = formatter{color.New(color.FgHiBlack), "(", ")"}
)

// startSpinner shows message with a spinner on w until the returned cleanup
// is called. Nothing is drawn when w is not a terminal.
func startSpinner(w io.Writer, message string) func() {
	f, ok := w.(*os.File)
	if !ok {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()

	return s.Stop
}
