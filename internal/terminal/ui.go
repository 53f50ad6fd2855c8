package terminal

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AskOne(prompt survey.Prompt, answer interface{}) error
	Print(logs ...Log)
	OpenBrowser(url string) error
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	DisableColors bool
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	color.NoColor = config.DisableColors

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	config UIConfig
	in     io.Reader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) AskOne(prompt survey.Prompt, answer interface{}) error {
	stdio := ui.toStdio()
	opts := survey.WithStdio(stdio.In, stdio.Out, stdio.Err)
	return survey.AskOne(prompt, answer, opts, survey.WithValidator(survey.Required))
}

func (ui *ui) Print(logs ...Log) {
	for _, log := range logs {
		switch log.Level {
		case LogLevelWarn:
			fmt.Fprintln(ui.err, color.YellowString("warning:"), log.Message)
		case LogLevelError:
			fmt.Fprintln(ui.err, color.RedString("error:"), log.Message)
		default:
			fmt.Fprintln(ui.err, log.Message)
		}
	}
}

func (ui *ui) OpenBrowser(url string) error {
	return openBrowser(url)
}

func (ui *ui) toStdio() terminal.Stdio {
	in, inOK := ui.in.(terminal.FileReader)
	if !inOK {
		in = noopFdReader{ui.in}
	}
	out, outOK := ui.err.(terminal.FileWriter)
	if !outOK {
		out = noopFdWriter{ui.err}
	}
	return terminal.Stdio{
		In:  in,
		Out: out,
		Err: ui.err,
	}
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (r noopFdWriter) Fd() uintptr {
	return 0
}
