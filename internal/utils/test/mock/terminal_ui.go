package mock

import (
	"bytes"
	"io"

	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

// UIOptions are the options to configure the mock terminal UI
type UIOptions struct {
	UseColors     bool
	OpenBrowserFn func(url string) error
	AskOneFn      func(prompt survey.Prompt, answer interface{}) error
}

type ui struct {
	terminal.UI
	openBrowserFn func(url string) error
	askOneFn      func(prompt survey.Prompt, answer interface{}) error
}

func (ui ui) OpenBrowser(url string) error {
	if ui.openBrowserFn == nil {
		return ui.UI.OpenBrowser(url)
	}
	return ui.openBrowserFn(url)
}

func (ui ui) AskOne(prompt survey.Prompt, answer interface{}) error {
	if ui.askOneFn == nil {
		return ui.UI.AskOne(prompt, answer)
	}
	return ui.askOneFn(prompt, answer)
}

// NewUI returns a new *bytes.Buffer and a mock terminal UI that writes to the buffer
func NewUI() (*bytes.Buffer, terminal.UI) {
	out := new(bytes.Buffer)
	return out, NewUIWithOptions(UIOptions{}, out)
}

// NewUIWithOptions creates a new mock terminal UI based on the provided options
func NewUIWithOptions(options UIOptions, writer io.Writer) terminal.UI {
	return ui{
		terminal.NewUI(
			terminal.UIConfig{DisableColors: !options.UseColors},
			nil,
			writer,
			writer,
		),
		options.OpenBrowserFn,
		options.AskOneFn,
	}
}
