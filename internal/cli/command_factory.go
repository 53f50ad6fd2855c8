package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli/feedback"
	"github.com/eddmann/strava-cli/internal/cloud/strava"
	"github.com/eddmann/strava-cli/internal/output"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// set of supported global CLI flags
const (
	flagProfile      = "profile"
	flagProfileUsage = `specify the profile to use (default value: "default")`

	flagConfig      = "config"
	flagConfigUsage = "specify the config file path"

	flagFormat      = "format"
	flagFormatUsage = "specify the output format (json, jsonl, csv, tsv, human)"

	flagFields      = "fields"
	flagFieldsUsage = "comma-separated list of fields to include in output"

	flagNoHeader      = "no-header"
	flagNoHeaderUsage = "omit the header row in csv/tsv output"

	flagDisableColors      = "disable-colors"
	flagDisableColorsUsage = "disable color output"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile  *Profile
	ui       terminal.UI
	uiConfig terminal.UIConfig

	profileName string
	configPath  string
	format      output.Format
	fields      string
	noHeader    bool

	baseURL   string
	inReader  io.Reader
	outWriter io.Writer
	errWriter io.Writer
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() *CommandFactory {
	return &CommandFactory{
		baseURL:   strava.DefaultBaseURL,
		inReader:  os.Stdin,
		outWriter: os.Stdout,
		errWriter: os.Stderr,
	}
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures CLI help text displays global flags unsorted

	fs.StringVarP(&factory.profileName, flagProfile, "p", "", flagProfileUsage)
	fs.StringVarP(&factory.configPath, flagConfig, "c", "", flagConfigUsage)
	fs.VarP(&factory.format, flagFormat, "f", flagFormatUsage)
	fs.StringVar(&factory.fields, flagFields, "", flagFieldsUsage)
	fs.BoolVar(&factory.noHeader, flagNoHeader, false, flagNoHeaderUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, flagDisableColors, false, flagDisableColorsUsage)
}

// Setup initializes the command factory once flags have been parsed,
// resolving flag < environment < config precedence and loading the config
func (factory *CommandFactory) Setup() error {
	factory.ensureUI()

	if factory.profileName == "" {
		factory.profileName = os.Getenv(EnvProfile)
	}
	if factory.profileName == "" {
		factory.profileName = DefaultProfile
	}

	path := factory.configPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		defaultPath, err := defaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = defaultPath
	}

	factory.profile = NewProfile(factory.profileName, path)
	if err := factory.profile.Load(); err != nil {
		return err
	}

	if factory.format == "" {
		if env := os.Getenv(EnvFormat); env != "" {
			if err := factory.format.Set(env); err != nil {
				return fmt.Errorf("invalid %s value: %w", EnvFormat, err)
			}
		} else if err := factory.format.Set(factory.profile.DefaultFormat()); err != nil {
			return feedback.NewConfigErr(err)
		}
	}

	return nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
		Args:    command.Args,
	}

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {
		if flagger, ok := command.Command.(CommandFlagger); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			flagger.Flags(fs)
		}

		cmd.RunE = func(c *cobra.Command, args []string) error {
			manager := auth.NewManager(factory.profile)
			session := auth.NewSession(manager)

			clients := Clients{
				Strava: strava.NewClient(factory.baseURL, session),
				Auth:   manager,
				Render: factory.render,
			}

			return command.Command.Handler(c.Context(), factory.profile, factory.ui, clients, args)
		}
	}

	return &cmd
}

// Run executes the command, mapping any error to its exit code. This is
// the one place an error kind becomes an exit code and a user-facing
// message; nothing below the boundary prints and swallows.
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		factory.ensureUI()

		logs := []terminal.Log{terminal.NewErrorLog(err)}
		logs = append(logs, terminal.NewFollowupLog(feedback.Suggestions(err)...)...)
		factory.ui.Print(logs...)

		return feedback.ExitCode(err)
	}
	return feedback.ExitCodeSuccess
}

func (factory *CommandFactory) render(v output.Value) error {
	return output.Render(factory.outWriter, v, output.Options{
		Format:   factory.format,
		Fields:   factory.fieldList(),
		NoHeader: factory.noHeader,
	})
}

func (factory *CommandFactory) fieldList() []string {
	if factory.fields == "" {
		return nil
	}

	var fields []string
	for _, field := range strings.Split(factory.fields, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

func (factory *CommandFactory) ensureUI() {
	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}
