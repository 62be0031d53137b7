package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	autodoc "github.com/agentflare-ai/go-autodoc"
	"github.com/agentflare-ai/go-autodoc/internal/mdcheck"
)

// Version is stamped at build time.
var Version = "dev"

const rootLongDesc = `
go-autodoc keeps curated API reference pages in sync with source code.

A YAML config maps markdown pages to lists of fully-qualified symbol names.
go-autodoc resolves each symbol, renders its signature and docstring as
markdown, and splices the result into your template files at {{autogenerated}}
(or custom named) insertion tags. Symbols resolve either from Go packages
directly or from a pre-extracted symbol table.
`

type cliApp struct {
	stdout     io.Writer
	configPath string
	verbose    bool
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "go-autodoc",
		Short:         "Generate API reference pages from a symbol manifest",
		Long:          strings.TrimSpace(rootLongDesc),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVarP(&app.configPath, "config", "c", "autodoc.yaml", "path to the manifest config file")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

// logger builds the CLI logger: human-readable console output on stderr.
func (app *cliApp) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if app.verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func newGenerateCmd(app *cliApp) *cobra.Command {
	var runCheck bool
	cmd := &cobra.Command{
		Use:           "generate <destination>",
		Short:         "Wipe the destination and regenerate every page",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&runCheck, "check", false, "verify the generated markdown afterwards")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dest := args[0]
		opts, err := loadConfig(app.configPath)
		if err != nil {
			return err
		}
		opts = append(opts, autodoc.WithLogger(app.logger()))
		gen, err := autodoc.New(opts...)
		if err != nil {
			return err
		}
		if err := gen.Generate(cmd.Context(), dest); err != nil {
			return err
		}
		if runCheck {
			return reportIssues(app.stdout, dest)
		}
		return nil
	}
	return cmd
}

func newCheckCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check <directory>",
		Short:         "Verify generated markdown for unfilled tags and broken links",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return reportIssues(app.stdout, args[0])
	}
	return cmd
}

func reportIssues(stdout io.Writer, dir string) error {
	issues, err := mdcheck.CheckDir(dir)
	if err != nil {
		return err
	}
	for _, issue := range issues {
		fmt.Fprintln(stdout, issue)
	}
	if len(issues) > 0 {
		return fmt.Errorf("%d issue(s) found in %s", len(issues), dir)
	}
	return nil
}

func newPreviewCmd(app *cliApp) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:           "preview <file>",
		Short:         "Render a generated page in the terminal",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().IntVar(&width, "width", 100, "wrap width for terminal rendering")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return err
		}
		out, err := renderer.Render(string(data))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(app.stdout, out)
		return err
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for go-autodoc.

The output should be evaluated by your shell. For example:

  # bash
  go-autodoc completion bash > /usr/local/etc/bash_completion.d/go-autodoc

  # zsh
  go-autodoc completion zsh > "${fpath[1]}/_go-autodoc"

  # fish
  go-autodoc completion fish | source

  # PowerShell
  go-autodoc completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gen-docs <directory>",
		Short:         "Generate Markdown reference docs for the CLI",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(args[0], 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, args[0])
	}
	return cmd
}
