package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
pydocmd extracts the inline documentation of Python source files into simple
Markdown documents, one per module. It reads the docstrings of modules,
classes, functions, and methods straight from the source text, so the code is
never imported or executed.

Point it at a single file or at a directory of *.py files (optionally
recursive); each module ends up as <dotted.name>.md under the output
directory. Besides the extraction itself the CLI ships with:

  • Rich, structured help text and version info (` + "`pydocmd --help`" + `, ` + "`pydocmd --version`" + `)
  • Shell completion generation for bash, zsh, fish, and PowerShell
  • A gen-docs helper that can emit Markdown reference docs for the CLI itself
  • An optional HTML output mode (--format html)
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{}
	cmd := &cobra.Command{
		Use:           "pydocmd [flags]",
		Short:         "Extract Python docstrings into Markdown files",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outputDir, "output-dir", "o", "./", "the directory to output generated files")
	flags.BoolVarP(&app.opts.recursive, "recursive", "r", false, "search in the input directory recursively")
	flags.StringVar(&app.opts.inputDir, "input-dir", "", "the directory to search *.py files to extract documentation from")
	flags.StringVarP(&app.opts.file, "file", "f", "", "the file to extract documentation from")
	flags.StringVar(&app.opts.format, "format", "markdown", "output format: markdown or html")
	cmd.MarkFlagsMutuallyExclusive("input-dir", "file")
	cmd.MarkFlagsOneRequired("input-dir", "file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute()
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for pydocmd.

The output should be evaluated by your shell. For example:

  # bash
  pydocmd completion bash > /usr/local/etc/bash_completion.d/pydocmd

  # zsh
  pydocmd completion zsh > "${fpath[1]}/_pydocmd"

  # fish
  pydocmd completion fish | source

  # PowerShell
  pydocmd completion powershell | Out-String | Invoke-Expression
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
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  pydocmd gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
