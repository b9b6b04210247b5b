// # pydocmd
//
// `pydocmd` scans Python source files and extracts their inline documentation
// into simple Markdown files, one per module. It parses the source text with
// tree-sitter, so modules are never imported or executed and broken code
// cannot take the extraction down with it.
//
// Key capabilities:
//
//   - extract the docstrings of modules, classes, functions, and methods,
//     stripped of their quote delimiters and de-indented.
//   - process a single file (`-f`) or every `*.py` file in a directory
//     (`--input-dir`, `-id` for short), optionally recursing (`-r`) with
//     dotted document names (`pkg.mod.md` for `pkg/mod.py`).
//   - write one Markdown document per module under the output directory
//     (`-o`, default `./`), or standalone HTML pages via `--format html`.
//   - ship a Cobra-powered CLI with rich `--help`, `--version`, shell
//     completion, and a `gen-docs` helper for publishing the CLI reference.
//
// ## Usage
//
//	pydocmd [flags]
//
// Examples:
//
//   - Extract a single module into the current directory:
//
//     pydocmd -f mypackage/calculator.py
//
//   - Extract a whole source tree into a docs folder:
//
//     pydocmd --input-dir ./src -r -o ./docs
//
//   - Same, but as browsable HTML:
//
//     pydocmd --input-dir ./src -r -o ./docs --format html
//
// ## Supported Flags
//
//   - `-o DIR`: directory to write generated files to (created if absent).
//   - `-r`: search the input directory recursively.
//   - `--input-dir DIR`: directory to search for `*.py` files. Mutually
//     exclusive with `-f`; exactly one of the two is required.
//   - `-f FILE`: single file to extract documentation from.
//   - `--format markdown|html`: output format (default `markdown`).
//
// ## Output Layout
//
// Every module becomes one document headed by the dotted module name,
// followed by the module docstring and a section per declaration:
//
//	# pkg.calculator
//
//	Simple calculator helpers.
//
//	## Class Calculator
//	Accumulating calculator.
//
//	### Method add
//	Adds an amount to the accumulator.
//
//	## Function add(a, b)
//	Adds two numbers.
//
// Declarations without a docstring still get their section heading, so the
// generated document doubles as an outline of the module.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	pydocmd completion bash        # bash
//	pydocmd completion zsh         # zsh
//	pydocmd completion fish | source
//	pydocmd completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `pydocmd` can generate Markdown for each CLI command via `gen-docs`:
//
//	pydocmd gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
