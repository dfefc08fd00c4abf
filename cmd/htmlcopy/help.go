package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlcopy <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  apply      Rewrite HTML or Markdown for a copy target")
	fmt.Fprintln(w, "  targets    List the configured copy targets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'htmlcopy help <command>' for details on a specific command.")
}

// printApplyUsage prints usage for the apply command.
func printApplyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlcopy apply -t <target> [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite HTML for pasting into the target's destination.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML/Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Target:")
	fmt.Fprintln(w, "  -t, --target <name>       Copy target (env: HTMLCOPY_TARGET)")
	fmt.Fprintln(w, "      --target-set <name>   Target preset (default: default)")
	fmt.Fprintln(w, "      --palette <name>      Color palette for action c")
	fmt.Fprintln(w, "      --sanitize            Strip scripts and unsafe attributes first")
	fmt.Fprintln(w, "      --highlight <style>   Chroma style for Markdown code blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "                            (default: stdout for one file, name.copy.html otherwise)")
	fmt.Fprintln(w, "  -b, --base-url <url>      Base URL or directory for relative images")
	fmt.Fprintln(w, "                            (default: each input's directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom palettes/ and targets/ directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug diagnostics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  htmlcopy apply -t Evernote note.html")
	fmt.Fprintln(w, "  htmlcopy apply -t \"Microsoft Word\" -o out/ notes/")
	fmt.Fprintln(w, "  pbpaste | htmlcopy apply -t OneNote -")
}

// printTargetsUsage prints usage for the targets command.
func printTargetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlcopy targets [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the valid copy targets in definition order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --yaml                Print the resolved target set as YAML")
	fmt.Fprintln(w, "      --palettes            List available palettes instead")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --target-set <name>   Target preset (default: default)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom palettes/ and targets/ directory")
}
