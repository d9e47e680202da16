package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rakta/internal/fs"
	"rakta/internal/tree"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
//
// in is the source of interactive answers. A nil in means stdin is a real
// terminal and commands that prompt should use the liner-backed prompter.
func Run(in io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) < minArgs {
		printUsage(out)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Default workDir to current directory
	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			fprintln(errOut, "error: cannot get working directory:", err)

			return 1
		}
	}

	cfg, sources, err := tree.LoadConfig(workDir, flags.configPath, flags.treePath, flags.hasTreeOverride, env)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Resolve tree file to an absolute path
	treePath := cfg.TreePath
	if !filepath.IsAbs(treePath) {
		treePath = filepath.Join(workDir, treePath)
	}

	if len(flags.remaining) == 0 {
		printUsage(out)

		return 0
	}

	cmd := flags.remaining[0]
	cmdArgs := flags.remaining[1:]

	if cmd == "-h" || cmd == helpFlag {
		printUsage(out)

		return 0
	}

	ioCtx := NewIO(out, errOut)
	fsys := fs.NewReal()

	var cmdErr error

	switch cmd {
	case "add":
		cmdErr = cmdAdd(ioCtx, newPrompter(in, out), fsys, treePath, cmdArgs)
	case "show":
		cmdErr = cmdShow(ioCtx, fsys, treePath, cmdArgs)
	case "ls":
		cmdErr = cmdLs(ioCtx, fsys, treePath, cmdArgs)
	case "print-config":
		cmdErr = cmdPrintConfig(ioCtx, cfg, sources)
	default:
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, cmd))
		printUsage(errOut)

		return 1
	}

	if cmdErr != nil {
		fprintln(errOut, "error:", cmdErr)

		return 1
	}

	return 0
}

// newPrompter picks the prompter implementation: liner on a terminal,
// plain reader otherwise.
func newPrompter(in io.Reader, out io.Writer) Prompter {
	if in == nil {
		return NewLinerPrompter()
	}

	return NewReaderPrompter(in, out)
}

type globalFlags struct {
	workDir         string
	configPath      string
	treePath        string
	hasTreeOverride bool
	remaining       []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// --tree flag
	if arg == "--tree" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.treePath = args[idx+1]
		flags.hasTreeOverride = true

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--tree="); ok {
		flags.treePath = after
		flags.hasTreeOverride = true

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", errUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func cmdPrintConfig(o *IO, cfg tree.Config, sources tree.ConfigSources) error {
	formatted, err := tree.FormatConfig(cfg)
	if err != nil {
		return err
	}

	o.Println(formatted)

	o.Println("")
	o.Println("# Sources:")

	if sources.Global != "" {
		o.Println("#   global:", sources.Global)
	}

	if sources.Project != "" {
		o.Println("#   project:", sources.Project)
	}

	if sources.Global == "" && sources.Project == "" {
		o.Println("#   (using defaults only)")
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printUsage(writer io.Writer) {
	fprintln(writer, `rakta - family tree record tool

Usage: rakta [options] <command> [args]

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file
  --tree <file>      Use specified tree file

Commands:`)
	fprintln(writer, addHelp)
	fprintln(writer, showHelp)
	fprintln(writer, lsHelp)
	fprintln(writer, `  print-config           Show resolved configuration`)
}
