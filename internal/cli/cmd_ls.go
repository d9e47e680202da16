package cli

import (
	"io"

	flag "github.com/spf13/pflag"

	"rakta/internal/fs"
	"rakta/internal/tree"
)

const lsHelp = `  ls [--alive]           List people in the tree`

func cmdLs(o *IO, fsys fs.FS, treePath string, args []string) error {
	if hasHelpFlag(args) {
		o.Println("Usage: rakta ls [--alive]")
		o.Println("")
		o.Println("List people in the tree, one per line.")
		o.Println("")
		o.Println("Flags:")
		o.Println("  --alive    Only list living people")

		return nil
	}

	flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	aliveOnly := flagSet.Bool("alive", false, "Only list living people")

	parseErr := flagSet.Parse(args)
	if parseErr != nil {
		return parseErr
	}

	// A missing tree file lists nothing; that is not an error.
	doc, _, err := tree.Load(fsys, treePath)
	if err != nil {
		return err
	}

	for _, person := range doc.People {
		if *aliveOnly && !person.Alive {
			continue
		}

		marker := ""
		if !person.Alive {
			marker = " (deceased)"
		}

		o.Printf("%-16s %s%s\n", person.ID, person.FullName(), marker)
	}

	return nil
}
