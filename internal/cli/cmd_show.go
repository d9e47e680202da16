package cli

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"rakta/internal/fs"
	"rakta/internal/tree"
)

const showHelp = `  show <id>              Print one person record`

func cmdShow(o *IO, fsys fs.FS, treePath string, args []string) error {
	if hasHelpFlag(args) {
		o.Println("Usage: rakta show <id>")
		o.Println("")
		o.Println("Print the first person whose ID matches.")

		return nil
	}

	flagSet := flag.NewFlagSet("show", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	parseErr := flagSet.Parse(args)
	if parseErr != nil {
		return parseErr
	}

	if flagSet.NArg() == 0 {
		return errIDRequired
	}

	id := flagSet.Arg(0)

	doc, _, err := tree.Load(fsys, treePath)
	if err != nil {
		return err
	}

	person, ok := doc.FindByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", tree.ErrPersonNotFound, id)
	}

	alive := "no"
	if person.Alive {
		alive = "yes"
	}

	o.Printf("id:             %s\n", person.ID)
	o.Printf("name:           %s\n", person.FullName())
	o.Printf("alive:          %s\n", alive)
	o.Printf("gender:         %s\n", person.Gender)
	o.Printf("parents:        %s\n", strings.Join(person.Parents, ", "))
	o.Printf("spouses:        %s\n", strings.Join(person.Spouses, ", "))
	o.Printf("children:       %s\n", strings.Join(person.Children, ", "))
	o.Printf("birth family:   %s\n", person.BirthFamilyID)
	o.Printf("current family: %s\n", person.CurrentFamilyID)

	return nil
}
