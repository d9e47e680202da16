package cli

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"rakta/internal/fs"
	"rakta/internal/tree"
)

const addHelp = `  add [flags]            Append a person and sync relationship links
    --id                   Person ID
    --first-name           First name
    --last-name            Last name
    --alive                yes|no
    --gender               Gender
    --parents              Parent IDs, comma-separated
    --spouses              Spouse IDs, comma-separated
    --children             Child IDs, comma-separated
    --birth-family         Birth family ID
    --current-family       Current family ID`

// cmdAdd appends one person to the tree. Every field can come from a flag;
// fields without a flag are collected interactively, in a fixed order. All
// fields are collected before any back-links are written, so the new
// record's own relationship lists reflect exactly what was entered.
//
//nolint:funlen // sequential field collection mirrors the prompt transcript
func cmdAdd(o *IO, prompter Prompter, fsys fs.FS, treePath string, args []string) error {
	defer func() { _ = prompter.Close() }()

	if hasHelpFlag(args) {
		o.Println("Usage: rakta add [flags]")
		o.Println("")
		o.Println("Append a person record to the family tree and update")
		o.Println("relationship links on people the record references.")
		o.Println("Fields not supplied as flags are prompted for.")

		return nil
	}

	flagSet := flag.NewFlagSet("add", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard) // We handle errors ourselves

	id := flagSet.String("id", "", "Person ID")
	firstName := flagSet.String("first-name", "", "First name")
	lastName := flagSet.String("last-name", "", "Last name")
	alive := flagSet.String("alive", "", "yes|no")
	gender := flagSet.String("gender", "", "Gender")
	parents := flagSet.String("parents", "", "Parent IDs, comma-separated")
	spouses := flagSet.String("spouses", "", "Spouse IDs, comma-separated")
	children := flagSet.String("children", "", "Child IDs, comma-separated")
	birthFamily := flagSet.String("birth-family", "", "Birth family ID")
	currentFamily := flagSet.String("current-family", "", "Current family ID")

	parseErr := flagSet.Parse(args)
	if parseErr != nil {
		return parseErr
	}

	doc, created, err := tree.Load(fsys, treePath)
	if err != nil {
		return err
	}

	if created {
		o.Printf("File %q not found. A new file will be created.\n", treePath)
	}

	// ask prompts for a field unless its flag was given.
	ask := func(flagName, label string, dst *string) error {
		if flagSet.Changed(flagName) {
			return nil
		}

		answer, promptErr := prompter.Prompt(label)
		if promptErr != nil {
			if errors.Is(promptErr, io.EOF) {
				return errInputEnded
			}

			return promptErr
		}

		*dst = answer

		return nil
	}

	fields := []struct {
		flagName string
		label    string
		dst      *string
	}{
		{"id", "Enter new person's ID (e.g., 'JohnDoe'): ", id},
		{"first-name", "Enter new person's first name: ", firstName},
		{"last-name", "Enter new person's last name: ", lastName},
		{"alive", "Is the person alive? (yes/no): ", alive},
		{"gender", "Enter new person's gender (male/female): ", gender},
		{"parents", "Enter parent IDs, separated by commas (leave blank if none): ", parents},
		{"spouses", "Enter spouse IDs, separated by commas (leave blank if none): ", spouses},
		{"children", "Enter child IDs, separated by commas (leave blank if none): ", children},
		{"birth-family", "Enter birth family ID (e.g., 'familyPandya'): ", birthFamily},
		{"current-family", "Enter current family ID (e.g., 'familyPandya'): ", currentFamily},
	}

	for _, field := range fields {
		askErr := ask(field.flagName, field.label, field.dst)
		if askErr != nil {
			return askErr
		}
	}

	person := tree.Person{
		ID:              *id,
		FirstName:       *firstName,
		LastName:        *lastName,
		Alive:           tree.ParseAlive(*alive),
		Gender:          *gender,
		Parents:         tree.SplitIDs(*parents),
		Spouses:         tree.SplitIDs(*spouses),
		Children:        tree.SplitIDs(*children),
		BirthFamilyID:   *birthFamily,
		CurrentFamilyID: *currentFamily,
	}

	// Back-links only reach people already in the document; the new person
	// is appended afterwards so a self-reference never links to itself.
	doc.Link(person)
	doc.Append(person)

	o.Printf("\nAdded '%s' to the family tree.\n", person.FullName())

	saveErr := tree.Save(fsys, treePath, doc)
	if saveErr != nil {
		return saveErr
	}

	o.Printf("Family tree data saved to %q.\n", treePath)

	return nil
}
