package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rakta/internal/tree"
)

// transcript joins prompt answers in the order the add command asks:
// id, first, last, alive, gender, parents, spouses, children,
// birth family, current family.
func transcript(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func readTree(t *testing.T, dir string) tree.Document {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, "family_tree.json"))
	if err != nil {
		t.Fatalf("reading tree file: %v", err)
	}

	var doc tree.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing tree file: %v", err)
	}

	return doc
}

func seedTree(t *testing.T, dir string, doc tree.Document) {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("encoding seed tree: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "family_tree.json"), data, 0o600); err != nil {
		t.Fatalf("writing seed tree: %v", err)
	}
}

func seedPerson(id string) tree.Person {
	return tree.Person{
		ID:       id,
		Parents:  []string{},
		Spouses:  []string{},
		Children: []string{},
	}
}

func TestAddFreshFile(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)

	input := transcript("B", "Jane", "Doe", "yes", "female", "", "", "", "famX", "famX")

	stdout, stderr, code := cli.RunWithInput(input, "add")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	if !strings.Contains(stdout, "A new file will be created") {
		t.Errorf("missing new-file notice in output:\n%s", stdout)
	}

	if !strings.Contains(stdout, "Added 'Jane Doe' to the family tree.") {
		t.Errorf("missing added notice in output:\n%s", stdout)
	}

	doc := readTree(t, cli.Dir)
	if len(doc.People) != 1 {
		t.Fatalf("people count = %d, want 1", len(doc.People))
	}

	got := doc.People[0]
	if got.ID != "B" || got.FirstName != "Jane" || got.LastName != "Doe" {
		t.Errorf("unexpected person: %+v", got)
	}

	if !got.Alive {
		t.Error("alive = false, want true")
	}

	if len(got.Parents) != 0 || len(got.Spouses) != 0 || len(got.Children) != 0 {
		t.Errorf("relationship lists not empty: %+v", got)
	}

	if got.BirthFamilyID != "famX" || got.CurrentFamilyID != "famX" {
		t.Errorf("family ids = %q/%q, want famX/famX", got.BirthFamilyID, got.CurrentFamilyID)
	}
}

func TestAddBackLinksExistingParent(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)
	seedTree(t, cli.Dir, tree.Document{People: []tree.Person{seedPerson("A")}})

	input := transcript("B", "Jane", "Doe", "no", "female", "A", "", "", "fam", "fam")

	_, stderr, code := cli.RunWithInput(input, "add")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	doc := readTree(t, cli.Dir)
	if len(doc.People) != 2 {
		t.Fatalf("people count = %d, want 2", len(doc.People))
	}

	children := doc.People[0].Children
	if len(children) != 1 || children[0] != "B" {
		t.Errorf("A.children = %v, want [B]", children)
	}

	if got := doc.People[1].Parents; len(got) != 1 || got[0] != "A" {
		t.Errorf("B.parents = %v, want [A]", got)
	}
}

func TestAddBackLinkNoDuplicateWithinOneRun(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)

	parent := seedPerson("A")
	parent.Children = []string{"B"}
	seedTree(t, cli.Dir, tree.Document{People: []tree.Person{parent}})

	input := transcript("B", "Jane", "Doe", "no", "female", "A", "", "", "fam", "fam")

	_, stderr, code := cli.RunWithInput(input, "add")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	doc := readTree(t, cli.Dir)
	if got := doc.People[0].Children; len(got) != 1 || got[0] != "B" {
		t.Errorf("A.children = %v, want [B] exactly once", got)
	}
}

func TestAddUnmatchedParentIDKeptVerbatim(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)
	seedTree(t, cli.Dir, tree.Document{People: []tree.Person{seedPerson("A")}})

	input := transcript("B", "Jane", "Doe", "no", "female", "ghost", "", "", "fam", "fam")

	_, stderr, code := cli.RunWithInput(input, "add")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	doc := readTree(t, cli.Dir)

	if got := doc.People[1].Parents; len(got) != 1 || got[0] != "ghost" {
		t.Errorf("B.parents = %v, want [ghost]", got)
	}

	// The unrelated record A must be untouched.
	if got := doc.People[0].Children; len(got) != 0 {
		t.Errorf("A.children = %v, want empty", got)
	}
}

func TestAddAllFlagsPromptsNothing(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)

	stdout, stderr, code := cli.RunWithInput("", "add",
		"--id", "B", "--first-name", "Jane", "--last-name", "Doe",
		"--alive", "YES", "--gender", "female",
		"--parents", " A, C ,,D ", "--spouses", "", "--children", "",
		"--birth-family", "fam", "--current-family", "fam")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	if strings.Contains(stdout, "Enter") {
		t.Errorf("prompts appeared despite all flags set:\n%s", stdout)
	}

	doc := readTree(t, cli.Dir)
	got := doc.People[0]

	if !got.Alive {
		t.Error("alive = false, want true for YES")
	}

	want := []string{"A", "C", "D"}
	if len(got.Parents) != len(want) {
		t.Fatalf("parents = %v, want %v", got.Parents, want)
	}

	for i := range want {
		if got.Parents[i] != want[i] {
			t.Fatalf("parents = %v, want %v", got.Parents, want)
		}
	}
}

func TestAddAliveMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		answer    string
		wantAlive bool
	}{
		{name: "lowercase yes", answer: "yes", wantAlive: true},
		{name: "mixed case", answer: "Yes", wantAlive: true},
		{name: "uppercase", answer: "YES", wantAlive: true},
		{name: "no", answer: "no", wantAlive: false},
		{name: "empty", answer: "", wantAlive: false},
		{name: "anything else", answer: "alive", wantAlive: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cli := NewCLI(t)

			input := transcript("P", "Pat", "Roe", tt.answer, "", "", "", "", "", "")

			_, stderr, code := cli.RunWithInput(input, "add")
			if code != 0 {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr)
			}

			doc := readTree(t, cli.Dir)
			if doc.People[0].Alive != tt.wantAlive {
				t.Errorf("alive = %v, want %v for answer %q", doc.People[0].Alive, tt.wantAlive, tt.answer)
			}
		})
	}
}

func TestAddInputEndsEarly(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)

	_, stderr, code := cli.RunWithInput("B\nJane\n", "add")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr, "input ended") {
		t.Errorf("stderr = %q, want input-ended error", stderr)
	}

	if _, err := os.Stat(filepath.Join(cli.Dir, "family_tree.json")); !os.IsNotExist(err) {
		t.Error("tree file was written despite aborted input")
	}
}

func TestAddMalformedTreeIsFatal(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)

	path := filepath.Join(cli.Dir, "family_tree.json")
	if err := os.WriteFile(path, []byte(`{"people": [`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, stderr, code := cli.RunWithInput("", "add")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr, "invalid") {
		t.Errorf("stderr = %q, want parse error", stderr)
	}
}

func TestAddSpouseBackLink(t *testing.T) {
	t.Parallel()

	cli := NewCLI(t)
	seedTree(t, cli.Dir, tree.Document{People: []tree.Person{seedPerson("S"), seedPerson("C")}})

	input := transcript("B", "Jane", "Doe", "yes", "female", "", "S", "C", "fam", "fam")

	_, stderr, code := cli.RunWithInput(input, "add")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	doc := readTree(t, cli.Dir)

	if got := doc.People[0].Spouses; len(got) != 1 || got[0] != "B" {
		t.Errorf("S.spouses = %v, want [B]", got)
	}

	if got := doc.People[1].Parents; len(got) != 1 || got[0] != "B" {
		t.Errorf("C.parents = %v, want [B]", got)
	}
}
