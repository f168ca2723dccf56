package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/keepcmd/pkg/category"
)

func init() {
	color.NoColor = true
	homedir.DisableCache = true
}

// run executes the cli against a store rooted in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", dir)
	t.Setenv("KEEPCMD_CONFIG_PATH", dir)

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--path", dir, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func addedID(t *testing.T, out string) string {
	t.Helper()
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("added output %q: %v", out, err)
	}
	return got["id"]
}

func TestAddAndGet(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "add", "category", "--json", "-d", "version control", "Git")
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	git := addedID(t, out)

	if _, err := run(t, dir, "add", "command", "-c", git, "-d", "short status", "git", "status", "-sb"); err != nil {
		t.Fatalf("add command: %v", err)
	}

	out, err = run(t, dir, "get", "-c", git, "--json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var cat category.Category
	if err := json.Unmarshal([]byte(out), &cat); err != nil {
		t.Fatalf("get output %q: %v", out, err)
	}
	if cat.Title != "Git" || len(cat.Commands) != 1 || cat.Commands[0].Command != "git status -sb" {
		t.Fatalf("unexpected category: %+v", cat)
	}

	out, err = run(t, dir, "get", "status")
	if err != nil {
		t.Fatalf("get keyword: %v", err)
	}
	if !strings.Contains(out, "Git") {
		t.Fatalf("filtered listing missing Git:\n%s", out)
	}
}

func TestMoveCategory(t *testing.T) {
	dir := t.TempDir()
	var ids []string
	for _, title := range []string{"C", "B", "A"} {
		out, err := run(t, dir, "add", "category", "--json", title)
		if err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
		ids = append(ids, addedID(t, out))
	}
	// Prepended, so the board reads A, B, C.
	a, c := ids[2], ids[0]

	out, err := run(t, dir, "move", "category", a, "--over", c, "-v")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !strings.Contains(out, `Picked up category "A"`) {
		t.Fatalf("expected announcements, got:\n%s", out)
	}

	out, err = run(t, dir, "get", "--json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var cats category.Collection
	if err := json.Unmarshal([]byte(out), &cats); err != nil {
		t.Fatalf("get output %q: %v", out, err)
	}
	var titles []string
	for _, cat := range cats {
		titles = append(titles, cat.Title)
	}
	if got := strings.Join(titles, ""); got != "BCA" {
		t.Fatalf("order = %s, want BCA", got)
	}
}

func TestCommandNeedsCategoryWithoutTerminal(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "command", "ls", "-la")
	if !errors.Is(err, errNoCategory) {
		t.Fatalf("add command without -c = %v, want %v", err, errNoCategory)
	}
}

func TestRemoveUnknownCategoryJSON(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "rm", "category", "nope", "--json")
	if err != nil {
		t.Fatalf("rm with --json should report in band, got %v", err)
	}
	if !strings.Contains(out, `"not_found"`) {
		t.Fatalf("expected not_found code, got:\n%s", out)
	}
}
