package category

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/keepcmd/pkg/id"
)

func fixture() Collection {
	return Collection{
		{ID: "x", Title: "Git", Description: "version control", Commands: []*Command{
			{ID: "c1", Command: "git status", Description: "show working tree"},
			{ID: "c2", Command: "git log --oneline", Description: "short history"},
		}},
		{ID: "y", Title: "Docker", Commands: []*Command{}},
	}
}

func TestUpsertCategoryCreatesAtFront(t *testing.T) {
	in := fixture()
	out, change := UpsertCategory(in, id.NewSequence("new"), "", Category{Title: "Kubernetes"})

	require.Len(t, out, len(in)+1)
	assert.Equal(t, Change{Kind: Created, ID: "new-1"}, change)
	assert.Equal(t, "new-1", out[0].ID)
	assert.Equal(t, "Kubernetes", out[0].Title)
	assert.NotNil(t, out[0].Commands)
	assert.Same(t, in[0], out[1])
	assert.Same(t, in[1], out[2])
	assert.Len(t, in, 2, "input must not grow")
}

func TestUpsertCategoryUnknownIDCreates(t *testing.T) {
	in := fixture()
	out, change := UpsertCategory(in, id.NewSequence("new"), "missing", Category{Title: "Shell"})

	assert.Equal(t, Created, change.Kind)
	assert.Equal(t, "new-1", out[0].ID)
	for _, existing := range in {
		assert.NotEqual(t, existing.ID, out[0].ID)
	}
}

func TestUpsertCategoryReplacesInPlace(t *testing.T) {
	in := fixture()
	replacement := *in[1]
	replacement.Title = "Containers"

	out, change := UpsertCategory(in, id.NewSequence("new"), "y", replacement)

	require.Len(t, out, len(in))
	assert.Equal(t, Change{Kind: Replaced, ID: "y"}, change)
	assert.Equal(t, "y", out[1].ID)
	assert.Equal(t, "Containers", out[1].Title)
	assert.Equal(t, "Docker", in[1].Title, "input category must not be mutated")
	assert.Same(t, in[0], out[0])
	assert.Equal(t, fixture()[0], out[0])
}

func TestRemoveCategory(t *testing.T) {
	in := fixture()
	out, change := RemoveCategory(in, "x")
	require.Len(t, out, 1)
	assert.Equal(t, Change{Kind: Removed, ID: "x"}, change)
	assert.Same(t, in[1], out[0])

	again, change := RemoveCategory(out, "x")
	assert.Equal(t, NotFound, change.Kind)
	assert.True(t, errors.Is(change.Err(), ErrNotFound))
	assert.Equal(t, out, again)
}

func TestUpsertCommand(t *testing.T) {
	tests := map[string]struct {
		categoryID string
		commandID  string
		cmd        Command
		wantKind   ChangeKind
		wantIDs    []string
	}{
		"append new": {
			categoryID: "x",
			cmd:        Command{Command: "git diff"},
			wantKind:   Created,
			wantIDs:    []string{"c1", "c2", "cmd-1"},
		},
		"unknown command id appends": {
			categoryID: "x",
			commandID:  "nope",
			cmd:        Command{Command: "git diff"},
			wantKind:   Created,
			wantIDs:    []string{"c1", "c2", "cmd-1"},
		},
		"replace keeps position": {
			categoryID: "x",
			commandID:  "c1",
			cmd:        Command{Command: "git status -sb"},
			wantKind:   Replaced,
			wantIDs:    []string{"c1", "c2"},
		},
		"unknown category": {
			categoryID: "zzz",
			cmd:        Command{Command: "ls"},
			wantKind:   NotFound,
			wantIDs:    []string{"c1", "c2"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			in := fixture()
			out, change := UpsertCommand(in, id.NewSequence("cmd"), tc.categoryID, tc.commandID, tc.cmd)
			if change.Kind != tc.wantKind {
				t.Fatalf("kind: got %v, want %v", change.Kind, tc.wantKind)
			}
			got := make([]string, 0)
			for _, c := range out.Find("x").Commands {
				got = append(got, c.ID)
			}
			assert.Equal(t, tc.wantIDs, got)
			assert.Same(t, in[1], out[1], "other categories keep identity")
			assert.Len(t, in[0].Commands, 2, "input commands must not change")
			if tc.wantKind == NotFound {
				assert.Equal(t, in, out)
			}
		})
	}
}

func TestUpsertCommandReplaceValues(t *testing.T) {
	in := fixture()
	out, _ := UpsertCommand(in, id.NewSequence("cmd"), "x", "c1", Command{Command: "git status -sb", Description: "short"})
	got := out.Find("x").FindCommand("c1")
	require.NotNil(t, got)
	assert.Equal(t, Command{ID: "c1", Command: "git status -sb", Description: "short"}, *got)
	assert.Equal(t, "git status", in[0].Commands[0].Command)
}

func TestRemoveCommand(t *testing.T) {
	in := fixture()

	out, change := RemoveCommand(in, "x", "c1")
	assert.Equal(t, Change{Kind: Removed, ID: "c1"}, change)
	require.Len(t, out[0].Commands, 1)
	assert.Equal(t, "c2", out[0].Commands[0].ID)
	assert.Len(t, in[0].Commands, 2)

	_, change = RemoveCommand(in, "x", "nope")
	assert.Equal(t, Change{Kind: NotFound, ID: "nope"}, change)

	same, change := RemoveCommand(in, "nope", "c1")
	assert.Equal(t, Change{Kind: NotFound, ID: "nope"}, change)
	assert.Equal(t, in, same)
}

func TestChangeMutated(t *testing.T) {
	for kind, want := range map[ChangeKind]bool{
		Unchanged: false,
		Created:   true,
		Replaced:  true,
		Removed:   true,
		Moved:     true,
		NotFound:  false,
	} {
		if got := (Change{Kind: kind}).Mutated(); got != want {
			t.Fatalf("%v: got %v, want %v", kind, got, want)
		}
		if kind != NotFound && (Change{Kind: kind}).Err() != nil {
			t.Fatalf("%v: unexpected error", kind)
		}
	}
}
