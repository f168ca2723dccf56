package snapshot

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/keepcmd/pkg/category"
)

func sample() category.Collection {
	return category.Collection{
		{ID: "a", Title: "Git", Description: "vcs", Commands: []*category.Command{
			{ID: "1", Command: "git status", Description: "tree"},
			{ID: "2", Command: `git log --format="%h %s"`, Description: "quotes survive"},
		}},
		{ID: "b", Title: "Empty", Commands: []*category.Command{}},
		{ID: "c", Title: "Ünïcode ✓", Description: "multi\nline", Commands: []*category.Command{
			{ID: "3", Command: "echo $HOME"},
		}},
	}
}

func TestRoundTrip(t *testing.T) {
	for name, in := range map[string]category.Collection{
		"sample": sample(),
		"empty":  {},
	} {
		t.Run(name, func(t *testing.T) {
			data, err := Encode(in)
			require.NoError(t, err)
			out, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	data, err := Encode(category.Collection{{ID: "a", Title: "T"}})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "1", doc["version"])
	cats, ok := doc["categories"].([]any)
	require.True(t, ok)
	require.Len(t, cats, 1)
	first := cats[0].(map[string]any)
	assert.Equal(t, "a", first["id"])
	assert.Equal(t, "T", first["title"])
	assert.Equal(t, "", first["description"])
	assert.Equal(t, []any{}, first["commands"])
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]struct {
		data string
		want error
	}{
		"not json":      {`{{`, ErrMalformed},
		"wrong shape":   {`[1,2,3]`, ErrMalformed},
		"wrong version": {`{"version":"2","categories":[]}`, ErrVersion},
		"no version":    {`{"categories":[]}`, ErrVersion},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecodeNullCommands(t *testing.T) {
	out, err := Decode([]byte(`{"version":"1","categories":[{"id":"a","title":"A","commands":null}]}`))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Commands)
	assert.Empty(t, out[0].Commands)
}

func TestDecodeNullCommandEntry(t *testing.T) {
	out, err := Decode([]byte(`{"version":"1","categories":[{"id":"a","commands":[null,{"id":"1","command":"ls"},null]}]}`))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Commands, 1)
	assert.Equal(t, "1", out[0].Commands[0].ID)
}

func TestStoreLoadDropsNullCommands(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Set(Key, []byte(`{"version":"1","categories":[{"id":"a","commands":[null]}]}`)))
	got := NewStore(kv, nil).Load()
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Commands)
	assert.Empty(t, got[0].Commands)
}

func TestStoreLoadSave(t *testing.T) {
	kv := NewMemory()
	s := NewStore(kv, nil)

	assert.Empty(t, s.Load(), "absent key loads empty")

	require.NoError(t, s.Save(sample()))
	assert.Equal(t, sample(), s.Load())

	raw, err := kv.Get(Key)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"version":"1"`)
}

func TestStoreLoadToleratesGarbage(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage": "not json at all",
		"future":  `{"version":"9","categories":[{"id":"a"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := NewMemory()
			require.NoError(t, kv.Set(Key, []byte(raw)))
			got := NewStore(kv, nil).Load()
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestStoreSaveError(t *testing.T) {
	boom := errors.New("quota exceeded")
	kv := NewMemory()
	kv.SetErr = boom
	err := NewStore(kv, nil).Save(sample())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestStoreCustomKey(t *testing.T) {
	kv := NewMemory()
	s := &Store{KV: kv, Key: "other"}
	require.NoError(t, s.Save(sample()))
	_, err := kv.Get(Key)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = kv.Get("other")
	assert.NoError(t, err)
}
