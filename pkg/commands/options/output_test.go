package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/keepcmd/pkg/category"
)

func TestHandleErrorPassesThrough(t *testing.T) {
	o := &OutputOptions{}
	want := errors.New("boom")
	assert.Equal(t, want, o.HandleError(want))
	assert.NoError(t, o.HandleError(nil))
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}

	require.NoError(t, o.HandleError(fmt.Errorf("%w: %q", category.ErrNotFound, "x")))
	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "not_found", got["code"])
	assert.Contains(t, got["error"], `"x"`)

	buf.Reset()
	require.NoError(t, o.HandleError(errors.New("disk full")))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["code"])
}
