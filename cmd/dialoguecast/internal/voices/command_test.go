package voices

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipeed/dialoguecast/pkg/voice"
)

type stubProvider struct {
	catalog voice.Catalog
	err     error
}

func (s stubProvider) ListVoices(context.Context) (voice.Catalog, error) {
	return s.catalog, s.err
}

func (s stubProvider) Synthesize(context.Context, string, voice.Voice) (io.ReadCloser, error) {
	return nil, errors.New("not used")
}

func TestNewVoicesCommand(t *testing.T) {
	cmd := NewVoicesCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "voices", cmd.Use)
	assert.True(t, cmd.HasAlias("ls"))
	assert.Equal(t, "List the voices available to the configured account", cmd.Short)
	assert.Nil(t, cmd.Run)
	assert.NotNil(t, cmd.RunE)
	assert.False(t, cmd.HasSubCommands())
}

func TestListVoices(t *testing.T) {
	var buf bytes.Buffer
	provider := stubProvider{catalog: voice.Catalog{
		{ID: "v1", Name: "Rachel", Category: "premade"},
		{ID: "v2", Name: "Adam", Category: "cloned"},
	}}

	require.NoError(t, listVoices(context.Background(), provider, &buf))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Regexp(t, `Rachel\s+v1\s+premade`, out)
	assert.Regexp(t, `Adam\s+v2\s+cloned`, out)
}

func TestListVoices_Errors(t *testing.T) {
	err := listVoices(context.Background(), stubProvider{}, io.Discard)
	assert.True(t, errors.Is(err, voice.ErrEmptyCatalog))

	err = listVoices(context.Background(), stubProvider{err: errors.New("offline")}, io.Discard)
	assert.ErrorContains(t, err, "offline")
}
