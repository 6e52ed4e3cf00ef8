package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/require"

	"go.skia.org/kaleido/go/testutils"
)

func TestDemoCommand(t *testing.T) {
	got := DemoCommand()
	assert.NotNil(t, got)
	assert.Equal(t, "demo", got.Name)
}

func TestDemoCommand_Run(t *testing.T) {
	dir, err := testutils.TestDataDir()
	assert.NoError(t, err)

	var out, errOut bytes.Buffer
	app := newTestApp(strings.NewReader(""), &out, &errOut)
	err = app.Run([]string{"kaleido", "demo", "--config", filepath.Join(dir, "samples.json5")})
	assert.NoError(t, err)

	// The listing sample is tokenized but not evaluated.
	assert.Contains(t, out.String(), "== kaleidoscope listing ==")
	assert.Contains(t, out.String(), "FUNCTION")
	assert.Contains(t, out.String(), "EXTERN")

	// The arithmetic samples print their values.
	assert.Contains(t, out.String(), "== calculator example ==")
	assert.Contains(t, out.String(), "= 11.5")
	assert.Contains(t, out.String(), "== trigonometric example ==")
	assert.Contains(t, out.String(), "= 1.4794")
}

func TestDemoCommand_MissingConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newTestApp(strings.NewReader(""), &out, &errOut)
	err := app.Run([]string{"kaleido", "demo", "--config", filepath.Join(t.TempDir(), "nope.json5")})
	assert.Error(t, err)
}
