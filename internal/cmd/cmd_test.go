package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deck = "../source/testdata/bubblesort.yaml"

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Flags and viper are package globals; start every run from scratch.
	viper.Reset()
	_ = viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = root.PersistentFlags().Set("config", "")
	verbose = false
	generateOut = ""
	renderSlide, renderJSON = 1, false

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCheck(t *testing.T) {
	out, err := executeCommand(t, rootCmd, "check", deck)
	require.NoError(t, err)
	assert.Contains(t, out, "3 views, 6 slides")
	assert.Contains(t, out, "#code list (6)")
	assert.Contains(t, out, "#array multispan (5)")
	assert.Contains(t, out, "#caption simple (1)")
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := executeCommand(t, rootCmd, "check", "does-not-exist.tt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read presentation")
}

func TestCheck_NeedsFile(t *testing.T) {
	_, err := executeCommand(t, rootCmd, "check")
	require.Error(t, err)
}

func TestRender_JSON(t *testing.T) {
	out, err := executeCommand(t, rootCmd, "render", deck, "--slide", "3", "--json")
	require.NoError(t, err)

	var got renderedSlide
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Slide)
	assert.Equal(t, 6, got.Max)
	require.Len(t, got.Views, 3)
	assert.Equal(t, "code", got.Views[0].ID)
	assert.Contains(t, got.Views[0].HTML, "traceytexthighlight")
	assert.Equal(t, "[1, 5, 4]", got.Views[1].HTML)
	assert.Equal(t, "Inner loop", got.Views[2].HTML)
}

func TestRender_ClampsSlide(t *testing.T) {
	out, err := executeCommand(t, rootCmd, "render", deck, "--slide", "99", "--json")
	require.NoError(t, err)

	var got renderedSlide
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 6, got.Slide)
}

func TestRender_Text(t *testing.T) {
	out, err := executeCommand(t, rootCmd, "render", deck)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Slide 1/6\n"), out)
	assert.Contains(t, out, "== caption (simple)")
	assert.Contains(t, out, "Outer loop")
	assert.Contains(t, out, "▸ outer")
	assert.Contains(t, out, "• inner")
	assert.NotContains(t, out, "<li>")
}

func TestGenerate_Stdout(t *testing.T) {
	out, err := executeCommand(t, rootCmd, "generate", deck)
	require.NoError(t, err)
	assert.Contains(t, out, "var mainTraceyTextObj = new TraceyText();")
	assert.Contains(t, out, "<span id='curSlide'></span>")
	assert.Contains(t, out, "background-color: #FFFF99;")
}

func TestGenerate_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.html")
	out, err := executeCommand(t, rootCmd, "generate", deck, "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "new TraceyText()")
}

func TestGenerate_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  object: deck\n  script_src: js/tt.js\n"), 0o644))

	out, err := executeCommand(t, rootCmd, "--config", path, "generate", deck)
	require.NoError(t, err)
	assert.Contains(t, out, "var deck = new TraceyText();")
	assert.Contains(t, out, `src="js/tt.js"`)
}

func TestGenerate_EnvOverride(t *testing.T) {
	t.Setenv("TRACEY_GENERATE_OBJECT", "fromEnv")
	out, err := executeCommand(t, rootCmd, "generate", deck)
	require.NoError(t, err)
	assert.Contains(t, out, "var fromEnv = new TraceyText();")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := executeCommand(t, rootCmd, "--config", path, "check", deck)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestPresent_MissingFile(t *testing.T) {
	_, err := executeCommand(t, rootCmd, "present", "does-not-exist.tt")
	require.Error(t, err)
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseOutput(t *testing.T) {
	diskFull := errors.New("disk full")

	var err error
	closeOutput(failingCloser{diskFull}, &err)
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)

	// An earlier write error wins over the close error.
	writeErr := errors.New("write failed")
	err = writeErr
	closeOutput(failingCloser{diskFull}, &err)
	assert.Equal(t, writeErr, err)

	err = nil
	closeOutput(failingCloser{}, &err)
	assert.NoError(t, err)
}

func TestGenerate_UnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deck.html")
	_, err := executeCommand(t, rootCmd, "generate", deck, "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output")
}
