package render_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/juggle/internal/render"
	"github.com/katalvlaran/juggle/search"
	"github.com/katalvlaran/juggle/siteswap"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestResults(t *testing.T) {
	res := search.New(search.Params{Period: 3, MaxThrow: 5, Objects: 3, Jugglers: 1}).
		Generate(context.Background())

	var buf bytes.Buffer
	require.NoError(t, render.Results(&buf, []search.Result{res}, render.ResultOptions{Transitions: true}))

	out := buf.String()
	assert.Contains(t, out, "period 3, 3 objects, throws 0..5, 1 juggler(s)")
	for _, s := range []string{"423", "441", "504", "522", "531"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, out, "getin")
	assert.Contains(t, out, "5 found")
	assert.Contains(t, out, "✓ 5 patterns, search complete")
	assert.NotContains(t, out, "divided")
}

func TestResults_MarkdownGroup(t *testing.T) {
	res := search.New(search.Params{Period: 2, MaxThrow: 5, Objects: 3, Jugglers: 2}).
		Generate(context.Background())

	var buf bytes.Buffer
	require.NoError(t, render.Results(&buf, []search.Result{res}, render.ResultOptions{Mode: render.Markdown, Local: true}))

	out := buf.String()
	assert.Contains(t, out, "51")
	assert.Contains(t, out, "2.5 0.5")
	assert.Contains(t, out, "local")
}

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Status(&buf, search.Result{Stop: search.StopLimit}))
	require.NoError(t, render.Status(&buf, search.Result{Stop: search.StopTimeout}))
	render.Error(&buf, errors.New("boom"))

	assert.Contains(t, buf.String(), "result limit reached")
	assert.Contains(t, buf.String(), "search stopped: timeout")
	assert.Contains(t, buf.String(), "error: boom")
}

// failingWriter accepts ok bytes, then fails every write.
type failingWriter struct{ ok int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok < len(p) {
		return 0, errWrite
	}
	w.ok -= len(p)

	return len(p), nil
}

func TestStatus_WriteError(t *testing.T) {
	for _, stop := range []search.Stop{search.StopExhausted, search.StopLimit, search.StopCanceled} {
		assert.ErrorIs(t, render.Status(&failingWriter{}, search.Result{Stop: stop}), errWrite, stop.String())
	}
}

func TestResults_StatusWriteError(t *testing.T) {
	res := search.New(search.Params{Period: 3, MaxThrow: 5, Objects: 3, Jugglers: 1}).
		Generate(context.Background())

	var buf bytes.Buffer
	require.NoError(t, render.Results(&buf, []search.Result{res}, render.ResultOptions{}))
	statusLen := len("✓ 5 patterns")
	// room for everything but the status line
	w := &failingWriter{ok: buf.Len() - statusLen}
	assert.ErrorIs(t, render.Results(w, []search.Result{res}, render.ResultOptions{}), errWrite)
}

func TestAnalysis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Analysis(&buf, siteswap.Parse("86277", 2), render.ASCII))

	out := buf.String()
	assert.Contains(t, out, "ssspp")
	assert.Contains(t, out, "4 1 3.5s 3 3.5s")
	assert.Contains(t, out, "3 3.5x 4 1 3.5x")
	assert.Contains(t, out, "juggler B")
	assert.Contains(t, out, "77")
}

func TestAnalysis_Invalid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Analysis(&buf, siteswap.Parse("54", 1), render.ASCII))

	out := buf.String()
	assert.Contains(t, out, "false")
	assert.NotContains(t, out, "canonical")
}
