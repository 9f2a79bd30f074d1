package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookalope/bookalope-go/bookalope"
)

const testFlowID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

// newPollTestFlow starts a fake API server and returns a bookflow wired
// to it, for driving the caller-side poll loops.
func newPollTestFlow(t *testing.T, handler http.HandlerFunc) *bookalope.Bookflow {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bookalope-Api-Version", bookalope.APIVersion)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := bookalope.NewClient(server.URL, strings.Repeat("t", 71))
	require.NoError(t, err)
	book, err := client.NewBook(strings.Repeat("b", 32))
	require.NoError(t, err)
	flow, err := client.NewBookflow(book, testFlowID)
	require.NoError(t, err)
	return flow
}

func flowPayload(step string) string {
	return `{"bookflow":{"id":"` + testFlowID + `","name":"Bookflow 1","step":"` + step + `"}}`
}

func TestWaitForAnalysis(t *testing.T) {
	t.Run("stops when the server reports convert", func(t *testing.T) {
		updates := 0
		flow := newPollTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
			updates++
			step := "processing"
			if updates > 2 {
				step = "convert"
			}
			w.Write([]byte(flowPayload(step)))
		})
		flow.Step = bookalope.StepProcessing

		err := waitForAnalysis(context.Background(), flow, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, bookalope.StepConvert, flow.Step)
		assert.Equal(t, 3, updates)
	})

	t.Run("surfaces analysis failure", func(t *testing.T) {
		flow := newPollTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(flowPayload("processing_failed")))
		})
		flow.Step = bookalope.StepProcessing

		err := waitForAnalysis(context.Background(), flow, time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "analysis failed")
		assert.Contains(t, err.Error(), flow.ID)
		assert.Equal(t, bookalope.StepProcessingFailed, flow.Step)
	})

	t.Run("returns without polling when analysis is already done", func(t *testing.T) {
		requests := 0
		flow := newPollTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
			requests++
		})
		flow.Step = bookalope.StepConvert

		require.NoError(t, waitForAnalysis(context.Background(), flow, time.Millisecond))
		assert.Zero(t, requests)
	})

	t.Run("gives up when the context deadline expires", func(t *testing.T) {
		flow := newPollTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(flowPayload("processing")))
		})
		flow.Step = bookalope.StepProcessing

		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
		defer cancel()

		err := waitForAnalysis(ctx, flow, 10*time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out waiting for document analysis")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestWaitForConversion(t *testing.T) {
	t.Run("stops once the download is available", func(t *testing.T) {
		checks := 0
		flow := newPollTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/bookflows/"+testFlowID+"/download/epub/status", r.URL.Path)
			checks++
			status := "processing"
			if checks > 1 {
				status = "available"
			}
			w.Write([]byte(`{"status":"` + status + `"}`))
		})

		err := waitForConversion(context.Background(), flow, "epub", time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 2, checks)
	})

	t.Run("surfaces a failed conversion", func(t *testing.T) {
		flow := newPollTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"failed"}`))
		})

		err := waitForConversion(context.Background(), flow, "epub", time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "conversion to epub failed")
	})

	t.Run("gives up when the context deadline expires", func(t *testing.T) {
		flow := newPollTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"processing"}`))
		})

		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
		defer cancel()

		err := waitForConversion(ctx, flow, "epub", 10*time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out waiting for epub conversion")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestPrintStatusVerboseGating(t *testing.T) {
	var buf bytes.Buffer
	origOut := statusOut
	origVerbose := verbose
	statusOut = &buf
	t.Cleanup(func() {
		statusOut = origOut
		verbose = origVerbose
	})

	setVerbose(false)
	printStatus("quiet %s", "chatter")
	assert.Empty(t, buf.String())

	setVerbose(true)
	printStatus("loud %s", "chatter")
	assert.Contains(t, buf.String(), "loud chatter")

	// Results and failures print regardless of verbosity.
	setVerbose(false)
	buf.Reset()
	printOK("done")
	printFail("broken")
	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "broken")
}
