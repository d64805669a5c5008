package loader

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const twoCases = `[
  {"id": 1, "litigation_phase": "Discovery", "status": "Pending", "client_name": "A"},
  {"id": "B-2", "litigation_phase": "Appeal", "status": " Approved "}
]`

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func requireLoadError(t *testing.T, err error, kind Kind) *LoadError {
	t.Helper()
	require.Error(t, err)
	var le *LoadError
	require.True(t, errors.As(err, &le), "expected *LoadError, got %T", err)
	assert.Equal(t, kind, le.Kind)
	return le
}

func TestHTTPLoader_Success(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, twoCases)

	cases, err := New(Config{Source: srv.URL + "/master.json"}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, domain.IntID(1), cases[0].ID)
	assert.Equal(t, domain.StringID("B-2"), cases[1].ID)
	assert.Equal(t, domain.ReviewStatus(" Approved "), cases[1].Status, "records are returned as provided")
	assert.Equal(t, domain.Phase("Appeal"), cases[1].LitigationPhase)
}

func TestHTTPLoader_EmptyArray(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `[]`)

	cases, err := New(Config{Source: srv.URL}).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cases)
	assert.Empty(t, cases)
}

func TestHTTPLoader_NonSuccessStatus(t *testing.T) {
	srv := jsonServer(t, http.StatusNotFound, `not found`)

	cases, err := New(Config{Source: srv.URL}).Load(context.Background())
	assert.Nil(t, cases)
	le := requireLoadError(t, err, KindStatus)
	assert.Equal(t, http.StatusNotFound, le.StatusCode)
	assert.Contains(t, err.Error(), "HTTP error status 404")
}

func TestHTTPLoader_MalformedPayload(t *testing.T) {
	for name, body := range map[string]string{
		"object":    `{"cases": []}`,
		"scalar":    `42`,
		"truncated": `[{"id": 1`,
		"html":      `<html></html>`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			srv := jsonServer(t, http.StatusOK, body)
			_, err := New(Config{Source: srv.URL}).Load(context.Background())
			requireLoadError(t, err, KindParse)
		})
	}
}

func TestHTTPLoader_NotArrayIsSentinel(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"id": 1}`)
	_, err := New(Config{Source: srv.URL}).Load(context.Background())
	assert.ErrorIs(t, err, ErrNotArray)
}

func TestHTTPLoader_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(Config{Source: url}).Load(context.Background())
	requireLoadError(t, err, KindNetwork)
}

func TestHTTPLoader_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := New(Config{Source: srv.URL, Timeout: 20 * time.Millisecond}).Load(context.Background())
	requireLoadError(t, err, KindNetwork)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "master.json")
	require.NoError(t, os.WriteFile(path, []byte(twoCases), 0o644))

	for _, src := range []string{path, "file://" + path} {
		cases, err := New(Config{Source: src}).Load(context.Background())
		require.NoError(t, err, "source=%s", src)
		assert.Len(t, cases, 2)
	}
}

func TestFileLoader_Missing(t *testing.T) {
	_, err := New(Config{Source: filepath.Join(t.TempDir(), "nope.json")}).Load(context.Background())
	le := requireLoadError(t, err, KindNetwork)
	assert.ErrorIs(t, le, os.ErrNotExist)
}

func TestFileLoader_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Config{Source: path}).Load(ctx)
	requireLoadError(t, err, KindNetwork)
}

func TestZapObserver_LogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewZapObserver(zap.New(core))

	ok := jsonServer(t, http.StatusOK, twoCases)
	_, err := New(Config{Source: ok.URL, Observer: obs}).Load(context.Background())
	require.NoError(t, err)

	bad := jsonServer(t, http.StatusInternalServerError, ``)
	_, err = New(Config{Source: bad.URL, Observer: obs}).Load(context.Background())
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "cases loaded", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.EqualValues(t, 2, entries[0].ContextMap()["cases"])

	assert.Equal(t, "case load failed", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "status", entries[1].ContextMap()["kind"])
	assert.EqualValues(t, 500, entries[1].ContextMap()["status_code"])
}

func TestDecode(t *testing.T) {
	cases, err := Decode([]byte("  []\n"))
	require.NoError(t, err)
	assert.Empty(t, cases)

	_, err = Decode([]byte(`null`))
	assert.ErrorIs(t, err, ErrNotArray)
}

func TestDecode_MalformedJSONKeepsSyntaxError(t *testing.T) {
	for name, body := range map[string]string{
		"html":      `<html></html>`,
		"truncated": `[{"id": 1`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(body))
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrNotArray)

			var syntaxErr *json.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestDecode_WrongTypedFieldKeepsRecord(t *testing.T) {
	cases, err := Decode([]byte(`[
		{"id": 2, "litigation_phase": "Discovery", "relevant_cases": [{"relevance_score": "0.8"}]},
		{"id": 3, "litigation_phase": "Trial", "key_findings": ["a", 2]}
	]`))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, 80, cases[0].RelevantCases[0].RelevancePercent())
	assert.Equal(t, domain.StringList{"a", "2"}, cases[1].KeyFindings)
}

func TestFileLoader_WrongTypedFieldStillLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "client_name": 5, "venue": {"county": 9}}]`), 0o644))

	cases, err := New(Config{Source: path}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "5", cases[0].ClientName)
	assert.Equal(t, "9", cases[0].Venue.County)
}
