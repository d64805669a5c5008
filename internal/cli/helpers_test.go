package cli

import (
	"bytes"
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/alexanderramin/casetracker/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubLoader returns a fixed collection or error and counts calls.
type stubLoader struct {
	mu    sync.Mutex
	cases []domain.Case
	err   error
	calls int
}

func (l *stubLoader) Load(context.Context) ([]domain.Case, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.cases, l.err
}

func (l *stubLoader) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// testApp wires an App around a stub loader and an in-memory log sink.
func testApp(t *testing.T, l *stubLoader) (*App, *observer.ObservedLogs) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	core, logs := observer.New(zapcore.DebugLevel)
	return &App{
		Loader:        l,
		Logger:        zap.New(core),
		IsInteractive: func() bool { return false },
	}, logs
}

// fixtureCases covers every phase but Trial, an unknown phase, an integer
// id with padded status, and a case with no optional data.
func fixtureCases() []domain.Case {
	return []domain.Case{
		testutil.NewTestCase(domain.IntID(7),
			testutil.WithStatus(" Pending "),
			testutil.WithSummary("Rear-end collision"),
			testutil.WithClient("Dana Ruiz"),
			testutil.WithVenue("Superior Court", "Alameda"),
			testutil.WithFindings("Police report assigns fault"),
			testutil.WithStep(domain.PhaseDiscovery, "Send interrogatories", true),
			func(c *domain.Case) {
				c.MedicalHistorySummary = "Prior back injury"
				c.HIPAANecessity = "ER records release"
				c.PoliticalReading = "Neutral"
			},
		),
		testutil.NewTestCase(domain.IntID(8),
			testutil.WithSummary("Dog bite"),
			testutil.WithClient("Omar Haddad"),
		),
		testutil.NewTestCase(domain.StringID("s-2"),
			testutil.WithPhase(domain.PhaseSettlement),
			testutil.WithStatus(domain.StatusApproved),
			testutil.WithSummary("Contract dispute"),
			testutil.WithClient("Lee Park"),
		),
		testutil.NewTestCase(domain.StringID("p-3"),
			testutil.WithPhase(domain.PhasePreTrial),
			testutil.WithStatus(domain.StatusPending),
			testutil.WithSummary("Premises liability"),
		),
		testutil.NewTestCase(domain.StringID("a-9"),
			testutil.WithPhase("Appeal"),
			testutil.WithStatus(domain.StatusPending),
			testutil.WithSummary("Closed matter"),
			testutil.WithClient("Ghost Client"),
		),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SetContext(context.Background())
	err := root.Execute()
	return buf.String(), err
}


var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
