package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"folio/common"
	"folio/config"
	"folio/layout"
)

func newTestEnv(t *testing.T) *LocalEnv {
	t.Helper()

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	return &LocalEnv{
		Cfg:   cfg,
		Log:   zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		start: time.Now(),
	}
}

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now()}

	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond || uptime > time.Second {
		t.Errorf("Uptime() = %v", uptime)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}
		for i := range 3 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Errorf("Iteration %d: restoreStdLog not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}

func TestLocalEnv_NewEngine(t *testing.T) {
	env := newTestEnv(t)
	env.Cfg.Document.IDScheme = common.IDSchemeUuid

	e, err := env.NewEngine(layout.WithFirstPage(2))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	pages, err := e.Paginate(context.Background(), "# Title\n\nText", nil)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(pages) != 1 || pages[0].ID != "page-2" {
		t.Fatalf("unexpected pages %+v", pages)
	}
	if id := pages[0].Elements[0].ID; len(id) < 36 {
		t.Errorf("configured id scheme was not used: %q", id)
	}

	env.Cfg.Layout.CharsPerLine = 0
	if _, err := env.NewEngine(); !errors.Is(err, layout.ErrInvalidConfig) {
		t.Errorf("NewEngine() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLocalEnv_OutputFormat(t *testing.T) {
	env := newTestEnv(t)
	env.Cfg.Document.OutputFormat = common.OutputFmtYaml

	tests := []struct {
		requested string
		want      common.OutputFmt
		wantErr   bool
	}{
		{"", common.OutputFmtYaml, false},
		{"json", common.OutputFmtJson, false},
		{"yaml", common.OutputFmtYaml, false},
		{"xml", common.OutputFmtJson, true},
	}
	for _, tt := range tests {
		got, err := env.OutputFormat(tt.requested)
		if (err != nil) != tt.wantErr {
			t.Errorf("OutputFormat(%q) error = %v", tt.requested, err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("OutputFormat(%q) = %s, want %s", tt.requested, got, tt.want)
		}
	}
}
