// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"folio/common"
	"folio/config"
	"folio/layout"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by paginate and relayout subcommands
	NoDirs    bool
	Overwrite bool
	// code page for text files without BOM and non UTF-8 names in archives
	CodePage encoding.Encoding

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// NewEngine prepares layout engine from active configuration. Additional
// options are applied after configured ones.
func (e *LocalEnv) NewEngine(opts ...layout.Option) (*layout.Engine, error) {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	doc := &e.Cfg.Document
	return layout.New(e.Cfg.Layout, append([]layout.Option{
		layout.WithLogger(log.Named("layout")),
		layout.WithIDScheme(doc.IDScheme),
		layout.WithPlacement(doc.Images.Placement),
	}, opts...)...)
}

// OutputFormat returns configured output format unless overwritten.
func (e *LocalEnv) OutputFormat(requested string) (common.OutputFmt, error) {
	if len(requested) == 0 {
		return e.Cfg.Document.OutputFormat, nil
	}
	return common.ParseOutputFmt(requested)
}
