package paginate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"folio/common"
	"folio/project"
	"folio/state"
)

// RunRelayout is relayout command action, it re-paginates existing project
// with active configuration.
func RunRelayout(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("relayout")

	src, dst, err := arguments(cmd, log)
	if err != nil {
		return err
	}

	input := project.FormatFromName(src)
	format := input
	if requested := cmd.String("to"); len(requested) > 0 {
		if format, err = common.ParseOutputFmt(requested); err != nil {
			log.Warn("Unknown output format requested, keeping input format", zap.Error(err), zap.Stringer("format", input))
			format = input
		}
	}

	env.NoDirs, env.Overwrite = true, cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return relayout(ctx, src, input, &job{
		dst:     dst,
		format:  format,
		builder: newBuilder(env, log),
		log:     log,
	})
}

func relayout(ctx context.Context, src string, input common.OutputFmt, j *job) error {
	env := state.EnvFromContext(ctx)

	// original could be overwritten later, keep its state for the report
	if err := env.Rpt.StoreCopy("source-"+filepath.Base(src), src); err != nil {
		j.log.Warn("Unable to store project copy in the report", zap.Error(err))
	}

	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open project: %w", err)
	}
	defer file.Close()

	orig, err := project.Read(file, input)
	if err != nil {
		return fmt.Errorf("unable to read project %s: %w", src, err)
	}

	p, err := j.builder.Relayout(ctx, orig)
	if err != nil {
		return fmt.Errorf("unable to re-paginate %s: %w", src, err)
	}

	outputName := buildOutputPath(p, filepath.Base(src), j.dst, j.format, env)
	if same, _ := sameFile(src, outputName); same {
		// we are still reading it
		return fmt.Errorf("output would replace source project: %s", outputName)
	}
	if err := writeProject(p, outputName, j.format, env, j.log); err != nil {
		return err
	}
	j.log.Info("Project re-paginated", zap.String("to", outputName), zap.Int("pages before", len(orig.Pages)), zap.Int("pages after", len(p.Pages)))
	return nil
}

func sameFile(a, b string) (bool, error) {
	fa, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(fa, fb), nil
}
