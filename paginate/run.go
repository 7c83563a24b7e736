// Package paginate implements program commands: it reads sources, lays them
// out into pages and writes resulting projects.
package paginate

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"folio/common"
	"folio/layout"
	"folio/project"
	"folio/source"
	"folio/state"
)

// job keeps parameters shared by all documents of a single run.
type job struct {
	dst     string
	format  common.OutputFmt
	images  []string
	builder *project.Builder
	log     *zap.Logger
}

// Run is paginate command action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("paginate")

	src, dst, err := arguments(cmd, log)
	if err != nil {
		return err
	}

	format, err := env.OutputFormat(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to default", zap.Error(err), zap.Stringer("format", env.Cfg.Document.OutputFormat))
		format = env.Cfg.Document.OutputFormat
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	setCodePage(env, cmd.String("codepage"), log)

	dir := cmd.String("images")
	if len(dir) == 0 {
		dir = env.Cfg.Document.Images.Directory
	}
	var images []string
	if len(dir) > 0 {
		if images, err = source.CollectImages(dir); err != nil {
			return err
		}
		log.Debug("Images collected", zap.String("dir", dir), zap.Int("count", len(images)))
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, &job{
		dst:     dst,
		format:  format,
		images:  images,
		builder: newBuilder(env, log),
		log:     log,
	})
}

// arguments returns absolute source and destination, destination defaults
// to working directory.
func arguments(cmd *cli.Command, log *zap.Logger) (src, dst string, err error) {
	src = cmd.Args().Get(0)
	if len(src) == 0 {
		return "", "", errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return "", "", err
	}

	dst = cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", "", err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return src, dst, nil
}

// setCodePage selects encoding for text files without BOM and for non UTF-8
// file names in archives (zip "standard" does not define names encoding).
func setCodePage(env *state.LocalEnv, cp string, log *zap.Logger) {
	if len(cp) == 0 {
		env.CodePage = nil
		return
	}
	enc, err := ianaindex.IANA.Encoding(cp)
	if err != nil || enc == nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		env.CodePage = nil
		return
	}
	env.CodePage = enc
	n, _ := ianaindex.IANA.Name(enc)
	log.Debug("Using code page for text without BOM and non UTF-8 names in archives", zap.String("charset", n))
}

// checkpoint lets other goroutines (signal handling) run during long layouts.
func checkpoint(log *zap.Logger) layout.Checkpoint {
	return func(ctx context.Context, p layout.Progress) error {
		log.Debug("Pagination progress", zap.Int("units", p.Units), zap.Int("pages", p.Pages), zap.Int("remaining", p.Remaining))
		runtime.Gosched()
		return ctx.Err()
	}
}

func newBuilder(env *state.LocalEnv, log *zap.Logger) *project.Builder {
	doc := &env.Cfg.Document
	return project.NewBuilder(
		func(opts ...layout.Option) (*layout.Engine, error) {
			return env.NewEngine(append([]layout.Option{layout.WithCheckpoint(checkpoint(log))}, opts...)...)
		},
		project.Options{
			TitleFromFirstLine: doc.TitleFromFirstLine,
			TitleMaxLength:     doc.TitleMaxLength,
			Cover:              doc.Cover.Generate,
			Subtitle:           doc.Cover.Subtitle,
			IDScheme:           doc.IDScheme,
		},
		log.Named("project"),
	)
}

// process determines the input type (directory, archive with optional path
// inside, or single file) and processes it accordingly.
func process(ctx context.Context, src string, j *job) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, j); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		archive, err := source.IsArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if archive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, tail, "", j); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		kind, err := source.DetectFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if kind != source.KindUnknown && len(tail) == 0 {
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to process file: %w", err)
			}
			defer file.Close()
			return processDocument(ctx, file, kind, filepath.Base(head), j.images, j)
		}
		return fmt.Errorf("input was not recognized as text or pdf document (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree processing documents and archives. Failing
// documents are logged and skipped.
func processDir(ctx context.Context, dir string, j *job) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			j.log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			j.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		archive, err := source.IsArchiveFile(path)
		if err != nil {
			j.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if archive {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), j); err != nil {
				j.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		kind, err := source.DetectFile(path)
		if err != nil {
			j.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if kind == source.KindUnknown {
			j.log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			j.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processDocument(ctx, file, kind, src, j.images, j); err != nil {
			j.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive processes all documents inside archive under "pathIn".
// Images found under the same path are added to every document.
func processArchive(ctx context.Context, path, pathIn, pathOut string, j *job) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			j.log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	pathIn = filepath.ToSlash(pathIn)
	archived, err := source.ArchiveImages(path, pathIn)
	if err != nil {
		return err
	}
	images := append(append([]string(nil), j.images...), archived...)

	cp := state.EnvFromContext(ctx).CodePage

	return source.WalkArchive(path, pathIn, func(archive string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		kind, err := source.DetectArchived(f)
		if err != nil {
			j.log.Warn("Skipping file in archive", zap.String("archive", archive), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if kind == source.KindUnknown {
			j.log.Debug("Skipping file, not recognized as document", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			j.log.Error("Unable to process file in archive", zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		pathInArchive := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				j.log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if err := processDocument(ctx, r, kind, filepath.Join(pathOut, filepath.FromSlash(pathInArchive)), images, j); err != nil {
			j.log.Error("Unable to process file in archive", zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
}

// processDocument paginates single document. "src" is part of the source
// path (always including file name) relative to the original path: base
// name for a single file, relative path inside directory or archive
// otherwise.
func processDocument(ctx context.Context, r io.Reader, kind source.Kind, src string, images []string, j *job) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string
	pages := 0

	j.log.Info("Pagination starting", zap.String("from", src), zap.Stringer("kind", kind))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			j.log.Error("Pagination ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("pagination panic: %v", r)
		} else if rerr == nil {
			j.log.Info("Pagination completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.Int("pages", pages))
		}
	}(time.Now())

	doc, err := source.Read(src, kind, r, env.CodePage)
	if err != nil {
		return err
	}

	p, err := j.builder.FromText(ctx, project.Source{Name: doc.Name, Text: doc.Text, Images: images})
	if err != nil {
		return fmt.Errorf("unable to paginate %s: %w", src, err)
	}
	pages = len(p.Pages)

	outputName = buildOutputPath(p, src, j.dst, j.format, env)
	return writeProject(p, outputName, j.format, env, j.log)
}
