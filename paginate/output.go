package paginate

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"folio/common"
	"folio/layout"
	"folio/project"
	"folio/state"
)

// writeProject saves project into outputName. Existing file is replaced
// only when overwrite was requested.
func writeProject(p *project.Project, outputName string, format common.OutputFmt, env *state.LocalEnv, log *zap.Logger) (err error) {
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	if err := project.Write(out, p, format); err != nil {
		return err
	}

	// Store result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", p.ID, filepath.Ext(outputName)), outputName)
		env.Rpt.StoreData(fmt.Sprintf("pages-%s.txt", p.ID), []byte(layout.Dump(p.Pages)))
	}
	return nil
}
