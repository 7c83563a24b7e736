package project

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"folio/common"
)

// Write serializes project in requested format.
func Write(w io.Writer, p *Project, format common.OutputFmt) error {
	switch format {
	case common.OutputFmtJson:
		enc := json.NewEncoder(w)
		// markup must stay readable
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("unable to encode project as json: %w", err)
		}
	case common.OutputFmtYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("unable to encode project as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("unable to encode project as yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
	return nil
}

// FormatFromName selects format by file extension, json is assumed unless
// name ends with .yaml or .yml.
func FormatFromName(name string) common.OutputFmt {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return common.OutputFmtYaml
	}
	return common.OutputFmtJson
}

// Read loads project previously produced by Write. Unknown fields are
// rejected.
func Read(r io.Reader, format common.OutputFmt) (*Project, error) {
	var p Project
	switch format {
	case common.OutputFmtJson:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("unable to decode json project: %w", err)
		}
	case common.OutputFmtYaml:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("unable to decode yaml project: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported project format %s", format)
	}
	return &p, nil
}
