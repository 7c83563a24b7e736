// Package source reads input documents (plain text, markdown, PDF, zip
// archives holding them) and collects image references for pagination.
package source

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
)

// Document is a single source prepared for pagination.
type Document struct {
	// Name is source path relative to processed root: base file name for
	// single files, path inside directory or archive otherwise.
	Name   string
	Kind   Kind
	Text   string
	Images []string
}

// Read loads document content according to its kind. PDF needs random access
// so its content is read into memory first. When text has no BOM it is
// decoded with cp if specified, otherwise assumed to be UTF-8.
func Read(name string, kind Kind, r io.Reader, cp encoding.Encoding) (*Document, error) {
	doc := &Document{Name: name, Kind: kind}

	switch kind {
	case KindText:
		text, err := ReadText(r, cp)
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", name, err)
		}
		doc.Text = text
	case KindPDF:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", name, err)
		}
		if doc.Text, err = ReadPDF(bytes.NewReader(data), int64(len(data))); err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported document %s", name)
	}
	return doc, nil
}

// DetectArchived detects kind of file inside archive.
func DetectArchived(f *zip.File) (Kind, error) {
	head, err := readArchived(f, headSize)
	if err != nil {
		return KindUnknown, err
	}
	return DetectKind(f.Name, head), nil
}
