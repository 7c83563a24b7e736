package source

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
)

func isImageFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, err
	}
	return IsImage(head), nil
}

// CollectImages returns paths of all image files under dir in natural order
// (2.png goes before 10.png). Files are recognized by content, extension does
// not matter.
func CollectImages(dir string) ([]string, error) {
	var images []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ok, err := isImageFile(path)
		if err != nil {
			return err
		}
		if ok {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to collect images from %s: %w", dir, err)
	}
	sort.Sort(natural.StringSlice(images))
	return images, nil
}

// ArchiveImages returns references to all image files inside archive under
// prefix in natural order.
func ArchiveImages(archive, prefix string) ([]string, error) {
	var images []string
	err := WalkArchive(archive, prefix, func(archive string, f *zip.File) error {
		head, err := readArchived(f, headSize)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", f.Name, err)
		}
		if IsImage(head) {
			images = append(images, ArchivedReference(archive, f))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to collect images from %s: %w", archive, err)
	}
	sort.Sort(natural.StringSlice(images))
	return images, nil
}
