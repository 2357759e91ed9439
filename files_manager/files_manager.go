package files_manager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"png2pdf/contracts"
)

func isPNG(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".png")
}

// GetPNGPaths resolves input into the list of PNG files to convert. A directory
// yields its PNG entries in natural order, a single PNG file yields itself.
func GetPNGPaths(input string) ([]string, error) {
	stat, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", contracts.ErrInvalidInput, input)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", contracts.ErrIO, input, err)
	}

	if !stat.IsDir() {
		if stat.Mode().IsRegular() && isPNG(input) {
			return []string{input}, nil
		}
		return nil, fmt.Errorf("%w: %s", contracts.ErrInvalidInput, input)
	}

	pngFiles, err := listPNGFiles(input)
	if err != nil {
		return nil, err
	}
	if len(pngFiles) == 0 {
		return nil, fmt.Errorf("%w: %s", contracts.ErrNoImagesFound, input)
	}
	SortNatural(pngFiles)
	return pngFiles, nil
}

func listPNGFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read directory %s: %v", contracts.ErrIO, dir, err)
	}
	pngFiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		// skip macOS resource forks, they carry the .png suffix but are not images
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "._") {
			continue
		}
		if isPNG(entry.Name()) {
			pngFiles = append(pngFiles, filepath.Join(dir, entry.Name()))
		}
	}
	return pngFiles, nil
}
