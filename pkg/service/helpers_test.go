package service

import (
	"os"
	"path/filepath"

	"github.com/mattsolo1/grove-palette/pkg/catalog"
)

func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
}

func compareFold(a, b string) int {
	return catalog.Compare(a, b)
}
