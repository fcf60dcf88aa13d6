package migrate

import (
	"fmt"
	"os"
)

// filePerm applies only if the file vanished between read and write;
// existing files keep their mode.
const filePerm = 0o644

// writeBack overwrites path with content.
func writeBack(path string, content []byte) error {
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
