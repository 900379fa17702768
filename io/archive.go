package io

import (
	"fmt"

	"github.com/mholt/archiver/v3"
)

// ArchiveOutputs bundles the written vertex files into a single archive at
// dst for transfer to the machine running the simulator. The archive
// format follows from dst's extension (.tar.gz, .zip, ...).
func ArchiveOutputs(dst string, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("nothing to archive into %s", dst)
	}
	return archiver.Archive(files, dst)
}
