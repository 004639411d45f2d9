package naming

import (
	"fmt"
	"os"
	"path/filepath"
)

// TargetPath returns dir/<stem>.html without any collision probing. Dry-run
// previews report this unsuffixed projection; only live copies call
// [ResolveCollision]. A preview against a target directory that already
// holds files from an earlier live run can therefore show a path the real
// run would suffix.
func TargetPath(dir, stem string) string {
	return filepath.Join(dir, stem+Ext)
}

// ResolveCollision returns the first free target path for stem inside dir,
// probing the filesystem and appending _<n> (n starting at 1) to the stem
// until no file exists at the candidate path. Within one pass, earlier
// copies land on disk before later ones probe, so two sources sharing a
// stem never overwrite each other.
func ResolveCollision(dir, stem string) string {
	target := TargetPath(dir, stem)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(target); err != nil {
			return target
		}
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, Ext))
	}
}
