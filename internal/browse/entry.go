package browse

import "time"

// Entry is one child of the browsed directory.
//
// Size is set only for regular files whose metadata could be read;
// ModTime is nil when the stat failed. The two fields are independent:
// a partial stat still produces a listed entry.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    *int64
	ModTime *time.Time
}
