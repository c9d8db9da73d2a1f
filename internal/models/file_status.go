package models

// IndexState is git's classification of a path in the index.
type IndexState string

const (
	IndexModified IndexState = "modified"
	IndexAdded    IndexState = "added"
	IndexDeleted  IndexState = "deleted"
	IndexRenamed  IndexState = "renamed"
	IndexUnknown  IndexState = "unknown"
)

// FileStatus is one entry of `git status --porcelain`.
type FileStatus struct {
	Path     string
	Index    IndexState
	WorkTree byte
}

// ParseIndexState maps the porcelain X column to an IndexState.
func ParseIndexState(x byte) IndexState {
	switch x {
	case 'M':
		return IndexModified
	case 'A':
		return IndexAdded
	case 'D':
		return IndexDeleted
	case 'R':
		return IndexRenamed
	default:
		return IndexUnknown
	}
}

// Staged reports whether the file is eligible for the next commit.
func (f FileStatus) Staged() bool {
	switch f.Index {
	case IndexModified, IndexAdded, IndexDeleted, IndexRenamed:
		return true
	default:
		return false
	}
}

// StagedFiles filters statuses down to the staged entries, keeping order.
func StagedFiles(statuses []FileStatus) []FileStatus {
	staged := make([]FileStatus, 0, len(statuses))
	for _, s := range statuses {
		if s.Staged() {
			staged = append(staged, s)
		}
	}
	return staged
}
