package filestore

import "time"

// Orphans returns the files that no reference points at and whose
// modification time is before cutoff. refs may be bare names or full
// legacy paths.
func Orphans(files []FileInfo, refs []string, cutoff time.Time) []FileInfo {
	used := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if name := Normalize(ref); name != "" {
			used[name] = struct{}{}
		}
	}

	var orphans []FileInfo
	for _, f := range files {
		if _, ok := used[f.Name]; ok {
			continue
		}
		if !f.ModTime.Before(cutoff) {
			continue
		}
		orphans = append(orphans, f)
	}
	return orphans
}
