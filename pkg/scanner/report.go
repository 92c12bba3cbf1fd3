package scanner

import "fmt"

// Entry is one file and its size.
type Entry struct {
	Path string
	Size int64
}

// Exclusion records an entry skipped during a scan and the pattern that
// excluded it.
type Exclusion struct {
	Path    string
	Pattern string
	IsDir   bool
}

// Report is the result of one scan.
type Report struct {
	Root       string
	TotalBytes int64
	FileCount  int
	DirCount   int
	ErrorCount int

	// SkippedMounts counts directories left unscanned because they sit on
	// a different filesystem than the root.
	SkippedMounts int

	// TopFiles holds the largest files found, biggest first, at most Top.
	Top      int
	TopFiles []Entry

	// Exclusions lists skipped entries in walk order, each attributed to
	// the rule that excluded it.
	Exclusions []Exclusion
}

func (r *Report) addExclusion(path, pattern string, isDir bool) {
	r.Exclusions = append(r.Exclusions, Exclusion{
		Path:    path,
		Pattern: pattern,
		IsDir:   isDir,
	})
}

// ExcludedDirs counts excluded directories.
func (r *Report) ExcludedDirs() int {
	n := 0
	for _, e := range r.Exclusions {
		if e.IsDir {
			n++
		}
	}
	return n
}

// ExcludedFiles counts excluded files.
func (r *Report) ExcludedFiles() int {
	return len(r.Exclusions) - r.ExcludedDirs()
}

// HumanBytes converts a byte count to a readable IEC string.
func HumanBytes(b int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
		tib = 1 << 40
	)
	switch {
	case b >= tib:
		return fmt.Sprintf("%.2f TiB", float64(b)/float64(tib))
	case b >= gib:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gib))
	case b >= mib:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mib))
	case b >= kib:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kib))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
