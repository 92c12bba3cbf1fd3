// Package scanner walks a directory tree, totals disk usage, and skips
// entries whose names match an exclude rule set.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/duscan/pkg/errors"
	"github.com/arthur-debert/duscan/pkg/logging"
	"github.com/arthur-debert/duscan/pkg/paths"
	"github.com/arthur-debert/duscan/pkg/rules"
)

// DefaultTop is the number of largest files reported when no count is
// configured.
const DefaultTop = 10

// Scanner walks directory trees and applies an exclude rule set.
type Scanner struct {
	excludes       *rules.Set
	fsys           fs.FS // non-nil only in tests
	top            int
	followSymlinks bool
	crossDevices   bool
	logger         zerolog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithTop sets how many largest files the report keeps.
func WithTop(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.top = n
		}
	}
}

// WithFollowSymlinks makes the scanner count symlink targets instead of
// the links themselves, descending into symlinked directories. A directory
// reached through more than one link is counted once.
func WithFollowSymlinks(follow bool) Option {
	return func(s *Scanner) {
		s.followSymlinks = follow
	}
}

// WithCrossDevices controls whether the scan descends into directories on
// a different filesystem than the scan root. Crossing is on by default.
func WithCrossDevices(cross bool) Option {
	return func(s *Scanner) {
		s.crossDevices = cross
	}
}

// WithFS makes the scanner walk the given filesystem instead of the OS
// filesystem rooted at the scan path. Used for testing. Device boundaries
// cannot be detected on an injected filesystem.
func WithFS(fsys fs.FS) Option {
	return func(s *Scanner) {
		s.fsys = fsys
	}
}

// New creates a scanner that skips entries matching excludes. A nil
// excludes set means nothing is excluded.
func New(excludes *rules.Set, opts ...Option) *Scanner {
	if excludes == nil {
		excludes = rules.NewSet()
	}
	s := &Scanner{
		excludes:     excludes,
		top:          DefaultTop,
		crossDevices: true,
		logger:       logging.GetLogger("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scanState carries per-scan bookkeeping across recursive walks.
type scanState struct {
	fsys    fs.FS
	osRoot  string // "" when walking an injected fs.FS
	report  *Report
	rootDev uint64
	devOK   bool
	visited map[string]bool // resolved symlink-dir targets already walked
}

// Scan walks root and returns usage totals. Excluded directories are
// pruned whole; unreadable entries are counted and skipped, not fatal.
func (s *Scanner) Scan(root string) (*Report, error) {
	start := time.Now()
	defer logging.LogDuration(start, "scan")

	s.logger.Debug().
		Str("root", root).
		Int("ruleCount", s.excludes.Len()).
		Bool("followSymlinks", s.followSymlinks).
		Bool("crossDevices", s.crossDevices).
		Msg("Starting scan")

	st := &scanState{
		fsys:    s.fsys,
		report:  &Report{Root: root, Top: s.top},
		visited: make(map[string]bool),
	}

	if st.fsys == nil {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrScanRoot,
				"cannot scan %s", root)
		}
		st.fsys = os.DirFS(root)
		st.osRoot = root
		st.rootDev, st.devOK = deviceOf(info)
		if real, err := filepath.EvalSymlinks(root); err == nil {
			st.visited[real] = true
		}
	}

	if err := s.walk(st, "."); err != nil {
		return nil, err
	}

	st.report.finish()

	s.logger.Info().
		Str("root", root).
		Int64("totalBytes", st.report.TotalBytes).
		Int("files", st.report.FileCount).
		Int("dirs", st.report.DirCount).
		Int("excluded", len(st.report.Exclusions)).
		Int("skippedMounts", st.report.SkippedMounts).
		Msg("Scan complete")

	return st.report, nil
}

func (s *Scanner) walk(st *scanState, base string) error {
	return fs.WalkDir(st.fsys, base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == "." {
				return errors.Wrapf(err, errors.ErrScanRoot, "cannot scan %s", st.report.Root)
			}
			s.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			st.report.ErrorCount++
			return nil
		}

		// The per-root override file configures the scan, it is not part
		// of the usage being measured.
		if path == paths.RootConfigFileName {
			return nil
		}

		if path != "." {
			if rule := s.excludes.MatchingRule(d.Name()); rule != nil {
				s.logger.Debug().
					Str("path", path).
					Str("pattern", rule.Pattern()).
					Bool("isDir", d.IsDir()).
					Msg("Excluded by rule")
				st.report.addExclusion(path, rule.Pattern(), d.IsDir())
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			if path != "." {
				if !s.crossDevices && st.devOK {
					if skip := s.skipOtherDevice(st, path, d); skip {
						return fs.SkipDir
					}
				}
				st.report.DirCount++
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 && s.followSymlinks {
			return s.followLink(st, path)
		}

		info, err := d.Info()
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Cannot stat entry")
			st.report.ErrorCount++
			return nil
		}

		st.report.addFile(path, info.Size())

		return nil
	})
}

// skipOtherDevice reports whether path sits on a different filesystem
// than the scan root.
func (s *Scanner) skipOtherDevice(st *scanState, path string, d fs.DirEntry) bool {
	info, err := d.Info()
	if err != nil {
		return false
	}
	dev, ok := deviceOf(info)
	if !ok || dev == st.rootDev {
		return false
	}
	s.logger.Debug().Str("path", path).Msg("Skipping mount point on other filesystem")
	st.report.SkippedMounts++
	return true
}

// followLink counts a symlink's target: files by their real size,
// directories by walking them. Already-visited targets are skipped so
// link cycles terminate.
func (s *Scanner) followLink(st *scanState, path string) error {
	info, err := fs.Stat(st.fsys, path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("Cannot resolve symlink")
		st.report.ErrorCount++
		return nil
	}

	if !info.IsDir() {
		st.report.addFile(path, info.Size())
		return nil
	}

	key := path
	if st.osRoot != "" {
		real, err := filepath.EvalSymlinks(filepath.Join(st.osRoot, path))
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Cannot resolve symlink")
			st.report.ErrorCount++
			return nil
		}
		key = real
	}
	if st.visited[key] {
		s.logger.Debug().Str("path", path).Msg("Symlink target already counted")
		return nil
	}
	st.visited[key] = true

	return s.walk(st, path)
}

// addFile keeps the largest files bounded at twice the report size before
// compacting, so big trees don't hold every path in memory.
func (r *Report) addFile(path string, size int64) {
	r.FileCount++
	r.TotalBytes += size
	r.TopFiles = append(r.TopFiles, Entry{Path: path, Size: size})
	if len(r.TopFiles) > 2*r.Top {
		r.compactTopFiles()
	}
}

func (r *Report) compactTopFiles() {
	sort.Slice(r.TopFiles, func(i, j int) bool {
		return r.TopFiles[i].Size > r.TopFiles[j].Size
	})
	r.TopFiles = r.TopFiles[:r.Top]
}

func (r *Report) finish() {
	sort.Slice(r.TopFiles, func(i, j int) bool {
		return r.TopFiles[i].Size > r.TopFiles[j].Size
	})
	if len(r.TopFiles) > r.Top {
		r.TopFiles = r.TopFiles[:r.Top]
	}
}
