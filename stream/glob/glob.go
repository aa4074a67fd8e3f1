// Package glob provides pull-stream sources for file path matching
// and directory traversal. It enables file system walks as stream
// pipelines.
package glob

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lguimbarda/min-stream/stream"
)

// FileInfo contains information about a file or directory.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	Mode    fs.FileMode
	IsDir   bool
	ModTime int64
}

// Stat retrieves the FileInfo for a path.
func Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return fileInfo(path, info), nil
}

func fileInfo(path string, info fs.FileInfo) FileInfo {
	return FileInfo{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		Mode:    info.Mode(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime().Unix(),
	}
}

// Match creates an extractor that yields file paths matching a glob
// pattern. The pattern is expanded with filepath.Glob on the first
// Advance.
func Match(pattern string) *Matcher {
	return &Matcher{expand: func() ([]string, error) {
		return filepath.Glob(pattern)
	}}
}

// ListDir creates an extractor that yields the immediate children of
// a directory. The directory is read on the first Advance.
func ListDir(dir string) *Matcher {
	return &Matcher{expand: func() ([]string, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		paths := make([]string, len(entries))
		for i, entry := range entries {
			paths[i] = filepath.Join(dir, entry.Name())
		}
		return paths, nil
	}}
}

// Matcher walks a lazily expanded list of paths one Advance at a
// time.
type Matcher struct {
	expand   func() ([]string, error)
	expanded bool
	paths    []string
	index    int
	started  bool
	done     bool
	err      error
}

func (m *Matcher) Advance() bool {
	if m.done {
		return false
	}
	if !m.expanded {
		m.expanded = true
		paths, err := m.expand()
		if err != nil {
			m.err = err
			m.done = true
			return false
		}
		m.paths = paths
	}
	if m.index >= len(m.paths) {
		m.done = true
		return false
	}
	m.index++
	m.started = true
	return true
}

func (m *Matcher) Get() string {
	if !m.started {
		panic("stream: Get called before a successful Advance")
	}
	return m.paths[m.index-1]
}

// Clone returns a matcher at the same position with independent
// progress. An expanded path list is shared, not recomputed.
func (m *Matcher) Clone() stream.Extractor[string] {
	c := *m
	return &c
}

// Err returns the error the expansion failed with, if any. It must be
// checked once Advance has returned false.
func (m *Matcher) Err() error {
	return m.err
}

// MatchBase reports whether the base name of a path matches the glob
// pattern. It is shaped for use with Stream.Filter.
func MatchBase(pattern string) func(path string) bool {
	return func(path string) bool {
		ok, err := filepath.Match(pattern, filepath.Base(path))
		return err == nil && ok
	}
}

// Walk creates an extractor that yields every file and directory
// under root in depth-first lexical order, the root included. Each
// directory is read only when the walk descends into it. The first
// filesystem error stops the walk and surfaces through Err.
func Walk(root string) *Walker {
	return &Walker{root: root}
}

// WalkFiles creates a Walk that yields only regular entries, skipping
// directories.
func WalkFiles(root string) *Walker {
	return &Walker{root: root, keep: func(info FileInfo) bool { return !info.IsDir }}
}

// WalkDirs creates a Walk that yields only directories.
func WalkDirs(root string) *Walker {
	return &Walker{root: root, keep: func(info FileInfo) bool { return info.IsDir }}
}

type frame struct {
	dir     string
	entries []fs.DirEntry
	index   int
	loaded  bool
}

// Walker walks a directory tree one Advance at a time.
type Walker struct {
	root    string
	keep    func(FileInfo) bool
	stack   []frame
	opened  bool
	current FileInfo
	started bool
	done    bool
	err     error
}

func (w *Walker) Advance() bool {
	if w.done {
		return false
	}
	for {
		info, ok := w.next()
		if !ok {
			return false
		}
		if w.keep == nil || w.keep(info) {
			w.current = info
			w.started = true
			return true
		}
	}
}

func (w *Walker) next() (FileInfo, bool) {
	if !w.opened {
		w.opened = true
		info, err := os.Lstat(w.root)
		if err != nil {
			w.fail(err)
			return FileInfo{}, false
		}
		if info.IsDir() {
			w.stack = append(w.stack, frame{dir: w.root})
		}
		return fileInfo(w.root, info), true
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if !top.loaded {
			top.loaded = true
			entries, err := os.ReadDir(top.dir)
			if err != nil {
				w.fail(err)
				return FileInfo{}, false
			}
			top.entries = entries
		}
		if top.index >= len(top.entries) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		entry := top.entries[top.index]
		top.index++
		path := filepath.Join(top.dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			w.fail(err)
			return FileInfo{}, false
		}
		if entry.IsDir() {
			// Descend before the siblings; the directory itself is
			// yielded first, its contents read on a later Advance.
			w.stack = append(w.stack, frame{dir: path})
		}
		return fileInfo(path, info), true
	}
	w.done = true
	return FileInfo{}, false
}

func (w *Walker) fail(err error) {
	w.err = err
	w.done = true
}

func (w *Walker) Get() FileInfo {
	if !w.started {
		panic("stream: Get called before a successful Advance")
	}
	return w.current
}

// Clone returns a walker at the same position with independent
// progress. Directory listings already read are shared; unread
// directories are read separately by each walker.
func (w *Walker) Clone() stream.Extractor[FileInfo] {
	c := *w
	c.stack = append([]frame(nil), w.stack...)
	return &c
}

// Err returns the first filesystem error encountered. It must be
// checked once Advance has returned false. A completed walk leaves it
// nil.
func (w *Walker) Err() error {
	return w.err
}
