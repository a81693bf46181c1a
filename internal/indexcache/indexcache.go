// Package indexcache persists a parsed corpus index next to its source file
// so repeat invocations skip the full scan. The sidecar is invalidated when
// the source file's size or mtime changes.
package indexcache

import (
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
)

const currentVersion = 1

type Index struct {
	Version     int
	SourceSize  int64
	SourceMtime int64

	Words    []string
	Entries  map[string][]string
	Original map[string]string
}

func indexPath(sourcePath string) string {
	return sourcePath + ".wordtool.idx"
}

// Load returns the cached index for sourcePath, or ok=false when there is
// no usable sidecar (missing, stale, or written by another version).
func Load(sourcePath string) (*Index, bool, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, false, err
	}
	f, err := os.Open(indexPath(sourcePath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var idx Index
	if err := gob.NewDecoder(f).Decode(&idx); err != nil {
		return nil, false, nil
	}
	if idx.Version != currentVersion {
		return nil, false, nil
	}
	if idx.SourceSize != info.Size() || idx.SourceMtime != info.ModTime().Unix() {
		return nil, false, nil
	}
	return &idx, true, nil
}

// Save writes the sidecar. Failures are not fatal for callers; the corpus
// can always be rescanned.
func Save(sourcePath string, words []string, entries map[string][]string, original map[string]string) error {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return err
	}
	idx := Index{
		Version:     currentVersion,
		SourceSize:  info.Size(),
		SourceMtime: info.ModTime().Unix(),
		Words:       words,
		Entries:     entries,
		Original:    original,
	}
	target := indexPath(sourcePath)
	// A unique temp name keeps concurrent invocations from clobbering each
	// other's half-written sidecars.
	f, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := gob.NewEncoder(f).Encode(&idx); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, target)
}
