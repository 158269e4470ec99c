package usagelog

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

// FileStore appends records as JSON lines to a single file. It is the
// default backend for CLI use.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed log named name under dir. An empty dir
// defaults to scenegen's folder in the user config directory.
func NewFileStore(dir, name string) (*FileStore, error) {
	if err := errors.ValidateLogName(name); err != nil {
		return nil, err
	}
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "scenegen", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, name+".jsonl")}, nil
}

// Append writes one record as a JSON line.
func (s *FileStore) Append(ctx context.Context, rec Record) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// List reads every record in append order. A missing file is an empty log.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var recs []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			// Skip corrupt lines rather than losing the whole log.
			continue
		}
		recs = append(recs, rec)
	}
	return recs, scanner.Err()
}

// Clear truncates the log file.
func (s *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
