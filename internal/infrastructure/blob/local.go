package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalPrefix is prepended to keys to form references for files on disk.
const LocalPrefix = "/resumes/"

type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "data/resumes"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	p := filepath.Join(l.dir, filepath.FromSlash(k))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return LocalPrefix + k, nil
}

func (l *Local) Get(_ context.Context, ref string) ([]byte, error) {
	k, err := cleanKey(strings.TrimPrefix(ref, LocalPrefix))
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filepath.Join(l.dir, filepath.FromSlash(k)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
