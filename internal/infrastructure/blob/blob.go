package blob

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"smart-hire/internal/config"
)

var (
	ErrNotFound   = errors.New("blob not found")
	ErrInvalidKey = errors.New("invalid blob key")
)

// Store keeps uploaded résumé files. Put returns the reference stored in
// Candidate.ResumeURL; Get accepts that reference back.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Get(ctx context.Context, ref string) ([]byte, error)
}

func New(ctx context.Context, cfg config.BlobConfig) (Store, error) {
	switch cfg.Driver {
	case config.BlobDriverS3:
		return NewS3(ctx, cfg)
	case config.BlobDriverLocal, "":
		return NewLocal(cfg.Dir)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
	}
}

// cleanKey rejects keys that would escape the store root.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return cleaned, nil
}
