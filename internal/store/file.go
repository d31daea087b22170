package store

import (
	"context"
	"fmt"
	"os"

	"github.com/lox/pebbles/internal/fileutil"
	"github.com/lox/pebbles/internal/pebbles"
)

// File keeps the slot in a MessagePack file that is replaced atomically on
// every save.
type File struct {
	path string
	perm os.FileMode
}

// NewFile returns a store backed by path.
func NewFile(path string) *File {
	return &File{path: path, perm: 0o600}
}

// Path returns the backing file.
func (f *File) Path() string { return f.path }

func (f *File) Load(ctx context.Context) (*pebbles.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok, err := fileutil.ReadFileIfExists(f.path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if !ok {
		return nil, nil
	}
	s, err := decodeSlot(data)
	if err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", f.path, err)
	}
	return s, nil
}

func (f *File) Save(ctx context.Context, s *pebbles.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(f.path, encodeSlot(nil, s), f.perm); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
