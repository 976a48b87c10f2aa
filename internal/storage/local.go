package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix префикс ссылок на сохраненные файлы
const URLPrefix = "/uploads/"

// ErrInvalidRef ссылка не указывает на файл хранилища
var ErrInvalidRef = errors.New("storage: invalid reference")

// LocalStore хранит файлы в каталоге на диске
type LocalStore struct {
	dir string
}

// NewLocalStore создает каталог при необходимости и возвращает LocalStore
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create upload dir %q: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir возвращает каталог хранилища
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save записывает данные в файл со случайным именем и возвращает ссылку /uploads/<name>
func (s *LocalStore) Save(_ context.Context, ext string, data []byte) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name := uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: failed to write %s: %w", name, err)
	}

	return URLPrefix + name, nil
}

// Delete удаляет файл по ссылке. Отсутствующий файл не считается ошибкой.
func (s *LocalStore) Delete(_ context.Context, ref string) error {
	name, err := nameFromRef(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: failed to delete %s: %w", name, err)
	}
	return nil
}

func nameFromRef(ref string) (string, error) {
	if !strings.HasPrefix(ref, URLPrefix) {
		return "", ErrInvalidRef
	}
	name := strings.TrimPrefix(ref, URLPrefix)
	if name == "" || name != path.Base(name) || name == ".." {
		return "", ErrInvalidRef
	}
	return name, nil
}
