package service

import (
	"fmt"
	"os"
	"path/filepath"
)

// ============================================================
// File Storage
// ============================================================

// FileStorage раскладывает экспортированные чертежи по каталогам пресетов.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) PresetDir(presetID string) string {
	return filepath.Join(s.root, presetID)
}

func (s *FileStorage) SVGPath(presetID string) string {
	return filepath.Join(s.PresetDir(presetID), "diagram.svg")
}

func (s *FileStorage) PNGPath(presetID string) string {
	return filepath.Join(s.PresetDir(presetID), "diagram.png")
}

func (s *FileStorage) EnsureDir(presetID string) error {
	path := s.PresetDir(presetID)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir preset dir: %w", err)
	}
	return nil
}

func (s *FileStorage) SaveFile(presetID, target string, data []byte) error {
	if err := s.EnsureDir(presetID); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

// Remove удаляет все экспортированные файлы пресета.
func (s *FileStorage) Remove(presetID string) error {
	return os.RemoveAll(s.PresetDir(presetID))
}
