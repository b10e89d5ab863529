package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ShariqueMemon11/Ai-chatbot/internal/domain"
)

// Store persists the knowledge document as a single pretty-printed JSON file
// so it stays diffable and hand-editable. The document is the only unit of
// persistence: Load reads it whole, Save rewrites it whole.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the knowledge document from disk. It never fails outward: a
// missing or malformed file is repaired to the empty document so startup
// always succeeds.
func (s *Store) Load() *domain.KnowledgeDocument {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Knowledge file unreadable, starting empty",
				slog.String("path", s.path), slog.Any("error", err))
		}
		return domain.NewKnowledgeDocument()
	}

	var doc domain.KnowledgeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("Knowledge file corrupt, starting empty",
			slog.String("path", s.path), slog.Any("error", err))
		return domain.NewKnowledgeDocument()
	}

	doc.Normalize()
	return &doc
}

// Save writes the whole document to disk with 2-space indentation. Write
// errors surface to the caller; the in-memory document is untouched so a
// later save can still capture it.
func (s *Store) Save(doc *domain.KnowledgeDocument) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create knowledge dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal knowledge document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write knowledge file: %w", err)
	}

	return nil
}
