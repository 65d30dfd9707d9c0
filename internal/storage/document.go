package storage

import (
	"encoding/json"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/logging"
	"github.com/notepal/notepal/internal/model"
)

// ExportFilename is the fixed default filename for exported documents.
const ExportFilename = "notepal-data.json"

// DocumentStore persists the single Store aggregate as one JSON document
// under a fixed key. The Store is always written and read as a whole;
// there are no partial writes.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a document store over the given database.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Load reads the persisted document. An absent document yields the
// built-in default Store; an unparsable one yields a CorruptDataError so
// the caller can surface it instead of silently discarding data.
func (s *DocumentStore) Load() (*model.Store, error) {
	raw, err := s.db.GetBytes(model.KeyDocument)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return model.DefaultStore(), nil
		}
		return nil, errors.NewSystemErrorWithOp("load", "failed to read persisted data", err)
	}

	store := &model.Store{}
	if err := json.Unmarshal(raw, store); err != nil {
		return nil, errors.NewCorruptDataError(model.KeyDocument, err)
	}

	store.Normalize()
	return store, nil
}

// Save serializes the full Store and writes it to the single persisted
// slot. The disk space check surfaces quota exhaustion before badger
// turns it into a harder failure mid-write.
func (s *DocumentStore) Save(store *model.Store) error {
	if s.db.Path() != "" {
		if err := CheckDiskSpace(s.db.Path()); err != nil {
			return errors.NewStorageError("save", err)
		}
	}

	data, err := json.Marshal(store)
	if err != nil {
		return errors.NewStorageError("serialize", err)
	}

	if err := s.db.SetBytes(model.KeyDocument, data); err != nil {
		return errors.NewStorageError("save", err)
	}

	logging.DebugLog("document saved",
		logging.KeyOperation, "save",
		"bytes", len(data),
		logging.KeyCount, len(store.Notes)+len(store.Tasks)+len(store.Reminders))
	return nil
}

// Import parses an external JSON document, validates that the notes and
// tasks collections are present and array-typed, back-fills missing
// fields with the same defaulting rule as Load, and persists the result.
// On any error the previously persisted Store is untouched.
func (s *DocumentStore) Import(raw []byte) (*model.Store, error) {
	// Validate required collections on the raw shape first: Store's
	// UnmarshalJSON would mask a missing or wrong-typed array.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, errors.NewValidationError("document", "is not valid JSON")
	}
	for _, field := range []string{"notes", "tasks"} {
		rawField, ok := probe[field]
		if !ok {
			return nil, errors.NewValidationError(field, "is missing")
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(rawField, &arr); err != nil {
			return nil, errors.NewValidationError(field, "is not an array")
		}
	}

	store := &model.Store{}
	if err := json.Unmarshal(raw, store); err != nil {
		return nil, errors.NewValidationError("document", "could not be decoded")
	}
	store.Normalize()

	if err := s.Save(store); err != nil {
		return nil, err
	}

	logging.Info("document imported",
		logging.KeyOperation, "import",
		"notes", len(store.Notes),
		"tasks", len(store.Tasks))
	return store, nil
}

// Export serializes the full Store verbatim for download.
func (s *DocumentStore) Export(store *model.Store) ([]byte, error) {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return nil, errors.NewStorageError("export", err)
	}
	return data, nil
}
