package mockstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Collections served by the store. The on-disk format is a single JSON
// document with these top-level keys, the same shape json-server reads from
// a db.json.
const (
	ColProducts  = "products"
	ColCustomers = "customers"
	ColUsers     = "users"
)

var collectionNames = []string{ColProducts, ColCustomers, ColUsers}

// Store is a flat document store backing the development backend. Documents
// are schemaless JSON objects keyed by an "id" field; collection order is
// insertion order. Every mutation is applied under one lock and persisted
// whole, so a PATCH behaves as a single atomic document merge, which is the
// contract the client's compound update relies on.
type Store struct {
	mu          sync.Mutex
	path        string
	collections map[string][]map[string]any
}

// Open loads the store from path, starting empty if the file does not exist.
// An empty path keeps the store memory-only (used by tests).
func Open(path string) (*Store, error) {
	s := &Store{
		path:        path,
		collections: make(map[string][]map[string]any),
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &s.collections); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}
	for _, name := range collectionNames {
		if s.collections[name] == nil {
			s.collections[name] = []map[string]any{}
		}
	}
	return s, nil
}

// List returns the collection in insertion order. Documents are copies;
// callers can read or marshal them without holding the store lock.
func (s *Store) List(name string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.collections[name]))
	for i, doc := range s.collections[name] {
		out[i] = cloneDoc(doc)
	}
	return out
}

// Get returns a copy of the document with the given id.
func (s *Store) Get(name, id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.collections[name] {
		if docID(doc) == id {
			return cloneDoc(doc), true
		}
	}
	return nil, false
}

// Insert appends a document, assigning a fresh id when the client did not
// supply one, and persists. The insert is rolled back when persisting fails.
func (s *Store) Insert(name string, doc map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := cloneDoc(doc)
	if docID(stored) == "" {
		stored["id"] = uuid.NewString()
	}
	s.collections[name] = append(s.collections[name], stored)
	if err := s.persistLocked(); err != nil {
		s.collections[name] = s.collections[name][:len(s.collections[name])-1]
		return nil, err
	}
	return cloneDoc(stored), nil
}

// Patch shallow-merges patch into the document with the given id: every key
// replaces the stored value whole, arrays included. The id field cannot be
// rewritten. The merge is built on a copy and swapped in only after it
// persists, so a disk error leaves the stored document unchanged.
func (s *Store) Patch(name, id string, patch map[string]any) (map[string]any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range s.collections[name] {
		if docID(doc) != id {
			continue
		}
		merged := cloneDoc(doc)
		for k, v := range patch {
			if k == "id" {
				continue
			}
			merged[k] = cloneValue(v)
		}
		s.collections[name][i] = merged
		if err := s.persistLocked(); err != nil {
			s.collections[name][i] = doc
			return nil, true, err
		}
		return cloneDoc(merged), true, nil
	}
	return nil, false, nil
}

// Delete removes the document with the given id and persists, restoring the
// document when persisting fails.
func (s *Store) Delete(name, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[name]
	for i, doc := range docs {
		if docID(doc) == id {
			s.collections[name] = append(docs[:i:i], docs[i+1:]...)
			if err := s.persistLocked(); err != nil {
				s.collections[name] = docs
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

// SeedUsers inserts the given users if the user collection is empty.
func (s *Store) SeedUsers(users []map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.collections[ColUsers]) > 0 {
		return nil
	}
	for _, u := range users {
		if docID(u) == "" {
			u["id"] = uuid.NewString()
		}
		s.collections[ColUsers] = append(s.collections[ColUsers], u)
	}
	return s.persistLocked()
}

// persistLocked writes the whole store atomically via a temp file rename.
// Callers must hold s.mu.
func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.collections, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func docID(doc map[string]any) string {
	id, _ := doc["id"].(string)
	return id
}

// cloneDoc deep-copies a document so store internals never escape the lock.
func cloneDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneDoc(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
