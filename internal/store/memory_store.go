package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by unit tests. Documents are kept
// as bson maps in insertion order and round-tripped through bson marshalling
// so that decoding behaves the same as with the Mongo-backed store.
type MemoryStore struct {
	mu    sync.RWMutex
	colls map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{colls: make(map[string][]bson.M)}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	m["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.colls[collection] = append(s.colls[collection], m)
	return id.Hex(), nil
}

func (s *MemoryStore) FindMany(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []bson.M
	for _, m := range s.colls[collection] {
		if matches(m, filter) {
			matched = append(matched, m)
		}
	}

	outv := reflect.ValueOf(out)
	if outv.Kind() != reflect.Ptr || outv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a pointer to a slice, got %T", out)
	}
	slice := reflect.MakeSlice(outv.Elem().Type(), 0, len(matched))
	for _, m := range matched {
		raw, err := bson.Marshal(m)
		if err != nil {
			return err
		}
		elem := reflect.New(outv.Elem().Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	outv.Elem().Set(slice)
	return nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.colls[collection]
	for i, m := range docs {
		if oid, ok := m["_id"].(primitive.ObjectID); ok && oid == id {
			s.colls[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.colls[collection] {
		if oid, ok := m["_id"].(primitive.ObjectID); ok && oid == id {
			for k, v := range set {
				m[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.colls))
	for name := range s.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Name() string { return "memory" }

// matches reports whether a document satisfies an exact-match filter.
// An empty filter matches every document.
func matches(m bson.M, filter bson.M) bool {
	for k, want := range filter {
		got, ok := m[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}
