package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/orienteer/mapio"
)

var (
	// ErrMapNotFound indicates a map name with no stored record.
	ErrMapNotFound = errors.New("store: map not found")

	// ErrEmptyName indicates an empty map name.
	ErrEmptyName = errors.New("store: map name is empty")
)

const openTimeout = 5 * time.Second

// Store is a handle on the database file. It is safe for concurrent use.
type Store struct {
	db  *bolthold.Store
	now func() time.Time
}

// Open opens or creates the database at path, creating parent directories.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "store: create directory")
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      openTimeout,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %s", path)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

// SaveMap stores doc under name, replacing any earlier version.
func (s *Store) SaveMap(name string, doc *mapio.Document) error {
	if name == "" {
		return ErrEmptyName
	}
	rec := &MapRecord{
		Name:     name,
		Document: *doc,
		Vertices: len(doc.Vertices),
		Edges:    len(doc.Edges),
		SavedAt:  s.now().Unix(),
	}

	return errors.Wrapf(s.db.Upsert(name, rec), "store: save map %q", name)
}

// LoadMap returns the document stored under name.
func (s *Store) LoadMap(name string) (*mapio.Document, error) {
	var rec MapRecord
	if err := s.db.Get(name, &rec); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, errors.Wrapf(ErrMapNotFound, "%q", name)
		}

		return nil, errors.Wrapf(err, "store: load map %q", name)
	}

	return &rec.Document, nil
}

// ListMaps returns every stored map ordered by name.
func (s *Store) ListMaps() ([]MapRecord, error) {
	var recs []MapRecord
	if err := s.db.Find(&recs, nil); err != nil {
		return nil, errors.Wrap(err, "store: list maps")
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })

	return recs, nil
}

// DeleteMap removes the map and its run history.
func (s *Store) DeleteMap(name string) error {
	if err := s.db.Delete(name, &MapRecord{}); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return errors.Wrapf(ErrMapNotFound, "%q", name)
		}

		return errors.Wrapf(err, "store: delete map %q", name)
	}
	if err := s.db.DeleteMatching(&RunRecord{}, bolthold.Where("Map").Eq(name)); err != nil {
		return errors.Wrapf(err, "store: delete runs of %q", name)
	}

	return nil
}

// RecordRun appends rec to the run history and sets its ID.
func (s *Store) RecordRun(rec *RunRecord) error {
	rec.CreatedAt = s.now().UnixNano()

	return errors.Wrap(s.db.Insert(bolthold.NextSequence(), rec), "store: record run")
}

// Runs returns the newest limit runs of mapName, newest first. An empty
// mapName selects every map; limit <= 0 means no limit.
func (s *Store) Runs(mapName string, limit int) ([]RunRecord, error) {
	var q *bolthold.Query
	if mapName != "" {
		q = bolthold.Where("Map").Eq(mapName).Index("Map")
	}

	var recs []RunRecord
	if err := s.db.Find(&recs, q); err != nil {
		return nil, errors.Wrap(err, "store: list runs")
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CreatedAt != recs[j].CreatedAt {
			return recs[i].CreatedAt > recs[j].CreatedAt
		}

		return recs[i].ID > recs[j].ID
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	return recs, nil
}
