package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"payout-analytics/internal/models"
	"payout-analytics/internal/shared/filestorages"
)

var (
	ErrRecordSetNotFound = errors.New("record set not found")
)

// RecordSetStore holds at most one record-set snapshot per caller. Put
// replaces any prior snapshot wholesale; there is no merge or append, and Get
// never observes a partially-written snapshot.
//
//go:generate mockgen -source=record_set_store.go -destination=./mocks/record_set_store_mock.go -package=mocks
type RecordSetStore interface {
	Put(ctx context.Context, callerID string, recordSet *models.RecordSet) error
	Get(ctx context.Context, callerID string) (*models.RecordSet, error)
}

type snapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

// NewSnapshotStore creates a RecordSetStore backed by atomic whole-file
// replacement in the file storage. The caller ID is opaque and is
// path-escaped before use as a storage key.
func NewSnapshotStore(fileStorage filestorages.FileStorage) RecordSetStore {
	return &snapshotStore{fileStorage: fileStorage, dir: "record-sets"}
}

func (s *snapshotStore) Put(ctx context.Context, callerID string, recordSet *models.RecordSet) error {
	jsonData, err := json.Marshal(recordSet)
	if err != nil {
		return fmt.Errorf("failed to marshal record set: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.key(callerID), bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to put record set: %w", err)
	}
	return nil
}

func (s *snapshotStore) Get(ctx context.Context, callerID string) (*models.RecordSet, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key(callerID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrRecordSetNotFound
		}
		return nil, fmt.Errorf("failed to get record set: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read record set: %w", err)
	}

	var recordSet models.RecordSet
	if err := json.Unmarshal(data, &recordSet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record set: %w", err)
	}
	return &recordSet, nil
}

func (s *snapshotStore) key(callerID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, url.PathEscape(callerID))
}
