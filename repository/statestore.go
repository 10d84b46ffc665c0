package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/QuangTung97/textdrip/model"
)

// StateStore is the durable campaign state table, one record per match key.
type StateStore interface {
	Load() (map[string]model.CampaignState, error)
	Save(states map[string]model.CampaignState) error
}

type fileStateStore struct {
	path string
}

// NewFileStateStore ...
func NewFileStateStore(path string) StateStore {
	return &fileStateStore{path: path}
}

// Load returns an empty table when the state file does not exist yet.
func (s *fileStateStore) Load() (map[string]model.CampaignState, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]model.CampaignState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	states := map[string]model.CampaignState{}
	err = json.Unmarshal(data, &states)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return states, nil
}

// Save writes the whole table to a temporary file, syncs it, then renames
// it over the state file. A crash mid-save never exposes a partial write.
func (s *fileStateStore) Save(states map[string]model.CampaignState) error {
	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	_, err = file.Write(data)
	if err == nil {
		err = file.Sync()
	}
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("save state: %w", err)
	}

	err = os.Rename(tmpPath, s.path)
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
