package tracker

import (
	"os"

	json "github.com/goccy/go-json"

	"mindtrackerd/internal/models"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/services"
	"mindtrackerd/internal/tracker/interfaces"
)

type FileManager struct {
	state      services.StateServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, state services.StateServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		state:      state,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	env := f.state.Snapshot()

	jsonData, err := json.Marshal(env)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores persisted state. A missing file means a fresh
// device. A blob that cannot be decompressed or parsed is treated as no
// data, never as a fatal error.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "State file is not readable, starting empty: %s", err)
		return nil
	}

	// Try current envelope format
	var env models.Envelope
	if err := json.Unmarshal(decompressedData, &env); err == nil && env.Version >= models.StorageVersion {
		f.state.Restore(&env)
		return nil
	}

	// Try legacy format: a bare date->entry map with epoch-ms timestamps
	f.logger.Warnf(providers.TypeApp, "Inconsistent state file found, try to migrate from old data format")
	var legacy map[string]*models.LegacyEntry
	if err := json.Unmarshal(decompressedData, &legacy); err == nil && len(legacy) > 0 {
		entries := make(map[string]*models.JournalEntry, len(legacy))
		for date, le := range legacy {
			entries[date] = le.Upgrade()
		}
		f.state.Restore(&models.Envelope{Version: models.StorageVersion, Entries: entries})
		f.logger.Warnf(providers.TypeApp, "Migration from legacy entry store successful")
		return nil
	}

	f.logger.Warnf(providers.TypeApp, "Migration failed, starting empty")
	return nil
}
