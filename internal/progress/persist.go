package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/wjiaha0/hanzi/internal/model"
)

// Storage keys for the persisted documents.
const (
	ProgressKey = "hanzi_learning_progress"
	SettingsKey = "hanzi_learning_settings"
)

// KV is the durable key-value store the documents are written to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Load reads progress from kv, merged over defaults. A missing key yields
// defaults. Malformed content is logged and also yields defaults; only a
// failing read is returned as an error, together with the defaults.
func Load(ctx context.Context, kv KV, logger *log.Logger) (model.Progress, error) {
	p := model.DefaultProgress()
	raw, ok, err := kv.Get(ctx, ProgressKey)
	if err != nil {
		return p, fmt.Errorf("%w: load progress: %v", model.ErrPersistence, err)
	}
	if !ok {
		return p, nil
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		logf(logger, "stored progress is malformed, using defaults: %v", err)
		return model.DefaultProgress(), nil
	}
	if p.Learned == nil {
		p.Learned = []model.ItemID{}
	}
	if p.Mastery == nil {
		p.Mastery = map[model.ItemID]int{}
	}
	return sanitize(p), nil
}

// Save writes a snapshot of the tracker to kv.
func Save(ctx context.Context, kv KV, t *Tracker) error {
	return SaveProgress(ctx, kv, t.Snapshot())
}

// SaveProgress writes p to kv.
func SaveProgress(ctx context.Context, kv KV, p model.Progress) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: encode progress: %v", model.ErrPersistence, err)
	}
	if err := kv.Put(ctx, ProgressKey, string(b)); err != nil {
		return fmt.Errorf("%w: save progress: %v", model.ErrPersistence, err)
	}
	return nil
}

// LoadSettings reads settings from kv with the same fallback rules as Load.
// Stored values that fail validation are replaced by defaults.
func LoadSettings(ctx context.Context, kv KV, logger *log.Logger) (model.Settings, error) {
	s := model.DefaultSettings()
	raw, ok, err := kv.Get(ctx, SettingsKey)
	if err != nil {
		return s, fmt.Errorf("%w: load settings: %v", model.ErrPersistence, err)
	}
	if !ok {
		return s, nil
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		logf(logger, "stored settings are malformed, using defaults: %v", err)
		return model.DefaultSettings(), nil
	}
	if err := s.Validate(); err != nil {
		logf(logger, "stored settings are invalid, using defaults: %v", err)
		return model.DefaultSettings(), nil
	}
	return s, nil
}

// SaveSettings writes s to kv.
func SaveSettings(ctx context.Context, kv KV, s model.Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: encode settings: %v", model.ErrPersistence, err)
	}
	if err := kv.Put(ctx, SettingsKey, string(b)); err != nil {
		return fmt.Errorf("%w: save settings: %v", model.ErrPersistence, err)
	}
	return nil
}

// MergeBackup decodes a backup document over defaults. Unlike Load, malformed
// input is an error since it comes straight from the user.
func MergeBackup(data []byte) (model.Backup, error) {
	b := model.Backup{
		Progress: model.DefaultProgress(),
		Settings: model.DefaultSettings(),
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("%w: parse backup: %v", model.ErrInvalidArgument, err)
	}
	if b.Progress.Learned == nil {
		b.Progress.Learned = []model.ItemID{}
	}
	if b.Progress.Mastery == nil {
		b.Progress.Mastery = map[model.ItemID]int{}
	}
	if err := b.Settings.Validate(); err != nil {
		return b, err
	}
	b.Progress = sanitize(b.Progress)
	return b, nil
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}
