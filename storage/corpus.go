package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avallon/claimlens/core"
)

// corpusEntry is one row of a JSON corpus seed file.
type corpusEntry struct {
	Id         string `json:"id"`
	Label      string `json:"label"`
	Transcript string `json:"transcript"`
}

// LoadCorpusFile reads a JSON corpus seed file into claim records.
//
// The file is an array of objects with "id", "label" and "transcript"
// keys. The external id is only used for content addressing when the
// transcript is empty; normally the record ID is derived from the
// transcript itself so re-seeding the same file is idempotent.
func LoadCorpusFile(path string) ([]*core.ClaimRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
	}

	var entries []corpusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCorpusFile, path, err)
	}

	records := make([]*core.ClaimRecord, 0, len(entries))
	for i, entry := range entries {
		if entry.Transcript == "" {
			return nil, fmt.Errorf("%w: %s: entry %d has no transcript", ErrCorruptCorpusFile, path, i)
		}
		label := core.Label(entry.Label)
		if err := core.ValidateLabel(label); err != nil {
			return nil, fmt.Errorf("%w: %s: entry %d: %v", ErrCorruptCorpusFile, path, i, err)
		}
		records = append(records, &core.ClaimRecord{
			Id:         core.IDFromContent(entry.Transcript),
			Label:      label,
			Transcript: entry.Transcript,
			Preview:    core.PreviewText(entry.Transcript),
		})
	}
	return records, nil
}
