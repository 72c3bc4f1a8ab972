package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index       int     `json:"index"`
	Image       string  `json:"image"`
	Preview     string  `json:"preview,omitempty"`
	Seed        int64   `json:"seed"`
	Aperture    float64 `json:"aperture"`
	FocalLength float64 `json:"focal_length"`
	ElapsedMS   int64   `json:"elapsed_ms"`
	Error       string  `json:"error,omitempty"`
}

// WriteManifest writes manifest.json. Image paths are stored relative to the
// manifest's directory when possible. The directory is created if needed.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Index:       r.Index,
			Image:       relTo(base, r.Path),
			Seed:        r.Seed,
			Aperture:    r.Aperture,
			FocalLength: r.FocalLength,
			ElapsedMS:   r.Elapsed.Milliseconds(),
			Error:       r.Error,
		}
		if r.Preview != "" {
			entries[i].Preview = relTo(base, r.Preview)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return fmt.Errorf("batch: create manifest dir %s: %w", base, err)
	}
	return os.WriteFile(path, data, 0644)
}

func relTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
