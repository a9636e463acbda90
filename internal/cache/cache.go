// Package cache fingerprints generation inputs so unchanged inputs are not
// regenerated.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
)

// Key generates a fingerprint from inputs. Each input is length prefixed
// so ("ab", "c") and ("a", "bc") differ.
func Key(inputs ...string) string {
	h := sha256.New()
	for _, input := range inputs {
		fmt.Fprintf(h, "%d:", len(input))
		h.Write([]byte(input))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// KeyFromFiles generates a fingerprint from file contents. Missing files
// contribute their name only, so creating one changes the key. Empty names
// are skipped.
func KeyFromFiles(files ...string) (string, error) {
	h := sha256.New()

	for _, file := range files {
		if file == "" {
			continue
		}
		data, err := os.ReadFile(file)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(h, "missing:%s;", file)
				continue
			}
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		fmt.Fprintf(h, "%s:%d:", file, len(data))
		h.Write(data)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Stats tracks how often a tracker saw changed and unchanged inputs
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// Tracker remembers the fingerprint of the last successful generation
type Tracker struct {
	mu    sync.Mutex
	last  string
	stats Stats
}

// NewTracker creates an empty tracker; the first Changed call always
// reports true
func NewTracker() *Tracker {
	return &Tracker{}
}

// Changed reports whether key differs from the last stored key. A hit
// (unchanged) means generation can be skipped.
func (t *Tracker) Changed(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.last != "" && t.last == key {
		t.stats.Hits++
		return false
	}
	t.stats.Misses++
	return true
}

// Store records key after a successful generation
func (t *Tracker) Store(key string) {
	t.mu.Lock()
	t.last = key
	t.mu.Unlock()
}

// Reset forgets the stored key so the next run always generates
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.last = ""
	t.mu.Unlock()
}

// GetStats returns tracker statistics
func (t *Tracker) GetStats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
