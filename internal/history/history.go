// Package history manages the analysis cache shared with the SmartPaper
// Python tooling. The index file and its key scheme are kept interchangeable
// with the Python HistoryManager: saved_analyses/history.json maps
// "<md5hex>_<prompt>" to an entry describing the saved markdown file.
package history

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode"
)

const indexFileName = "history.json"

// Entry describes one saved analysis. Timestamp is fractional epoch seconds,
// matching what the Python side writes.
type Entry struct {
	FileName       string         `json:"file_name"`
	OriginalSource string         `json:"original_source"`
	PromptName     string         `json:"prompt_name"`
	Timestamp      float64        `json:"timestamp"`
	Metadata       map[string]any `json:"metadata"`
}

// Time converts the entry timestamp to a time.Time.
func (e Entry) Time() time.Time {
	sec := int64(e.Timestamp)
	nsec := int64((e.Timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

// Analysis is a cache hit: the saved content plus its index entry.
type Analysis struct {
	Content string
	Path    string
	Entry   Entry
}

// Manager reads and writes the analysis index for one storage directory.
type Manager struct {
	storageDir string
	indexPath  string
	index      map[string]Entry
}

// Open ensures the storage directory exists and loads its index. A missing
// or unreadable index starts fresh rather than failing; the index is a cache.
func Open(storageDir string) (*Manager, error) {
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	m := &Manager{
		storageDir: storageDir,
		indexPath:  filepath.Join(storageDir, indexFileName),
		index:      map[string]Entry{},
	}
	data, err := os.ReadFile(m.indexPath)
	if err != nil {
		return m, nil
	}
	if err := json.Unmarshal(data, &m.index); err != nil {
		m.index = map[string]Entry{}
	}
	return m, nil
}

func (m *Manager) saveIndex() error {
	data, err := json.MarshalIndent(m.index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.indexPath, data, 0o644)
}

// ComputeHash hashes an input source. Local files hash by content, streamed
// so large PDFs do not load into memory; anything else (URLs) hashes the
// string itself. Unreadable files fall back to the string hash.
func ComputeHash(source string) string {
	if fi, err := os.Stat(source); err == nil && !fi.IsDir() {
		if sum, err := hashFile(source); err == nil {
			return sum
		}
	}
	return fmt.Sprintf("%x", md5.Sum([]byte(source)))
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// CacheKey combines a source hash and prompt template name into an index key.
func CacheKey(sourceHash, promptName string) string {
	return sourceHash + "_" + promptName
}

// Lookup returns the cached analysis for a source hash and prompt, if any.
// Index entries whose files vanished are pruned on the way.
func (m *Manager) Lookup(sourceHash, promptName string) (*Analysis, bool) {
	key := CacheKey(sourceHash, promptName)
	entry, ok := m.index[key]
	if !ok {
		return nil, false
	}
	path := filepath.Join(m.storageDir, entry.FileName)
	content, err := os.ReadFile(path)
	if err != nil {
		delete(m.index, key)
		_ = m.saveIndex()
		return nil, false
	}
	return &Analysis{Content: string(content), Path: path, Entry: entry}, true
}

// Save writes an analysis to disk and records it in the index, returning the
// saved file path.
func (m *Manager) Save(source, sourceHash, promptName, content string, metadata map[string]any) (string, error) {
	fileName := fmt.Sprintf("%s_%s_%s.md", safeStem(source), promptName, shortHash(sourceHash))
	path := filepath.Join(m.storageDir, fileName)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("save analysis: %w", err)
	}

	if metadata == nil {
		metadata = map[string]any{}
	}
	m.index[CacheKey(sourceHash, promptName)] = Entry{
		FileName:       fileName,
		OriginalSource: source,
		PromptName:     promptName,
		Timestamp:      float64(time.Now().UnixNano()) / float64(time.Second),
		Metadata:       metadata,
	}
	if err := m.saveIndex(); err != nil {
		return "", fmt.Errorf("update index: %w", err)
	}
	return path, nil
}

// List returns all entries, newest first.
func (m *Manager) List() []Entry {
	entries := make([]Entry, 0, len(m.index))
	for _, entry := range m.index {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries
}

// Len reports the number of indexed analyses.
func (m *Manager) Len() int { return len(m.index) }

// StorageDir reports where analyses are kept.
func (m *Manager) StorageDir() string { return m.storageDir }

// safeStem reduces a source to a filename-safe stem, mirroring the Python
// side: keep letters, digits, and ".-_" from the basename, cap at 50 runes,
// fall back to "analysis" when nothing survives.
func safeStem(source string) string {
	base := filepath.Base(source)
	var stem []rune
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			stem = append(stem, r)
		}
	}
	if len(stem) == 0 {
		return "analysis"
	}
	if len(stem) > 50 {
		stem = stem[:50]
	}
	return string(stem)
}

func shortHash(sourceHash string) string {
	if len(sourceHash) > 8 {
		return sourceHash[:8]
	}
	return sourceHash
}
