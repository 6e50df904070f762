package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Writer persists transcript text as UTF-8 files.
type Writer struct {
	now func() time.Time
}

func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// Save writes text to filename, or to a default
// "youtube_transcript_{video_id}_{timestamp}.txt" name when filename is
// empty. Returns the path actually written.
func (w *Writer) Save(text, filename, videoID string) (string, error) {
	if filename == "" {
		timestamp := w.now().Format("20060102_150405")
		filename = fmt.Sprintf("youtube_transcript_%s_%s.txt", videoID, timestamp)
	}

	if err := ensureDir(filename); err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to save transcript: %w", err)
	}

	return filename, nil
}

// SaveChunks writes each chunk to its own file, sequentially and with no
// transactional grouping: a mid-sequence failure leaves earlier chunks on
// disk and is reported as an error. Returns the paths written so far.
func (w *Writer) SaveChunks(chunks []string, filename, videoID string) ([]string, error) {
	var saved []string

	for i, chunk := range chunks {
		name := ChunkFilename(filename, videoID, i+1, len(chunks))
		path, err := w.Save(chunk, name, videoID)
		if err != nil {
			return saved, fmt.Errorf("chunk %d: %w", i+1, err)
		}
		saved = append(saved, path)
	}

	return saved, nil
}

// ChunkFilename names the i-th chunk (1-based). An explicit base name gets a
// _chunk_{i} suffix only when there is more than one chunk; otherwise the
// default transcript_chunk_{i}_{video_id}.txt shape is used.
func ChunkFilename(explicit, videoID string, i, total int) string {
	name := explicit
	if name == "" {
		name = fmt.Sprintf("transcript_chunk_%d_%s.txt", i, videoID)
	}
	if total > 1 && explicit != "" {
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		name = fmt.Sprintf("%s_chunk_%d%s", base, i, ext)
	}
	return name
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
