package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func testWriter() *Writer {
	w := NewWriter()
	w.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	}
	return w
}

func TestSaveExplicitFilename(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")

	saved, err := testWriter().Save("hello", path, "abc12345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != path {
		t.Errorf("got path %q, want %q", saved, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("got content %q, want %q", content, "hello")
	}
}

func TestSaveDefaultFilename(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	saved, err := testWriter().Save("hello", "", "abc12345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "youtube_transcript_abc12345678_20240301_123045.txt"
	if saved != want {
		t.Errorf("got filename %q, want %q", saved, want)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, want)); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "out.txt")

	if _, err := testWriter().Save("hello", path, "abc12345678"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
}

func TestSaveChunks(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "out.txt")

	saved, err := testWriter().SaveChunks([]string{"aaa", "bbb"}, base, "abc12345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(saved) != 2 {
		t.Fatalf("expected 2 files, got %d", len(saved))
	}
	if !strings.HasSuffix(saved[0], "out_chunk_1.txt") {
		t.Errorf("chunk 1 path: %q", saved[0])
	}
	if !strings.HasSuffix(saved[1], "out_chunk_2.txt") {
		t.Errorf("chunk 2 path: %q", saved[1])
	}

	content, err := os.ReadFile(saved[1])
	if err != nil {
		t.Fatalf("failed to read chunk: %v", err)
	}
	if string(content) != "bbb" {
		t.Errorf("chunk 2 content: got %q, want %q", content, "bbb")
	}
}

func TestSaveChunksPartialFailure(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "out.txt")

	// a directory squatting on the second chunk's filename makes that
	// write fail after the first chunk has been persisted
	if err := os.Mkdir(filepath.Join(tmpDir, "out_chunk_2.txt"), 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	saved, err := testWriter().SaveChunks([]string{"aaa", "bbb", "ccc"}, base, "abc12345678")
	if err == nil {
		t.Fatal("expected mid-sequence write failure")
	}
	if !strings.Contains(err.Error(), "chunk 2") {
		t.Errorf("error should name the failing chunk, got: %v", err)
	}

	// the persisted prefix is reported and stays on disk
	if len(saved) != 1 {
		t.Fatalf("expected 1 persisted chunk, got %d", len(saved))
	}
	content, readErr := os.ReadFile(saved[0])
	if readErr != nil {
		t.Fatalf("failed to read persisted chunk: %v", readErr)
	}
	if string(content) != "aaa" {
		t.Errorf("persisted chunk content: got %q, want %q", content, "aaa")
	}

	// the chunk after the failure was never written
	if _, statErr := os.Stat(filepath.Join(tmpDir, "out_chunk_3.txt")); !os.IsNotExist(statErr) {
		t.Errorf("chunk 3 should not exist, stat err: %v", statErr)
	}
}

func TestFailedWriteLeavesEarlierFiles(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	// second chunk targets a path whose parent is a regular file
	blocker := filepath.Join(tmpDir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	w := testWriter()
	first := filepath.Join(tmpDir, "ok.txt")
	if _, err := w.Save("aaa", first, "abc12345678"); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}

	_, err := w.Save("bbb", filepath.Join(blocker, "nope.txt"), "abc12345678")
	if err == nil {
		t.Fatal("expected write failure")
	}

	// the earlier write stays on disk
	if _, statErr := os.Stat(first); statErr != nil {
		t.Errorf("expected first file to remain: %v", statErr)
	}
}

func TestChunkFilename(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		i        int
		total    int
		want     string
	}{
		{
			name:     "default name",
			explicit: "",
			i:        2,
			total:    3,
			want:     "transcript_chunk_2_vid00000000.txt",
		},
		{
			name:     "explicit name with multiple chunks",
			explicit: "notes.txt",
			i:        1,
			total:    2,
			want:     "notes_chunk_1.txt",
		},
		{
			name:     "explicit name with single chunk keeps name",
			explicit: "notes.txt",
			i:        1,
			total:    1,
			want:     "notes.txt",
		},
		{
			name:     "explicit name without extension",
			explicit: "notes",
			i:        3,
			total:    4,
			want:     "notes_chunk_3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkFilename(tt.explicit, "vid00000000", tt.i, tt.total)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
