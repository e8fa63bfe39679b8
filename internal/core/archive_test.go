package core

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"testing"
)

// buildTarGz writes a minimal gzip+tar archive containing the given
// path -> content entries, in order, plus one directory entry to
// exercise the non-regular-entry skip path.
func buildTarGz(t *testing.T, files map[string]string, order []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	if err := tw.WriteHeader(&tar.Header{
		Name:     "a-directory/",
		Typeflag: tar.TypeDir,
		Mode:     0755,
	}); err != nil {
		t.Fatalf("writing dir header: %v", err)
	}

	for _, path := range order {
		content := files[path]
		if err := tw.WriteHeader(&tar.Header{
			Name:     path,
			Typeflag: tar.TypeReg,
			Size:     int64(len(content)),
			Mode:     0644,
		}); err != nil {
			t.Fatalf("writing header for %s: %v", path, err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("writing content for %s: %v", path, err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("closing gzip writer: %v", err)
	}
	return buf.Bytes()
}

func TestArchiveReaderStreamsEntriesInOrder(t *testing.T) {
	files := map[string]string{
		"repo-main/main.go":     "package main\n\nfunc main() {}\n",
		"repo-main/README.md":   "# hello\n",
		"repo-main/pkg/util.go": "package pkg\n",
	}
	order := []string{"repo-main/main.go", "repo-main/README.md", "repo-main/pkg/util.go"}
	data := buildTarGz(t, files, order)

	ar, err := NewArchiveReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error opening archive: %v", err)
	}
	defer ar.Close()

	var seen []string
	for {
		entry, err := ar.Next()
		if err != nil {
			t.Fatalf("unexpected error reading entry: %v", err)
		}
		if entry == nil {
			break
		}
		buf, rerr := ReadEntry(entry)
		if rerr != nil {
			t.Fatalf("unexpected error reading entry bytes: %v", rerr)
		}
		if string(buf) != files[entry.Path] {
			t.Errorf("entry %s: got %q, want %q", entry.Path, buf, files[entry.Path])
		}
		seen = append(seen, entry.Path)
	}

	if len(seen) != len(order) {
		t.Fatalf("expected %d regular entries (directory skipped), got %d: %v", len(order), len(seen), seen)
	}
	for i, path := range order {
		if seen[i] != path {
			t.Errorf("entry %d: expected %s, got %s", i, path, seen[i])
		}
	}
}

func TestArchiveReaderSkipEntryAdvancesStream(t *testing.T) {
	files := map[string]string{
		"repo-main/skip-me.bin": "binary-ish-content",
		"repo-main/keep-me.go":  "package main\n",
	}
	order := []string{"repo-main/skip-me.bin", "repo-main/keep-me.go"}
	data := buildTarGz(t, files, order)

	ar, err := NewArchiveReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error opening archive: %v", err)
	}
	defer ar.Close()

	entry, err := ar.Next()
	if err != nil || entry == nil {
		t.Fatalf("expected first entry, got entry=%v err=%v", entry, err)
	}
	if serr := SkipEntry(entry); serr != nil {
		t.Fatalf("unexpected error skipping entry: %v", serr)
	}

	next, err := ar.Next()
	if err != nil || next == nil {
		t.Fatalf("expected second entry after skip, got entry=%v err=%v", next, err)
	}
	if next.Path != "repo-main/keep-me.go" {
		t.Errorf("expected to land on keep-me.go after skip, got %s", next.Path)
	}
	buf, rerr := ReadEntry(next)
	if rerr != nil {
		t.Fatalf("unexpected error: %v", rerr)
	}
	if string(buf) != files["repo-main/keep-me.go"] {
		t.Errorf("unexpected content: %q", buf)
	}
}

func TestArchiveReaderEmptyArchiveReturnsNilAtEnd(t *testing.T) {
	data := buildTarGz(t, map[string]string{}, nil)
	ar, err := NewArchiveReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ar.Close()

	entry, err := ar.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil entry for an archive with only a directory, got %+v", entry)
	}
}

func TestNewArchiveReaderRejectsNonGzipBody(t *testing.T) {
	_, err := NewArchiveReader(bytes.NewReader([]byte("not gzip data")))
	if err == nil || err.Kind != ErrCorruptArchive {
		t.Fatalf("expected ErrCorruptArchive for non-gzip input, got %v", err)
	}
}

func TestArchiveReaderMalformedTarAfterValidGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("this is not a valid tar stream, just padding bytes")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ar, err := NewArchiveReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("unexpected error opening archive (gzip itself is valid): %v", err)
	}
	defer ar.Close()

	_, nerr := ar.Next()
	if nerr == nil || nerr.Kind != ErrCorruptArchive {
		t.Fatalf("expected ErrCorruptArchive for malformed tar content, got %v", nerr)
	}
}
