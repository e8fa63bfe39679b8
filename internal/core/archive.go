package core

import (
	"archive/tar"
	"compress/gzip"
	"io"
)

// Entry is one regular file emitted by the archive reader: a bounded byte
// source the caller must fully consume (or explicitly skip) before pulling
// the next entry.
type Entry struct {
	Path   string
	Size   int64
	Reader io.Reader
}

// ArchiveReader wraps a gunzip+tar pipeline over a streaming HTTP body.
// It never buffers the whole archive: the gzip reader decompresses on
// demand and the tar reader exposes one bounded entry reader at a time.
type ArchiveReader struct {
	tr *tar.Reader
	gz *gzip.Reader
}

// NewArchiveReader wraps body in a gzip decoder and a tar reader. body is
// closed by the caller, not by ArchiveReader.
func NewArchiveReader(body io.Reader) (*ArchiveReader, *Error) {
	gz, err := gzip.NewReader(body)
	if err != nil {
		return nil, NewError(ErrCorruptArchive, "failed to open gzip stream", err)
	}
	return &ArchiveReader{tr: tar.NewReader(gz), gz: gz}, nil
}

// Close releases the gzip decoder's resources.
func (r *ArchiveReader) Close() error {
	return r.gz.Close()
}

// Next advances to the next regular file entry, skipping directories,
// symlinks, and other non-regular tar entries. Returns (nil, nil) at end
// of archive.
func (r *ArchiveReader) Next() (*Entry, *Error) {
	for {
		hdr, err := r.tr.Next()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, NewError(ErrCorruptArchive, "malformed tar header", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		// tar package already resolves PAX ('x'/'X') and GNU long-name
		// ('L'/'K') extension headers transparently into hdr.Name/hdr.Size
		// before returning a regular entry, so no manual extension-header
		// stitching is needed here.
		return &Entry{
			Path:   hdr.Name,
			Size:   hdr.Size,
			Reader: io.LimitReader(r.tr, hdr.Size),
		}, nil
	}
}

// ReadEntry fully reads an accepted entry's bytes. The caller has already
// run the size filter, so the declared size bound is trusted.
func ReadEntry(e *Entry) ([]byte, *Error) {
	buf := make([]byte, 0, e.Size)
	w := &sliceWriter{buf: buf}
	if _, err := io.Copy(w, e.Reader); err != nil {
		return nil, NewError(ErrCorruptArchive, "truncated entry", err)
	}
	return w.buf, nil
}

// SkipEntry discards a rejected entry's bytes so the tar stream stays
// aligned for the next header.
func SkipEntry(e *Entry) *Error {
	if _, err := io.Copy(io.Discard, e.Reader); err != nil {
		return NewError(ErrCorruptArchive, "truncated entry during skip", err)
	}
	return nil
}

type sliceWriter struct {
	buf []byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}
