// SPDX-License-Identifier: MIT

// Package archive opens and creates files whose compression is chosen by
// extension: ".gz" (gzip), ".zst" (zstandard), ".bz2" (bzip2), anything
// else uncompressed.
package archive

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// ErrUnsupportedCompression is returned by NewReader and NewWriter for a
// Codec outside the known set.
var ErrUnsupportedCompression = errors.New("archive: unsupported compression")

// Codec names a compression format.
type Codec string

const (
	Plain Codec = ""
	Gzip  Codec = "gz"
	Zstd  Codec = "zst"
	Bzip2 Codec = "bz2"
)

// CodecOf returns the codec implied by the extension of path.
func CodecOf(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".bz2":
		return Bzip2
	default:
		return Plain
	}
}

// Trim strips a recognised compression extension and then ext from the
// base name of path: Trim("a/b.json.bz2", ".json") is "b".
func Trim(path, ext string) string {
	base := filepath.Base(path)
	if CodecOf(base) != Plain {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return strings.TrimSuffix(base, ext)
}

// Open returns a reader of the decompressed contents of path.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	rc, err := NewReader(f, CodecOf(path))
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "open %s", path)
	}

	return &readStack{ReadCloser: rc, under: f}, nil
}

// NewReader wraps r with the decoder of c. The returned closer releases the
// decoder only; r stays owned by the caller.
func NewReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "gzip reader")
		}
		return zr, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "zstd reader")
		}
		return zr.IOReadCloser(), nil
	case Bzip2:
		br, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, errors.Wrap(err, "bzip2 reader")
		}
		return br, nil
	case Plain:
		return io.NopCloser(r), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedCompression, "codec %q", string(c))
	}
}

// Create truncates or creates path and returns a writer compressing into it.
// Close flushes the encoder and then closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create")
	}

	wc, err := NewWriter(f, CodecOf(path))
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "create %s", path)
	}

	return &writeStack{WriteCloser: wc, under: f}, nil
}

// NewWriter wraps w with the encoder of c.
func NewWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, errors.Wrap(err, "zstd writer")
		}
		return zw, nil
	case Bzip2:
		bw, err := bzip2.NewWriter(w, nil)
		if err != nil {
			return nil, errors.Wrap(err, "bzip2 writer")
		}
		return bw, nil
	case Plain:
		return nopWriteCloser{w}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedCompression, "codec %q", string(c))
	}
}

// readStack closes the decoder first, then the file under it.
type readStack struct {
	io.ReadCloser
	under io.Closer
}

func (s *readStack) Close() error {
	err := s.ReadCloser.Close()
	if cerr := s.under.Close(); err == nil {
		err = cerr
	}

	return err
}

// writeStack flushes the encoder first, then closes the file under it.
type writeStack struct {
	io.WriteCloser
	under io.Closer
}

func (s *writeStack) Close() error {
	err := s.WriteCloser.Close()
	if cerr := s.under.Close(); err == nil {
		err = cerr
	}

	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
