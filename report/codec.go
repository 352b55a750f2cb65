package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the byte-level encoding around the JSON document.
type Compression int

const (
	// None writes plain JSON.
	None Compression = iota
	// Gzip wraps the document in a gzip stream.
	Gzip
	// Zstd wraps the document in a zstd frame.
	Zstd
)

// String returns "none", "gzip" or "zstd".
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// CompressionFor maps a file name to its compression by suffix.
func CompressionFor(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".zst"):
		return Zstd
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	default:
		return None
	}
}

// Write encodes rep as indented JSON through the chosen compression.
func Write(w io.Writer, rep *Report, c Compression) error {
	if rep == nil {
		return fmt.Errorf("Write: %w", ErrNilResult)
	}
	switch c {
	case None:
		return encode(w, rep)
	case Gzip:
		zw := gzip.NewWriter(w)
		if err := encode(zw, rep); err != nil {
			_ = zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("Write: gzip: %w", err)
		}
		return nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("Write: zstd: %w", err)
		}
		if err = encode(enc, rep); err != nil {
			_ = enc.Close()
			return err
		}
		if err = enc.Close(); err != nil {
			return fmt.Errorf("Write: zstd: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Write: %d: %w", int(c), ErrUnknownCompression)
	}
}

// Read decodes a report written by Write with the same compression.
func Read(r io.Reader, c Compression) (*Report, error) {
	switch c {
	case None:
		return decode(r)
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("Read: gzip: %w", err)
		}
		defer zr.Close()
		return decode(zr)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("Read: zstd: %w", err)
		}
		defer dec.Close()
		return decode(dec)
	default:
		return nil, fmt.Errorf("Read: %d: %w", int(c), ErrUnknownCompression)
	}
}

// WriteFile writes rep to path, compressed according to CompressionFor(path).
func WriteFile(path string, rep *Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()
	return Write(f, rep, CompressionFor(path))
}

// ReadFile reads a report from path, decompressing according to CompressionFor(path).
func ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()
	return Read(f, CompressionFor(path))
}

func encode(w io.Writer, rep *Report) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("Write: encode: %w", err)
	}
	return nil
}

func decode(r io.Reader) (*Report, error) {
	var rep Report
	if err := gojson.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("Read: decode: %w", err)
	}
	if rep.Version != Version {
		return nil, fmt.Errorf("Read: version %d: %w", rep.Version, ErrVersion)
	}
	return &rep, nil
}
