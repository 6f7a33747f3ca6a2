package delim

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// compressedReader closes a decompressor before the file beneath it.
type compressedReader struct {
	io.Reader
	closers []func() error
}

func (c *compressedReader) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// decompress wraps file according to the extension of path.
func decompress(path string, file io.ReadCloser) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := pgzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		return &compressedReader{Reader: zr, closers: []func() error{zr.Close, file.Close}}, nil
	case ".zst":
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, err
		}
		return &compressedReader{Reader: dec, closers: []func() error{
			func() error { dec.Close(); return nil },
			file.Close,
		}}, nil
	case ".xz":
		xr, err := xz.NewReader(file)
		if err != nil {
			return nil, err
		}
		return &compressedReader{Reader: xr, closers: []func() error{file.Close}}, nil
	default:
		return file, nil
	}
}
