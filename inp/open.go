// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Open opens a log or table for reading. Files ending with ".gz" or ".zst" are
// decompressed on the fly. Closing the returned reader always closes the file
func Open(fn string) (rc io.ReadCloser, err error) {
	f, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, chk.Err("%w: file %q does not exist", ErrMissingInput, fn)
		}
		return nil, chk.Err("cannot open %q:\n%v", fn, err)
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".gz":
		zr, e := gzip.NewReader(f)
		if e != nil {
			f.Close()
			return nil, chk.Err("cannot read gzip file %q:\n%v", fn, e)
		}
		return &decompressor{Reader: zr, closeFcn: zr.Close, file: f}, nil
	case ".zst":
		zr, e := zstd.NewReader(f)
		if e != nil {
			f.Close()
			return nil, chk.Err("cannot read zstd file %q:\n%v", fn, e)
		}
		return &decompressor{Reader: zr, closeFcn: func() error { zr.Close(); return nil }, file: f}, nil
	}
	return f, nil
}

// decompressor closes both the decoder and the underlying file
type decompressor struct {
	io.Reader
	closeFcn func() error
	file     *os.File
}

func (o *decompressor) Close() error {
	err := o.closeFcn()
	if e := o.file.Close(); err == nil {
		err = e
	}
	return err
}
