package streamio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

var (
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicGzip = []byte{0x1f, 0x8b}
)

type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "none"
}

// Detect peeks at the head of br and reports its compression format.
func Detect(br *bufio.Reader) Compression {
	head, _ := br.Peek(len(magicZstd))
	switch {
	case bytes.HasPrefix(head, magicZstd):
		return Zstd
	case bytes.HasPrefix(head, magicGzip):
		return Gzip
	}
	return None
}

type decompressReader struct {
	io.Reader
	closeFn func() error
}

func (d *decompressReader) Close() error {
	if d.closeFn == nil {
		return nil
	}
	err := d.closeFn()
	d.closeFn = nil
	return err
}

// NewReader returns a reader yielding the decompressed content of r when r is
// gzip or zstd compressed, and r's content unchanged otherwise. Close releases
// the decoder but does not close r.
func NewReader(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	switch c := Detect(br); c {
	case Zstd:
		z, err := GetZstdReader(br)
		if err != nil {
			return nil, c, err
		}
		return &decompressReader{Reader: z, closeFn: func() error {
			PutZstdReader(z)
			return nil
		}}, c, nil
	case Gzip:
		g, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, err
		}
		return &decompressReader{Reader: g, closeFn: g.Close}, c, nil
	}
	return &decompressReader{Reader: br}, None, nil
}
