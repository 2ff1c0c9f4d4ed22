package streamio

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdReader = sync.Pool{
		New: func() any {
			d, _ := zstd.NewReader(nil)
			return &ZstdDecoder{
				Decoder: d,
			}
		},
	}
)

type ZstdDecoder struct {
	*zstd.Decoder
}

// GetZstdReader returns a pooled ZstdDecoder reset to read from r. Return it
// with PutZstdReader once done.
func GetZstdReader(r io.Reader) (*ZstdDecoder, error) {
	z := zstdReader.Get().(*ZstdDecoder)
	if err := z.Reset(r); err != nil {
		zstdReader.Put(z)
		return nil, err
	}
	return z, nil
}

func PutZstdReader(z *ZstdDecoder) {
	// drop the reference to the source
	_ = z.Reset(nil)
	zstdReader.Put(z)
}
