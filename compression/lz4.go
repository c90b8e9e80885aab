package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

func CompressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	if _, writeErr := zw.Write(src); writeErr != nil {
		return writeErr
	}

	flushErr := zw.Flush()

	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// DecompressLz4 appends the decoded stream to output and expects exactly size bytes
func DecompressLz4(src []byte, output *bytes.Buffer, size int) error {
	zr := lz4.NewReader(bytes.NewReader(src))

	output.Grow(size)

	// one byte past size is enough to tell an oversized stream
	n, readErr := io.CopyN(output, zr, int64(size)+1)
	if readErr != nil && readErr != io.EOF {
		return readErr
	}

	if int(n) != size {
		return fmt.Errorf("decompressed size mismatch: expected %d, got %d", size, n)
	}

	return nil
}
