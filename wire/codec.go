// Package wire implements the two on-wire protocols of §6: the pipeline
// front-end's request/response framing, and the single-shot dispatch
// front-end's request/response framing. Every on-wire integer is a
// 4-byte little-endian int32, read and written with encoding/binary,
// matching the byte-level framing style already exercised by this pack's
// binary-protocol tooling.
//
// The pipeline request header's vertex count is validated with a
// github.com/go-playground/validator struct tag on PipelineRequest; every
// other range check (algorithm id, dispatch vertex count, edge counts,
// edge triples) is an explicit comparison in the reader.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxVertices bounds both wire protocols' vertex counts (§6: 0 < n <= 50).
const maxVertices = 50

// readInt32 reads one little-endian int32 from r.
func readInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("wire: short read: %w", err)
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

// writeInt32 writes one little-endian int32 to w.
func writeInt32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}
