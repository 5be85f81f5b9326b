// SPDX-License-Identifier: Unlicense OR MIT

package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// ContentHash is a 32-byte SHA-256 fingerprint, the determinism oracle
// for a frame or frame sequence.
type ContentHash [32]byte

// String renders h as 64 lowercase hex characters.
func (h ContentHash) String() string {
	return hex.EncodeToString(h[:])
}

// HashFrame hashes a single FrameBuffer: width (LE u32), height
// (LE u32), format (u8), then the raw pixel bytes.
func HashFrame(fb *FrameBuffer) ContentHash {
	h := sha256.New()
	writeFrameInput(h, fb)
	var out ContentHash
	copy(out[:], h.Sum(nil))
	return out
}

// HashFrames hashes a sequence of frames: count (LE u64) then each
// frame's hash input in order.
func HashFrames(frames []*FrameBuffer) ContentHash {
	h := sha256.New()
	var countBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], uint64(len(frames)))
	h.Write(countBuf[:])
	for _, fb := range frames {
		writeFrameInput(h, fb)
	}
	var out ContentHash
	copy(out[:], h.Sum(nil))
	return out
}

func writeFrameInput(h interface{ Write([]byte) (int, error) }, fb *FrameBuffer) {
	var dims [9]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(fb.Width))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(fb.Height))
	dims[8] = byte(fb.Format)
	h.Write(dims[:])
	h.Write(fb.Data)
}
