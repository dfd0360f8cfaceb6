// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package framecodec

// EncodeInto packs payload and id into a frame written at the start of
// dst, returning the number of bytes used. It reports ok == false, and
// leaves dst untouched, iff len(payload) exceeds MaxPayloadSize. This
// shape performs no allocation and is suitable for constrained
// environments that can't spare a heap.
func EncodeInto(dst *[MaxFrameSize]byte, payload []byte, id byte) (used int, ok bool) {
	n := len(payload)
	if n > MaxPayloadSize {
		return 0, false
	}

	dst[0] = StartByte
	dst[1] = id
	dst[3] = byte(n)
	copy(dst[4:4+n], payload)

	region := dst[4 : 4+n]
	dst[2] = packCOBS(region)
	dst[4+n] = crc8(region)
	dst[5+n] = StopByte

	return n + 6, true
}

// Encode packs payload and id into a freshly allocated, exactly-sized
// frame. It reports ok == false iff len(payload) exceeds
// MaxPayloadSize. Encode and EncodeInto always produce byte-for-byte
// identical frames for the same inputs.
func Encode(payload []byte, id byte) (frame []byte, ok bool) {
	n := len(payload)
	if n > MaxPayloadSize {
		return nil, false
	}

	frame = make([]byte, n+6)
	frame[0] = StartByte
	frame[1] = id
	frame[3] = byte(n)
	copy(frame[4:4+n], payload)

	region := frame[4 : 4+n]
	frame[2] = packCOBS(region)
	frame[4+n] = crc8(region)
	frame[5+n] = StopByte

	return frame, true
}
