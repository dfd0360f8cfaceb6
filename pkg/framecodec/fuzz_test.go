// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package framecodec

import (
	"bytes"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FRAMEGATE_FUZZ_ROUNDS, default 1000.
func getFuzzRounds() int {
	if env := os.Getenv("FRAMEGATE_FUZZ_ROUNDS"); env != "" {
		if rounds, err := strconv.Atoi(env); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FRAMEGATE_FUZZ_SEED, or one derived from the current time.
func getFuzzSeed() int64 {
	if env := os.Getenv("FRAMEGATE_FUZZ_SEED"); env != "" {
		if seed, err := strconv.ParseInt(env, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates an RNG and logs the seed so a failure is reproducible.
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FRAMEGATE_FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// randomPayload builds a random payload of length [0, MaxPayloadSize],
// biased to contain StartByte often so COBS actually gets exercised.
func randomPayload(rng *rand.Rand) []byte {
	n := rng.Intn(MaxPayloadSize + 1)
	payload := make([]byte, n)
	for i := range payload {
		if rng.Intn(4) == 0 {
			payload[i] = StartByte
		} else {
			payload[i] = byte(rng.Intn(256))
		}
	}
	return payload
}

func TestFuzzRoundTrip(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for i := 0; i < rounds; i++ {
		payload := randomPayload(rng)
		id := byte(rng.Intn(256))

		frame, ok := Encode(payload, id)
		if !ok {
			t.Fatalf("round %d: Encode rejected a valid-length payload of %d bytes", i, len(payload))
		}

		d := NewDecoder()
		status, consumed := d.Feed(frame)
		if status != DataReady {
			t.Fatalf("round %d: status = %v, payload = %v", i, status, payload)
		}
		if consumed != len(frame) {
			t.Fatalf("round %d: consumed %d of %d bytes", i, consumed, len(frame))
		}
		if !bytes.Equal(d.Payload(), payload) {
			t.Fatalf("round %d: payload mismatch, got %v want %v", i, d.Payload(), payload)
		}
		if d.ID() != id {
			t.Fatalf("round %d: id mismatch, got %d want %d", i, d.ID(), id)
		}
	}
}

func TestFuzzStreamOfFrames(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds() / 10
	if rounds < 10 {
		rounds = 10
	}

	type sent struct {
		payload []byte
		id      byte
	}
	var stream []byte
	var sents []sent
	for i := 0; i < rounds; i++ {
		payload := randomPayload(rng)
		id := byte(rng.Intn(256))
		frame, _ := Encode(payload, id)
		stream = append(stream, frame...)
		sents = append(sents, sent{payload, id})
	}

	d := NewDecoder()
	var got []sent
	for len(stream) > 0 {
		status, consumed := d.Feed(stream)
		stream = stream[consumed:]
		if status == DataReady {
			got = append(got, sent{append([]byte(nil), d.Payload()...), d.ID()})
		} else if status != Continue {
			t.Fatalf("unexpected status %v in a stream of well-formed frames", status)
		}
	}

	if len(got) != len(sents) {
		t.Fatalf("got %d frames, want %d", len(got), len(sents))
	}
	for i := range sents {
		if got[i].id != sents[i].id || !bytes.Equal(got[i].payload, sents[i].payload) {
			t.Errorf("frame %d mismatch", i)
		}
	}
}

func TestFuzzArbitraryBytesNeverPanic(t *testing.T) {
	rng := newFuzzRng(t)
	d := NewDecoder()
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(rng.Intn(256))
	}

	for len(buf) > 0 {
		_, consumed := d.Feed(buf)
		if consumed == 0 {
			t.Fatalf("Feed must always consume at least one byte")
		}
		buf = buf[consumed:]
	}
}
