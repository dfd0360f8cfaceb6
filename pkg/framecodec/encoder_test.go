// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package framecodec

import (
	"bytes"
	"testing"
)

func TestEncodeScenarioA(t *testing.T) {
	frame, ok := Encode([]byte{72, 105, 33}, 1)
	if !ok {
		t.Fatalf("Encode unexpectedly rejected a 3-byte payload")
	}
	wantPrefix := []byte{126, 1, 255, 3, 72, 105, 33}
	if !bytes.Equal(frame[:7], wantPrefix) || frame[8] != StopByte {
		t.Errorf("frame = %v, want prefix %v and trailing stop byte", frame, wantPrefix)
	}
}

func TestEncodeScenarioB(t *testing.T) {
	frame, ok := Encode([]byte{126}, 1)
	if !ok {
		t.Fatalf("Encode unexpectedly rejected a 1-byte payload")
	}
	want := []byte{126, 1, 0, 1, 0, crc8([]byte{0}), 129}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = %v, want %v", frame, want)
	}
}

func TestEncodeScenarioC(t *testing.T) {
	frame, ok := Encode([]byte{126, 126, 126}, 1)
	if !ok {
		t.Fatalf("Encode unexpectedly rejected a 3-byte payload")
	}
	region := []byte{1, 1, 0}
	want := append([]byte{126, 1, 0, 3}, append(append([]byte{}, region...), crc8(region), 129)...)
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = %v, want %v", frame, want)
	}
}

func TestEncodeScenarioHEmptyPayload(t *testing.T) {
	frame, ok := Encode(nil, 7)
	if !ok {
		t.Fatalf("Encode unexpectedly rejected an empty payload")
	}
	want := []byte{126, 7, 255, 0, 0, 129}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = %v, want %v", frame, want)
	}
}

func TestEncodeRejectsOversizePayload(t *testing.T) {
	payload := make([]byte, 255)
	if _, ok := Encode(payload, 0); ok {
		t.Errorf("Encode should reject a 255-byte payload")
	}
	var dst [MaxFrameSize]byte
	if _, ok := EncodeInto(&dst, payload, 0); ok {
		t.Errorf("EncodeInto should reject a 255-byte payload")
	}
}

func TestEncodeAcceptsMaxSizePayload(t *testing.T) {
	payload := bytes.Repeat([]byte{0x55}, MaxPayloadSize)
	frame, ok := Encode(payload, 3)
	if !ok {
		t.Fatalf("Encode should accept a %d-byte payload", MaxPayloadSize)
	}
	if len(frame) != MaxPayloadSize+6 {
		t.Errorf("frame length = %d, want %d", len(frame), MaxPayloadSize+6)
	}
}

func TestEncodeIntoMatchesEncode(t *testing.T) {
	payloads := [][]byte{
		nil,
		{1},
		{72, 105, 33},
		{126, 126, 126},
		bytes.Repeat([]byte{0xAA}, 200),
		bytes.Repeat([]byte{0x7E}, MaxPayloadSize),
	}

	for _, payload := range payloads {
		want, ok := Encode(payload, 42)
		if !ok {
			t.Fatalf("Encode rejected payload of length %d", len(payload))
		}

		var dst [MaxFrameSize]byte
		n, ok := EncodeInto(&dst, payload, 42)
		if !ok {
			t.Fatalf("EncodeInto rejected payload of length %d", len(payload))
		}
		got := dst[:n]

		if !bytes.Equal(got, want) {
			t.Errorf("EncodeInto and Encode disagree for payload %v:\n got  %v\n want %v", payload, got, want)
		}
	}
}
