// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package payloadkit

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	fields := map[string]interface{}{
		"count": int64(3),
		"ready": true,
		"name":  "heater-1",
	}

	data, err := Encode(fields)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, ok := Decode(data)
	if !ok {
		t.Fatalf("Decode reported not-CBOR-map for output of Encode")
	}
	if len(got) != len(fields) {
		t.Fatalf("got %d fields, want %d", len(got), len(fields))
	}
	if got["name"] != "heater-1" {
		t.Errorf("name = %v, want heater-1", got["name"])
	}
	if got["ready"] != true {
		t.Errorf("ready = %v, want true", got["ready"])
	}
}

func TestEncodeEmptyIsNull(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	fields, ok := Decode(data)
	if !ok {
		t.Fatalf("Decode reported not-CBOR for a null payload")
	}
	if len(fields) != 0 {
		t.Errorf("expected no fields, got %v", fields)
	}
}

func TestDecodeNonCBORFallsBack(t *testing.T) {
	if _, ok := Decode([]byte{0xFF, 0xFF, 0xFF, 0xFF}); ok {
		t.Errorf("expected Decode to report not-CBOR for arbitrary bytes")
	}
}

func TestParseAssignments(t *testing.T) {
	fields, err := ParseAssignments([]string{"count=3", "ready=true", "name=heater-1", "ratio=1.5"})
	if err != nil {
		t.Fatalf("ParseAssignments failed: %v", err)
	}
	if fields["count"] != int64(3) {
		t.Errorf("count = %v (%T), want int64(3)", fields["count"], fields["count"])
	}
	if fields["ready"] != true {
		t.Errorf("ready = %v, want true", fields["ready"])
	}
	if fields["name"] != "heater-1" {
		t.Errorf("name = %v, want heater-1", fields["name"])
	}
	if fields["ratio"] != 1.5 {
		t.Errorf("ratio = %v, want 1.5", fields["ratio"])
	}
}

func TestParseAssignmentsRejectsMissingEquals(t *testing.T) {
	if _, err := ParseAssignments([]string{"nope"}); err == nil {
		t.Errorf("expected an error for an assignment without '='")
	}
}
