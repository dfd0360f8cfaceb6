// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package framecodec

import "testing"

func TestStatsUpdateCounts(t *testing.T) {
	s := NewStats()
	s.Update(DataReady)
	s.Update(DataReady)
	s.Update(CrcError)
	s.Update(StopByteError)
	s.Update(Continue) // must not count as a frame

	if s.TotalFrames != 4 {
		t.Errorf("TotalFrames = %d, want 4", s.TotalFrames)
	}
	if s.ValidFrames != 2 {
		t.Errorf("ValidFrames = %d, want 2", s.ValidFrames)
	}
	if s.TotalErrors() != 2 {
		t.Errorf("TotalErrors = %d, want 2", s.TotalErrors())
	}
}

func TestFormatStatus(t *testing.T) {
	if got := FormatStatus(DataReady, 3, 5); got != "DataReady id=3 len=5" {
		t.Errorf("FormatStatus(DataReady) = %q", got)
	}
	if got := FormatStatus(Continue, 0, 0); got != "Continue" {
		t.Errorf("FormatStatus(Continue) = %q", got)
	}
	if got := FormatStatus(CrcError, 1, 0); got != "CrcError id=1" {
		t.Errorf("FormatStatus(CrcError) = %q", got)
	}
}

func TestHexdump(t *testing.T) {
	if got := Hexdump(nil); got != "(empty)" {
		t.Errorf("Hexdump(nil) = %q", got)
	}
	if got := Hexdump([]byte{0x7E, 0x01, 0xAB}); got != "7e 01 ab" {
		t.Errorf("Hexdump = %q", got)
	}
}
