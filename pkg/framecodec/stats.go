// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package framecodec

import "time"

// Stats tracks running counters and derived rates over a stream of
// Decoder results. It is purely observational: nothing in this package
// consults it, and feeding a Decoder works identically whether or not a
// caller happens to also be updating a Stats alongside it.
type Stats struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	TotalFrames      uint64
	ValidFrames      uint64
	CrcErrors        uint64
	HighPayloadErrors uint64
	StopByteErrors   uint64
	CobsErrors       uint64

	FrameRate float64 // frames/sec, DataReady only
	ErrorRate float64 // errors/sec, any of the four error statuses
}

// NewStats returns a Stats tracker with both timestamps set to now.
func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, LastUpdateTime: now}
}

// Update folds one Decoder status into the counters. Continue is
// ignored: it carries no information about frame boundaries.
func (s *Stats) Update(status Status) {
	switch status {
	case DataReady:
		s.TotalFrames++
		s.ValidFrames++
	case CrcError:
		s.TotalFrames++
		s.CrcErrors++
	case HighPayloadError:
		s.TotalFrames++
		s.HighPayloadErrors++
	case StopByteError:
		s.TotalFrames++
		s.StopByteErrors++
	case CobsError:
		s.TotalFrames++
		s.CobsErrors++
	}
}

// TotalErrors is the sum of every error counter.
func (s *Stats) TotalErrors() uint64 {
	return s.CrcErrors + s.HighPayloadErrors + s.StopByteErrors + s.CobsErrors
}

// CalculateRates recomputes FrameRate and ErrorRate from elapsed wall
// time since StartTime and advances LastUpdateTime. Callers that poll
// Stats periodically (e.g. a terminal dashboard on a tick) call this
// once per tick rather than on every Update.
func (s *Stats) CalculateRates() {
	now := time.Now()
	elapsed := now.Sub(s.StartTime).Seconds()
	if elapsed > 0 {
		s.FrameRate = float64(s.ValidFrames) / elapsed
		s.ErrorRate = float64(s.TotalErrors()) / elapsed
	}
	s.LastUpdateTime = now
}
