// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package framecodec implements a framing codec for a byte-oriented,
// packetized serial-message protocol. It packs arbitrary payloads of
// 0-254 bytes into self-delimited frames and incrementally parses such
// frames out of an arbitrary byte stream.
//
// The wire format is fixed and normative down to the byte: start byte,
// id byte, a COBS-like overhead byte, a length byte, the (COBS-encoded)
// payload, a CRC-8 byte, and a stop byte. See the package-level
// constants for the exact values.
//
// This package does no I/O of its own. Callers hand it bytes read from
// whatever transport they use and transmit the bytes it produces; see
// the repository's cmd/ package for a CLI that drives the codec over a
// serial port or a WebSocket bridge.
package framecodec
