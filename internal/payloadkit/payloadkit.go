// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package payloadkit builds and reads structured demo payloads for the
// framegate CLI. The wire protocol itself only ever sees an opaque byte
// slice (see pkg/framecodec) — this package is a convenience layer so
// the send/monitor/dashboard commands can exchange a small CBOR-encoded
// map instead of hand-assembled bytes.
package payloadkit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Encode CBOR-encodes fields into a byte slice suitable for handing to
// framecodec.Encode as the payload. A nil or empty map encodes to a
// CBOR null, the convention used for "no payload".
func Encode(fields map[string]interface{}) ([]byte, error) {
	if len(fields) == 0 {
		return cbor.Marshal(nil)
	}
	return cbor.Marshal(fields)
}

// Decode reverses Encode. It returns ok == false (not an error) when
// data doesn't decode as a CBOR map — callers fall back to a hex dump
// in that case, since an arbitrary frame payload need not be CBOR at
// all.
func Decode(data []byte) (fields map[string]interface{}, ok bool) {
	if len(data) == 0 {
		return nil, true
	}
	var raw interface{}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	if raw == nil {
		return nil, true
	}
	m, isMap := raw.(map[interface{}]interface{})
	if !isMap {
		return nil, false
	}
	fields = make(map[string]interface{}, len(m))
	for k, v := range m {
		key, isString := k.(string)
		if !isString {
			return nil, false
		}
		fields[key] = v
	}
	return fields, true
}

// ParseAssignments turns a list of "key=value" CLI arguments into a
// fields map suitable for Encode. Values are parsed as int64, float64
// or bool where possible and fall back to string, so "count=3" and
// "ready=true" round-trip as their natural CBOR types instead of text.
func ParseAssignments(args []string) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", arg)
		}
		fields[key] = parseScalar(value)
	}
	return fields, nil
}

func parseScalar(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// Format renders a decoded fields map for terminal display, sorted by
// key isn't required here since map iteration order in a CLI demo
// output is cosmetic only.
func Format(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return "(no payload)"
	}
	var b strings.Builder
	first := true
	for k, v := range fields {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%v", k, v)
	}
	return b.String()
}
