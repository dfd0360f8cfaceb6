// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad
//
// Framegate - a framing codec and CLI for a COBS-style serial protocol
//
// Commands for listing serial ports, monitoring and sending frames, and
// bridging a serial link to WebSocket clients.

package main

import (
	"fmt"
	"os"

	"github.com/corvid-systems/framegate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
