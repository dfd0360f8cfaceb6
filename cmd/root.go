// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Connection flags, shared by every subcommand that talks to a link.
	portName      string
	baudRate      int
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool
)

var rootCmd = &cobra.Command{
	Use:   "framegate",
	Short: "Serial frame codec driver and inspector",
	Long: `framegate drives the framecodec package against a real link.

It can open a serial port or a WebSocket bridge, encode and send frames,
wait for a single well-formed frame, or run a live terminal dashboard of
decode statistics. The framing protocol itself lives in pkg/framecodec
and does no I/O; this tool is the thing that actually moves bytes.`,
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate")
	rootCmd.PersistentFlags().StringVar(&wsURL, "url", "", "WebSocket bridge URL (ws:// or wss://), alternative to --port")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "ws-user", "", "WebSocket basic-auth username")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "insecure-skip-verify", false, "Skip TLS certificate verification for wss://")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
