// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"log"

	"github.com/corvid-systems/framegate/internal/payloadkit"
	"github.com/corvid-systems/framegate/pkg/framecodec"
	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Continuously decode and display frames as they arrive",
	Long: `Continuously decode frames from a serial port or WebSocket bridge and
print each one as it completes, along with any decode errors.

Payloads that happen to decode as a CBOR map are shown as key=value pairs;
everything else is shown as a hex dump.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("framegate monitor\nConnection: %s\nPress Ctrl+C to exit\n\n", connInfo)

	decoder := framecodec.NewDecoder()
	buf := make([]byte, 256)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			log.Printf("read error: %v", err)
			continue
		}

		chunk := buf[:n]
		for len(chunk) > 0 {
			status, consumed := decoder.Feed(chunk)
			chunk = chunk[consumed:]

			switch status {
			case framecodec.DataReady:
				payload := decoder.Payload()
				if fields, ok := payloadkit.Decode(payload); ok {
					fmt.Printf("[id=%d len=%d] %s\n", decoder.ID(), len(payload), payloadkit.Format(fields))
				} else {
					fmt.Printf("[id=%d len=%d] %s\n", decoder.ID(), len(payload), framecodec.Hexdump(payload))
				}
			case framecodec.Continue:
				// nothing to report yet
			default:
				fmt.Printf("[ERROR] %s\n", status)
			}
		}
	}
}
