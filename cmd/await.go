// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/corvid-systems/framegate/pkg/framecodec"
	"github.com/spf13/cobra"
)

var awaitTimeout int

var awaitCmd = &cobra.Command{
	Use:   "await",
	Short: "Wait for a single valid frame, for connectivity testing",
	Long: `Connect and wait until one complete, CRC-valid frame arrives or the
timeout elapses. Invalid bytes before the frame are discarded and reported
as a count; framing errors inside a frame are ignored so probing works
even against a noisy or half-configured link.

Exit codes:
  0 - a valid frame was received before the timeout
  1 - timeout reached without a valid frame
  2 - connection error`,
	RunE: runAwait,
}

func init() {
	rootCmd.AddCommand(awaitCmd)
	awaitCmd.Flags().IntVar(&awaitTimeout, "timeout", 10, "seconds to wait for a frame")
}

func runAwait(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	fmt.Printf("framegate await\nConnection: %s\nTimeout: %ds\n\n", connInfo, awaitTimeout)

	type result struct {
		status       framecodec.Status
		id           byte
		payload      []byte
		invalidBytes int
	}
	resultChan := make(chan result, 1)
	errChan := make(chan error, 1)

	go func() {
		decoder := framecodec.NewDecoder()
		buf := make([]byte, 256)
		invalidBytes := 0

		for {
			n, err := conn.Read(buf)
			if err != nil {
				errChan <- err
				return
			}

			chunk := buf[:n]
			for len(chunk) > 0 {
				status, consumed := decoder.Feed(chunk)
				chunk = chunk[consumed:]

				if status.IsError() {
					invalidBytes += consumed
					continue
				}
				if status == framecodec.DataReady {
					resultChan <- result{status, decoder.ID(), append([]byte(nil), decoder.Payload()...), invalidBytes}
					return
				}
			}
		}
	}()

	select {
	case r := <-resultChan:
		fmt.Printf("SUCCESS: received a valid frame\n")
		fmt.Printf("  id: %d\n", r.id)
		fmt.Printf("  payload: %s\n", framecodec.Hexdump(r.payload))
		fmt.Printf("  invalid bytes skipped: %d\n", r.invalidBytes)
		os.Exit(0)

	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(2)

	case <-time.After(time.Duration(awaitTimeout) * time.Second):
		fmt.Fprintf(os.Stderr, "TIMEOUT: no valid frame within %ds\n", awaitTimeout)
		os.Exit(1)
	}

	return nil
}
