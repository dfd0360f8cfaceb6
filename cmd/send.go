// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/corvid-systems/framegate/internal/payloadkit"
	"github.com/corvid-systems/framegate/pkg/framecodec"
	"github.com/spf13/cobra"
)

var (
	sendID  uint8
	sendHex string
)

var sendCmd = &cobra.Command{
	Use:   "send [key=value ...]",
	Short: "Encode and transmit a single frame",
	Long: `Encode a frame and write it to the connection.

The payload comes from one of two sources:
  --hex       a literal hex-encoded payload, e.g. --hex 48692100
  key=value   one or more assignments, CBOR-encoded into a map payload

With neither, an empty payload is sent.`,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().Uint8Var(&sendID, "id", 0, "frame id byte")
	sendCmd.Flags().StringVar(&sendHex, "hex", "", "literal hex payload, mutually exclusive with key=value args")
}

func runSend(cmd *cobra.Command, args []string) error {
	payload, err := buildSendPayload(args)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	frame, ok := framecodec.Encode(payload, sendID)
	if !ok {
		return fmt.Errorf("payload of %d bytes exceeds the %d-byte limit", len(payload), framecodec.MaxPayloadSize)
	}

	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("write to %s failed: %w", connInfo, err)
	}

	fmt.Printf("sent id=%d payload=%s via %s\n", sendID, framecodec.Hexdump(payload), connInfo)
	return nil
}

func buildSendPayload(args []string) ([]byte, error) {
	if sendHex != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--hex and key=value arguments are mutually exclusive")
		}
		payload, err := hex.DecodeString(sendHex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex payload: %w", err)
		}
		return payload, nil
	}
	if len(args) == 0 {
		return nil, nil
	}
	fields, err := payloadkit.ParseAssignments(args)
	if err != nil {
		return nil, err
	}
	return payloadkit.Encode(fields)
}
