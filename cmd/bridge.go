// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var (
	bridgeListenAddr string
	bridgePortName   string
	bridgeBaudRate   int
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Relay frames between a serial port and WebSocket clients",
	Long: `Open a serial port and a WebSocket listener, and relay raw bytes
between them: anything read from the serial port is broadcast to every
connected WebSocket client, and anything sent by a client is written to
the serial port.

Frames are not decoded or validated; the bridge moves bytes only, which
keeps it usable even while the wire format evolves.`,
	RunE: runBridge,
}

func init() {
	rootCmd.AddCommand(bridgeCmd)
	bridgeCmd.Flags().StringVar(&bridgeListenAddr, "listen", ":8080", "address to listen for WebSocket clients on")
	bridgeCmd.Flags().StringVar(&bridgePortName, "port", "", "serial port to bridge (required)")
	bridgeCmd.Flags().IntVar(&bridgeBaudRate, "baud", 115200, "serial baud rate")
	bridgeCmd.MarkFlagRequired("port")
}

var bridgeUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// bridgeHub fans serial bytes out to every connected client and serializes
// writes back to the serial port.
type bridgeHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	serial  Connection
}

func newBridgeHub(serial Connection) *bridgeHub {
	return &bridgeHub{
		clients: make(map[*websocket.Conn]struct{}),
		serial:  serial,
	}
}

func (h *bridgeHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *bridgeHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *bridgeHub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			log.Printf("bridge: dropping client after write error: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func (h *bridgeHub) handleClient(w http.ResponseWriter, r *http.Request) {
	conn, err := bridgeUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("bridge: upgrade failed: %v", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		h.mu.Lock()
		_, err = h.serial.Write(data)
		h.mu.Unlock()
		if err != nil {
			log.Printf("bridge: serial write failed: %v", err)
			return
		}
	}
}

func (h *bridgeHub) pumpSerial() {
	buf := make([]byte, 256)
	for {
		n, err := h.serial.Read(buf)
		if err != nil {
			log.Printf("bridge: serial read failed: %v", err)
			return
		}
		if n == 0 {
			continue
		}
		chunk := append([]byte(nil), buf[:n]...)
		h.broadcast(chunk)
	}
}

func runBridge(cmd *cobra.Command, args []string) error {
	conn, err := OpenSerialConnection(bridgePortName, bridgeBaudRate)
	if err != nil {
		return err
	}
	defer conn.Close()

	hub := newBridgeHub(conn)

	mux := http.NewServeMux()
	mux.HandleFunc("/", hub.handleClient)

	fmt.Printf("framegate bridge\nSerial: %s @ %d baud\nListening: %s\n", bridgePortName, bridgeBaudRate, bridgeListenAddr)

	go hub.pumpSerial()

	return http.ListenAndServe(bridgeListenAddr, mux)
}
