// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvid-systems/framegate/internal/payloadkit"
	"github.com/corvid-systems/framegate/pkg/framecodec"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live terminal dashboard of decode statistics",
	Long: `Run a live terminal dashboard showing frame rate, error rate, and the
last few decode events for a connection. Press 'q' or Ctrl+C to exit.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// logEntry is one line in the dashboard's scrolling event log.
type logEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

type tickMsg time.Time

// frameEventMsg is sent from the reader goroutine for every non-Continue status.
type frameEventMsg struct {
	status  framecodec.Status
	id      byte
	payload []byte
}

type syncMsg struct{ invalidBytes int }

type dashboardModel struct {
	connInfo      string
	stats         *framecodec.Stats
	log           []logEntry
	maxLogEntries int
	synchronized  bool
	invalidBytes  int
	quitting      bool
}

func initialDashboardModel(connInfo string) dashboardModel {
	return dashboardModel{
		connInfo:      connInfo,
		stats:         framecodec.NewStats(),
		maxLogEntries: 100,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.EnterAltScreen)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *dashboardModel) addLog(message string, isError bool) {
	m.log = append(m.log, logEntry{time.Now(), message, isError})
	if len(m.log) > m.maxLogEntries {
		m.log = m.log[len(m.log)-m.maxLogEntries:]
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.stats.CalculateRates()
		return m, tickCmd()

	case syncMsg:
		m.synchronized = true
		m.invalidBytes = msg.invalidBytes
		if msg.invalidBytes > 0 {
			m.addLog(fmt.Sprintf("synchronized after skipping %d invalid bytes", msg.invalidBytes), false)
		} else {
			m.addLog("synchronized", false)
		}

	case frameEventMsg:
		m.stats.Update(msg.status)
		if msg.status == framecodec.DataReady {
			if fields, ok := payloadkit.Decode(msg.payload); ok {
				m.addLog(fmt.Sprintf("id=%d %s", msg.id, payloadkit.Format(fields)), false)
			} else {
				m.addLog(fmt.Sprintf("id=%d %s", msg.id, framecodec.Hexdump(msg.payload)), false)
			}
		} else {
			m.addLog(msg.status.String(), true)
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Background(lipgloss.Color("235")).Padding(0, 1)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boxStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("FRAMEGATE DASHBOARD"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Press 'q' to quit", m.connInfo)))
	s.WriteString("\n\n")

	if !m.synchronized {
		s.WriteString(warningStyle.Render("waiting for synchronization..."))
		s.WriteString("\n\n")
	} else {
		s.WriteString(valueStyle.Render("synchronized"))
		if m.invalidBytes > 0 {
			s.WriteString(headerStyle.Render(fmt.Sprintf(" (skipped %d invalid bytes)", m.invalidBytes)))
		}
		s.WriteString("\n\n")
	}

	var validPct, errorPct float64
	if m.stats.TotalFrames > 0 {
		validPct = float64(m.stats.ValidFrames) * 100 / float64(m.stats.TotalFrames)
		errorPct = float64(m.stats.TotalErrors()) * 100 / float64(m.stats.TotalFrames)
	}

	var statsBody strings.Builder
	fmt.Fprintf(&statsBody, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("Total:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.TotalFrames)),
		labelStyle.Render("Valid:"), valueStyle.Render(fmt.Sprintf("%d (%.1f%%)", m.stats.ValidFrames, validPct)),
		labelStyle.Render("Errors:"), errorStyle.Render(fmt.Sprintf("%d (%.1f%%)", m.stats.TotalErrors(), errorPct)),
	)
	fmt.Fprintf(&statsBody, "%s %s   %s %s\n",
		labelStyle.Render("Frame rate:"), valueStyle.Render(fmt.Sprintf("%.2f/s", m.stats.FrameRate)),
		labelStyle.Render("Error rate:"), errorStyle.Render(fmt.Sprintf("%.2f/s", m.stats.ErrorRate)),
	)
	if m.stats.CrcErrors > 0 || m.stats.CobsErrors > 0 || m.stats.StopByteErrors > 0 || m.stats.HighPayloadErrors > 0 {
		fmt.Fprintf(&statsBody, "%s %d   %s %d   %s %d   %s %d",
			labelStyle.Render("CRC:"), m.stats.CrcErrors,
			labelStyle.Render("Cobs:"), m.stats.CobsErrors,
			labelStyle.Render("Stop:"), m.stats.StopByteErrors,
			labelStyle.Render("HighLen:"), m.stats.HighPayloadErrors,
		)
	}
	s.WriteString(boxStyle.Render(statsBody.String()))
	s.WriteString("\n\n")

	s.WriteString(headerStyle.Render("Recent events:"))
	s.WriteString("\n")
	start := 0
	if len(m.log) > 15 {
		start = len(m.log) - 15
	}
	for _, entry := range m.log[start:] {
		line := fmt.Sprintf("%s  %s", entry.timestamp.Format("15:04:05.000"), entry.message)
		if entry.isError {
			s.WriteString(errorStyle.Render(line))
		} else {
			s.WriteString(line)
		}
		s.WriteString("\n")
	}

	return s.String()
}

func runDashboard(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	program := tea.NewProgram(initialDashboardModel(connInfo))

	go func() {
		decoder := framecodec.NewDecoder()
		buf := make([]byte, 256)
		invalidBytes := 0
		reportedSync := false

		for {
			n, err := conn.Read(buf)
			if err != nil {
				return
			}

			chunk := buf[:n]
			for len(chunk) > 0 {
				status, consumed := decoder.Feed(chunk)
				chunk = chunk[consumed:]

				if status.IsError() {
					invalidBytes += consumed
					program.Send(frameEventMsg{status, decoder.ID(), nil})
					continue
				}
				if status != framecodec.DataReady {
					continue
				}

				if !reportedSync {
					reportedSync = true
					program.Send(syncMsg{invalidBytes})
				}
				program.Send(frameEventMsg{status, decoder.ID(), append([]byte(nil), decoder.Payload()...)})
			}
		}
	}()

	_, err = program.Run()
	return err
}
