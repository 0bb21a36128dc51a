// Package render draws boarding snapshots for people. Renderers implement
// env.Observer and are attached to an environment; the simulator knows nothing of them.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
	"github.com/18Prachi/airplane-boarding-simulation/sim/env"
)

// Modes accepted by the CLI --render flag.
const (
	ModeNone     = "none"
	ModeTerminal = "terminal"
)

// ValidModes is the set of recognized render modes.
var ValidModes = map[string]bool{"": true, ModeNone: true, ModeTerminal: true}

// TextRenderer writes one text frame per observed snapshot:
// the seat map with the aisle column, the line still entering the plane, and the lobby.
type TextRenderer struct {
	w     io.Writer
	delay time.Duration // pause after each frame, 0 for none
	err   error         // first write error, reported by Close
}

// NewTextRenderer creates a renderer writing to w, pausing delay after every frame.
func NewTextRenderer(w io.Writer, delay time.Duration) *TextRenderer {
	return &TextRenderer{w: w, delay: delay}
}

// Observe implements env.Observer.
func (tr *TextRenderer) Observe(f env.Frame) {
	if tr.err != nil {
		return
	}
	if _, err := io.WriteString(tr.w, Frame(f)); err != nil {
		tr.err = fmt.Errorf("writing frame at tick %d: %w", f.Tick, err)
		return
	}
	if tr.delay > 0 {
		time.Sleep(tr.delay)
	}
}

// Close implements env.Observer and reports the first write error.
func (tr *TextRenderer) Close() error {
	return tr.err
}

// Frame renders f as text.
func Frame(f env.Frame) string {
	snap := f.Snapshot
	var sb strings.Builder

	width := 0
	if len(snap.Seats) > 0 {
		width = 4*len(snap.Seats[0]) - 1
	}
	fmt.Fprintf(&sb, "[tick %07d] step %d reward %d\n", f.Tick, f.Step, f.Reward)
	sb.WriteString(center("Seats", width) + " | Aisle Line\n")
	for row, seats := range snap.Seats {
		labels := make([]string, len(seats))
		for i, seat := range seats {
			labels[i] = seatLabel(seat)
		}
		sb.WriteString(strings.Join(labels, " "))
		sb.WriteString(" ")
		if row < snap.QueueLen {
			if pos := snap.Positions[row]; !pos.IsEmpty() {
				fmt.Fprintf(&sb, "| %s", slotLabel(pos))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nLine entering plane:\n")
	end := min(snap.QueueLen, len(snap.Positions))
	for i := snap.Rows; i < end; i++ {
		if pos := snap.Positions[i]; !pos.IsEmpty() {
			sb.WriteString(slotLabel(pos) + "\n")
		}
	}
	if snap.Truncated {
		sb.WriteString("...\n")
	}

	sb.WriteString("\nLobby:\n")
	for _, pool := range snap.Pools {
		labels := make([]string, len(pool))
		for i, id := range pool {
			labels[i] = fmt.Sprintf("P%02d", id)
		}
		sb.WriteString(strings.Join(labels, " ") + "\n")
	}
	if f.Terminated {
		sb.WriteString("\nBoarding complete.\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func seatLabel(s sim.SeatView) string {
	if s.Occupied {
		return fmt.Sprintf("P%02d", s.ID)
	}
	return fmt.Sprintf("S%02d", s.ID)
}

func slotLabel(v sim.SlotView) string {
	return fmt.Sprintf("P%02d %v", v.SeatID, sim.PassengerStatus(v.Status))
}

// center pads s with spaces to width, extra space going right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
