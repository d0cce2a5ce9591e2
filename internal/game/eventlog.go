package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/gunplay/internal/combat"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 13
)

// EventLog is a ring buffer of avatar events rendered on-screen.
type EventLog struct {
	entries []combat.SimLogEntry
	head    int
	count   int

	// copyFn writes to the system clipboard. Swapped in tests.
	copyFn func(string) error
}

// NewEventLog creates an event log with a fixed capacity. When bus is not
// nil the log subscribes to every event on it.
func NewEventLog(bus *combat.Bus) *EventLog {
	el := &EventLog{
		entries: make([]combat.SimLogEntry, logMaxEntries),
		copyFn:  clipboard.WriteAll,
	}
	if bus != nil {
		bus.SubscribeAll(func(ev combat.Event) { el.Add(combat.EntryFor(ev)) })
	}
	return el
}

// Add appends an entry, overwriting the oldest once full.
func (el *EventLog) Add(e combat.SimLogEntry) {
	el.entries[el.head] = e
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []combat.SimLogEntry {
	result := make([]combat.SimLogEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Len is the number of buffered entries.
func (el *EventLog) Len() int { return el.count }

// Text renders the buffered entries one per line.
func (el *EventLog) Text() string {
	var sb strings.Builder
	for _, e := range el.Recent() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CopyToClipboard exports the buffered entries.
func (el *EventLog) CopyToClipboard() error {
	if err := el.copyFn(el.Text()); err != nil {
		return fmt.Errorf("copy event log: %w", err)
	}
	return nil
}

func categoryColor(category string) color.RGBA {
	switch category {
	case "combat":
		return color.RGBA{R: 210, G: 90, B: 70, A: 255}
	case "equip":
		return color.RGBA{R: 90, G: 170, B: 220, A: 255}
	case "inventory":
		return color.RGBA{R: 200, G: 190, B: 80, A: 255}
	case "item":
		return color.RGBA{R: 100, G: 200, B: 110, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}
}

// Draw renders the log panel with its left edge at panelX.
func (el *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, logPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, px, 0, logPanelWidth, 18, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	drawText(screen, "EVENT LOG  [L] copy", float64(panelX+8), 3, color.White)
	vector.StrokeLine(screen, px, 18, px+logPanelWidth, 18, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := el.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const recent = 3

	y := 22
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, px+2, float32(y), logPanelWidth-4, logLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, px+5, float32(y+4), 3, 5, categoryColor(e.Category), false)
		line := fmt.Sprintf("%4d %s %s", e.Tick, e.Key, e.Value)
		drawText(screen, line, float64(panelX+12), float64(y), color.RGBA{R: 210, G: 215, B: 205, A: 255})
		y += logLineHeight
	}
}
