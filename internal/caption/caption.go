// Package caption maintains the visible caption text: timestamped lines,
// stable per-character identifiers, a fixed-width wrap layout, and the
// spring animation that stacks lines above the bottom margin.
package caption

import (
	"github.com/charmbracelet/harmonica"

	"github.com/bigmakers/Kotoha/internal/geom"
)

// Config describes the caption block geometry and behavior.
type Config struct {
	MaxColumns int     // wrap width in character cells
	MaxLines   int     // visible line cap; the oldest line drops first
	Hold       float64 // seconds a line stays visible after creation
	CellWidth  float64 // fixed character advance, pixels
	LineHeight float64 // vertical distance between stacked lines, pixels
	Left       float64 // x of the first column
	Bottom     float64 // y of the newest line's row center

	SpringFPS       int
	SpringFrequency float64
	SpringDamping   float64
}

// Slot is one visible character cell, recomputed from the model on demand.
// Pos is the cell center in overlay coordinates.
type Slot struct {
	ID   int
	Rune rune
	Pos  geom.Point
}

type char struct {
	id int
	r  rune
}

type line struct {
	chars   []char
	addedAt float64

	// targetY is the line's stack row; offsetY/velY are spring state that
	// relaxes the rendered position toward it.
	targetY float64
	offsetY float64
	velY    float64
	placed  bool
}

// Model owns the visible caption lines. Single-writer, like the rest of the
// engine state: all mutation happens on the tick context.
type Model struct {
	cfg    Config
	lines  []*line
	nextID int
	spring harmonica.Spring
}

// NewModel returns an empty caption model.
func NewModel(cfg Config) *Model {
	fps := cfg.SpringFPS
	if fps <= 0 {
		fps = 60
	}
	return &Model{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.SpringFrequency, cfg.SpringDamping),
	}
}

// Append adds a finalized caption line stamped with now. The text is
// wrapped to the configured column count; every rune receives a fresh
// stable id so scatter membership survives later relayout.
func (m *Model) Append(text string, now float64) {
	for _, row := range wrapRunes([]rune(text), m.cfg.MaxColumns) {
		chars := make([]char, 0, len(row))
		for _, r := range row {
			m.nextID++
			chars = append(chars, char{id: m.nextID, r: r})
		}
		m.lines = append(m.lines, &line{chars: chars, addedAt: now})
	}
	m.enforceLineCap()
	m.retarget()
}

// Prune drops lines older than the hold duration.
func (m *Model) Prune(now float64) {
	kept := m.lines[:0]
	for _, ln := range m.lines {
		if now-ln.addedAt > m.cfg.Hold {
			continue
		}
		kept = append(kept, ln)
	}
	if len(kept) != len(m.lines) {
		m.lines = kept
		m.retarget()
	}
}

// RemoveChars deletes the characters with the given ids, dropping any line
// left empty. Called after a scatter episode completes.
func (m *Model) RemoveChars(ids []int) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}
	keptLines := m.lines[:0]
	changed := false
	for _, ln := range m.lines {
		keptChars := ln.chars[:0]
		for _, c := range ln.chars {
			if _, ok := doomed[c.id]; ok {
				changed = true
				continue
			}
			keptChars = append(keptChars, c)
		}
		ln.chars = keptChars
		if len(ln.chars) == 0 {
			continue
		}
		keptLines = append(keptLines, ln)
	}
	if changed {
		m.lines = keptLines
		m.retarget()
	}
}

// StepSprings advances every line's stacking spring by one frame.
func (m *Model) StepSprings() {
	for _, ln := range m.lines {
		ln.offsetY, ln.velY = m.spring.Update(ln.offsetY, ln.velY, 0)
	}
}

// AppendSlots appends the current character slots to dst and returns the
// extended slice. Positions are pure functions of the wrap layout plus the
// per-line spring offset.
func (m *Model) AppendSlots(dst []Slot) []Slot {
	for _, ln := range m.lines {
		rowY := ln.targetY + ln.offsetY
		for col, c := range ln.chars {
			dst = append(dst, Slot{
				ID:   c.id,
				Rune: c.r,
				Pos: geom.Point{
					X: m.cfg.Left + (float64(col)+0.5)*m.cfg.CellWidth,
					Y: rowY,
				},
			})
		}
	}
	return dst
}

// AppendVisibleIDs appends the ids of every visible character to dst.
func (m *Model) AppendVisibleIDs(dst []int) []int {
	for _, ln := range m.lines {
		for _, c := range ln.chars {
			dst = append(dst, c.id)
		}
	}
	return dst
}

// HasVisible reports whether any character is on screen.
func (m *Model) HasVisible() bool {
	for _, ln := range m.lines {
		if len(ln.chars) > 0 {
			return true
		}
	}
	return false
}

// LineCount returns the number of visible lines.
func (m *Model) LineCount() int { return len(m.lines) }

// enforceLineCap drops the oldest lines beyond the visible cap.
func (m *Model) enforceLineCap() {
	if m.cfg.MaxLines <= 0 || len(m.lines) <= m.cfg.MaxLines {
		return
	}
	drop := len(m.lines) - m.cfg.MaxLines
	m.lines = append(m.lines[:0], m.lines[drop:]...)
}

// retarget recomputes each line's stack row from the bottom up. Surviving
// lines keep their rendered position by folding the row delta into the
// spring offset; a brand-new line enters from one row below its slot.
func (m *Model) retarget() {
	n := len(m.lines)
	for i, ln := range m.lines {
		target := m.cfg.Bottom - float64(n-1-i)*m.cfg.LineHeight
		if ln.placed {
			ln.offsetY += ln.targetY - target
		} else {
			ln.offsetY = m.cfg.LineHeight
			ln.placed = true
		}
		ln.targetY = target
	}
}

// wrapRunes splits text into rows of at most maxCols runes, breaking at the
// last space inside the row when one exists. A fixed-width approximation:
// every rune occupies one cell.
func wrapRunes(text []rune, maxCols int) [][]rune {
	if maxCols <= 0 {
		maxCols = 1
	}
	var rows [][]rune
	for len(text) > 0 {
		if len(text) <= maxCols {
			rows = append(rows, text)
			break
		}
		cut := maxCols
		for i := maxCols; i > 0; i-- {
			if text[i-1] == ' ' {
				cut = i
				break
			}
		}
		row := text[:cut]
		// Trailing spaces carry no glyphs; drop them from the row.
		for len(row) > 0 && row[len(row)-1] == ' ' {
			row = row[:len(row)-1]
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
		text = text[cut:]
		for len(text) > 0 && text[0] == ' ' {
			text = text[1:]
		}
	}
	return rows
}
