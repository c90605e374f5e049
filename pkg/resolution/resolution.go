// Package resolution maintains the table of window resolution presets and
// persists the selected preset between runs.
package resolution

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Preset is a window resolution with its display label.
type Preset struct {
	Width  int
	Height int
	Label  string
}

// ErrInvalidIndex reports a preset index outside the table.
var ErrInvalidIndex = errors.New("resolution: invalid preset index")

// presets runs smallest to largest. Indices are persisted to disk, so the
// order is part of the on-disk format.
var presets = []Preset{
	{256, 144, "144p"},
	{426, 240, "240p"},
	{640, 360, "360p"},
	{854, 480, "480p"},
	{1280, 720, "720p HD"},
	{1920, 1080, "1080p FHD"},
	{2560, 1440, "1440p QHD"},
	{2880, 1620, "1620p"},
	{3840, 2160, "2160p 4K"},
	{5120, 2880, "2880p 5K"},
	{7680, 4320, "4320p 8K"},
}

// DefaultIndex selects 1080p FHD.
const DefaultIndex = 5

const stateFileName = ".blackhole_resolution"

// Presets returns a copy of the preset table.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Closest returns the index of the preset nearest to the given dimensions,
// measured by |dWidth| + |dHeight|. The first of equally near presets wins.
func Closest(width, height int) int {
	best := 0
	bestDist := -1
	for i, p := range presets {
		dist := abs(p.Width-width) + abs(p.Height-height)
		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Manager tracks the selected preset and persists it as a bare index in a
// dotfile in the user's home directory.
type Manager struct {
	index int
	path  string
}

// NewManager starts at the default preset, with the state file in the
// user's home directory.
func NewManager() *Manager {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return NewManagerAt(filepath.Join(home, stateFileName))
}

// NewManagerAt starts at the default preset, with the state file at path.
func NewManagerAt(path string) *Manager {
	return &Manager{index: DefaultIndex, path: path}
}

// Current returns the selected preset.
func (m *Manager) Current() Preset {
	return presets[m.index]
}

// Index returns the selected preset index.
func (m *Manager) Index() int {
	return m.index
}

// Next selects and returns the following preset, wrapping past the largest.
func (m *Manager) Next() Preset {
	m.index = (m.index + 1) % len(presets)
	return presets[m.index]
}

// Previous selects and returns the preceding preset, wrapping past the
// smallest.
func (m *Manager) Previous() Preset {
	m.index = (m.index - 1 + len(presets)) % len(presets)
	return presets[m.index]
}

// Set selects the preset at index i. An out-of-range index is rejected and
// the selection is unchanged.
func (m *Manager) Set(i int) error {
	if i < 0 || i >= len(presets) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	m.index = i
	return nil
}

// SnapTo selects the preset closest to the given dimensions and returns it.
// Used to keep the selection in step when the window is resized by hand.
func (m *Manager) SnapTo(width, height int) Preset {
	m.index = Closest(width, height)
	return presets[m.index]
}

// Load reads the persisted preset index. A missing, malformed or
// out-of-range file leaves the selection unchanged; only unexpected read
// failures are reported.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read resolution file: %w", err)
	}

	index, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || index < 0 || index >= len(presets) {
		return nil
	}
	m.index = index
	return nil
}

// Save writes the selected preset index to the state file.
func (m *Manager) Save() error {
	data := []byte(strconv.Itoa(m.index) + "\n")
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save resolution file: %w", err)
	}
	return nil
}
