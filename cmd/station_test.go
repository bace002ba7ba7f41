package cmd

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlihgenel/medianexus-cli/internal/config"
	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
)

func newTestStation() stationModel {
	ff := &transcoder.FFmpeg{Path: "ffmpeg", ProbePath: "ffprobe"}
	m := newStationModel("/medya/klip.mp4", ff, config.Default())
	m.tl.TrackWidth = 1816
	return m
}

func TestStationDurationResetsTimeline(t *testing.T) {
	m := newTestStation()

	updated, _ := m.Update(durationMsg{ms: 42000})
	m = updated.(stationModel)

	if m.state != stationReady {
		t.Fatalf("süre geldikten sonra durum ready olmalı")
	}
	if m.tl.Start != 0 || m.tl.End != 42000 || m.tl.Playhead != 0 {
		t.Fatalf("çizelge gerçek aralığa sıfırlanmalı: start=%d end=%d kafa=%d",
			m.tl.Start, m.tl.End, m.tl.Playhead)
	}
}

func TestStationDurationFailure(t *testing.T) {
	m := newTestStation()

	updated, _ := m.Update(durationMsg{err: errors.New("ffprobe hatası")})
	m = updated.(stationModel)

	if m.state != stationFailed || !m.resultErr {
		t.Fatalf("süre hatası failed durumuna geçirmeli")
	}
}

func TestStationMarkerKeys(t *testing.T) {
	m := newTestStation()
	updated, _ := m.Update(durationMsg{ms: 10000})
	m = updated.(stationModel)

	m.tl.SetPlayhead(3000)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	m = updated.(stationModel)
	if m.tl.Start != 3000 {
		t.Fatalf("[ tuşu başlangıcı kafaya taşımalı: %d", m.tl.Start)
	}

	m.tl.SetPlayhead(7000)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	m = updated.(stationModel)
	if m.tl.End != 7000 {
		t.Fatalf("] tuşu bitişi kafaya taşımalı: %d", m.tl.End)
	}
}

func TestStationArrowKeysStepPlayhead(t *testing.T) {
	m := newTestStation()
	updated, _ := m.Update(durationMsg{ms: 10000})
	m = updated.(stationModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(stationModel)
	if m.tl.Playhead != stationStepMS {
		t.Fatalf("sağ ok kafayı bir kare ilerletmeli: %d", m.tl.Playhead)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(stationModel)
	if m.tl.Playhead != 0 {
		t.Fatalf("sol ok kafayı geri almalı: %d", m.tl.Playhead)
	}

	// Aralık dışına çıkmaz.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(stationModel)
	if m.tl.Playhead != 0 {
		t.Fatalf("kafa Min altına inmemeli: %d", m.tl.Playhead)
	}
}

func TestStationMouseDragMovesPlayhead(t *testing.T) {
	m := newTestStation()
	updated, _ := m.Update(durationMsg{ms: 10000})
	m = updated.(stationModel)

	midPx := m.tl.ValueToPixel(5000) + stationTrackLeft

	updated, _ = m.Update(tea.MouseMsg{
		X: midPx, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	m = updated.(stationModel)

	updated, _ = m.Update(tea.MouseMsg{X: midPx, Action: tea.MouseActionMotion})
	m = updated.(stationModel)

	updated, _ = m.Update(tea.MouseMsg{X: midPx, Action: tea.MouseActionRelease})
	m = updated.(stationModel)

	if m.tl.Playhead < 4900 || m.tl.Playhead > 5100 {
		t.Fatalf("kafa sürüklenen konuma gitmeli: %d", m.tl.Playhead)
	}
}

func TestStationVolumeKeys(t *testing.T) {
	m := newTestStation()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = updated.(stationModel)
	if m.cfg.Volume != 100 {
		t.Fatalf("ses 100'ün üstüne çıkmamalı: %d", m.cfg.Volume)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m = updated.(stationModel)
	if m.cfg.Volume != 95 {
		t.Fatalf("ses 5 azalmalıydı: %d", m.cfg.Volume)
	}
}
