package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/cache"
	"github.com/mlihgenel/medianexus-cli/internal/config"
	"github.com/mlihgenel/medianexus-cli/internal/timeline"
	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
)

// ========================================
// Renk Paleti ve Stiller
// ========================================

var (
	stationPrimary   = lipgloss.Color("#7C3AED") // Mor
	stationSecondary = lipgloss.Color("#06B6D4") // Cyan
	stationAccent    = lipgloss.Color("#10B981") // Yeşil
	stationDanger    = lipgloss.Color("#EF4444") // Kırmızı
	stationDimColor  = lipgloss.Color("#64748B") // Koyu gri

	stationTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(stationPrimary).
				Padding(0, 2).
				MarginBottom(1)

	stationTrackStyle = lipgloss.NewStyle().
				Foreground(stationDimColor)

	stationRegionStyle = lipgloss.NewStyle().
				Foreground(stationSecondary).
				Bold(true)

	stationMarkerStyle = lipgloss.NewStyle().
				Foreground(stationAccent).
				Bold(true)

	stationHeadStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F59E0B")).
				Bold(true)

	stationDimStyle = lipgloss.NewStyle().
			Foreground(stationDimColor)

	stationSuccessStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(stationAccent)

	stationErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(stationDanger)

	stationBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(stationPrimary).
			Padding(1, 3).
			MarginTop(1)
)

// Zaman çizelgesinin soldaki boşluğu; fare X'i bu kadar kaydırılır.
const stationTrackLeft = 2

// Ok tuşlarının adım büyüklüğü: yaklaşık bir kare (30 fps).
const stationStepMS = 33

// ========================================
// State Machine
// ========================================

type stationState int

const (
	stationLoading stationState = iota
	stationReady
	stationExporting
	stationDone
	stationFailed
)

type durationMsg struct {
	ms  int64
	err error
}

type exportDoneMsg struct {
	entry    cache.Entry
	err      error
	duration time.Duration
}

// ========================================
// Model
// ========================================

type stationModel struct {
	src string
	ff  *transcoder.FFmpeg
	cfg *config.Config

	state stationState
	tl    *timeline.Timeline

	spinner spinner.Model
	width   int

	resultMsg string
	resultErr bool
	duration  time.Duration

	quitting bool
}

func newStationModel(src string, ff *transcoder.FFmpeg, cfg *config.Config) stationModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(stationSecondary)

	tl := timeline.New(76)

	return stationModel{
		src:     src,
		ff:      ff,
		cfg:     cfg,
		state:   stationLoading,
		tl:      tl,
		spinner: sp,
		width:   80,
	}
}

func (m stationModel) probeCmd() tea.Cmd {
	return func() tea.Msg {
		ms, err := m.ff.ProbeDurationMS(m.src)
		return durationMsg{ms: ms, err: err}
	}
}

func (m stationModel) exportCmd(startMS, endMS int64) tea.Cmd {
	return func() tea.Msg {
		startedAt := time.Now()

		dir, err := trimCacheDir()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		ix, err := cache.Load(dir)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		entry, err := cache.Export(m.ff, ix, m.src, startMS, endMS)
		return exportDoneMsg{entry: entry, err: err, duration: time.Since(startedAt)}
	}
}

// ========================================
// bubbletea Interface
// ========================================

func (m stationModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.probeCmd())
}

func (m stationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		track := msg.Width - 2*stationTrackLeft
		if track < 20 {
			track = 20
		}
		m.tl.TrackWidth = track
		return m, nil

	case durationMsg:
		if msg.err != nil {
			m.state = stationFailed
			m.resultMsg = msg.err.Error()
			m.resultErr = true
			return m, nil
		}
		// Süre asenkron geldi; çizelge gerçek aralığa sıfırlanır.
		m.tl.Reset(0, msg.ms)
		m.state = stationReady
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.state = stationFailed
			m.resultMsg = msg.err.Error()
			m.resultErr = true
		} else {
			m.state = stationDone
			m.resultMsg = msg.entry.Path
			m.resultErr = false
			m.duration = msg.duration
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == stationLoading || m.state == stationExporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.MouseMsg:
		if m.state != stationReady {
			return m, nil
		}
		px := msg.X - stationTrackLeft
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.tl.BeginDrag(px)
				m.tl.UpdateDrag(px, msg.Shift)
			}
		case tea.MouseActionMotion:
			m.tl.UpdateDrag(px, msg.Shift)
		case tea.MouseActionRelease:
			m.tl.EndDrag()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			config.Save(m.cfg)
			return m, tea.Quit

		case "[":
			if m.state == stationReady {
				m.tl.SetStart(m.tl.Playhead)
			}
		case "]":
			if m.state == stationReady {
				m.tl.SetEnd(m.tl.Playhead)
			}
		case "left":
			if m.state == stationReady {
				m.tl.SetPlayhead(m.tl.Playhead - stationStepMS)
			}
		case "right":
			if m.state == stationReady {
				m.tl.SetPlayhead(m.tl.Playhead + stationStepMS)
			}
		case "+":
			m.cfg.SetVolume(m.cfg.Volume + 5)
		case "-":
			m.cfg.SetVolume(m.cfg.Volume - 5)

		case "enter":
			if m.state == stationReady {
				m.state = stationExporting
				return m, tea.Batch(m.spinner.Tick, m.exportCmd(m.tl.Start, m.tl.End))
			}
			if m.state == stationDone || m.state == stationFailed {
				m.quitting = true
				config.Save(m.cfg)
				return m, tea.Quit
			}
		}
		return m, nil
	}

	return m, nil
}

func (m stationModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	pad := strings.Repeat(" ", stationTrackLeft)

	b.WriteString("\n")
	b.WriteString(pad + stationTitleStyle.Render("✂️  Kırpma İstasyonu — "+filepath.Base(m.src)) + "\n\n")

	switch m.state {
	case stationLoading:
		b.WriteString(pad + m.spinner.View() + " Medya süresi okunuyor...\n")

	case stationReady, stationExporting:
		b.WriteString(m.renderTimeline(pad))
		b.WriteString(m.renderTimecodes(pad))
		b.WriteString(m.renderVolume(pad))

		if m.state == stationExporting {
			b.WriteString("\n" + pad + m.spinner.View() + " Kırpılıyor...\n")
		} else {
			b.WriteString("\n" + pad + stationDimStyle.Render(
				"sürükle: işaret/kafa • shift: ince ayar • [ ]: işaret koy • ←/→: kare kaydır") + "\n")
			b.WriteString(pad + stationDimStyle.Render(
				"enter: kırp • +/-: ses • q: çık") + "\n")
		}

	case stationDone:
		box := stationBoxStyle.Render(
			stationSuccessStyle.Render("✅ Klip önbelleğe kaydedildi") + "\n\n" +
				m.resultMsg + "\n" +
				stationDimStyle.Render(fmt.Sprintf("Süre: %.1fs", m.duration.Seconds())))
		b.WriteString(pad + strings.ReplaceAll(box, "\n", "\n"+pad) + "\n")
		b.WriteString("\n" + pad + stationDimStyle.Render("enter/q: çık") + "\n")

	case stationFailed:
		box := stationBoxStyle.Render(
			stationErrorStyle.Render("❌ İşlem başarısız") + "\n\n" + m.resultMsg)
		b.WriteString(pad + strings.ReplaceAll(box, "\n", "\n"+pad) + "\n")
		b.WriteString("\n" + pad + stationDimStyle.Render("enter/q: çık") + "\n")
	}

	return b.String()
}

// renderTimeline bandı tek satır olarak çizer: seçili bölge, işaretler
// ve oynatma kafası piksel eşlemesiyle yerleştirilir.
func (m stationModel) renderTimeline(pad string) string {
	width := m.tl.TrackWidth
	startPx := m.tl.ValueToPixel(m.tl.Start)
	endPx := m.tl.ValueToPixel(m.tl.End)
	headPx := m.tl.ValueToPixel(m.tl.Playhead)

	var b strings.Builder
	b.WriteString(pad)
	for px := 0; px < width; px++ {
		switch {
		case px == headPx:
			b.WriteString(stationHeadStyle.Render("◆"))
		case px == startPx || px == endPx:
			b.WriteString(stationMarkerStyle.Render("┃"))
		case px > startPx && px < endPx:
			b.WriteString(stationRegionStyle.Render("━"))
		default:
			b.WriteString(stationTrackStyle.Render("─"))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m stationModel) renderTimecodes(pad string) string {
	return fmt.Sprintf("%s%s %s  %s %s  %s %s\n",
		pad,
		stationMarkerStyle.Render("başlangıç:"),
		timeline.FormatTimecode(m.tl.Start),
		stationMarkerStyle.Render("bitiş:"),
		timeline.FormatTimecode(m.tl.End),
		stationHeadStyle.Render("kafa:"),
		timeline.FormatTimecode(m.tl.Playhead),
	)
}

func (m stationModel) renderVolume(pad string) string {
	filled := m.cfg.Volume / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return fmt.Sprintf("%s%s %s %d%%\n", pad, stationDimStyle.Render("ses:"), bar, m.cfg.Volume)
}

// ========================================
// Komut
// ========================================

var stationCmd = &cobra.Command{
	Use:   "station <dosya>",
	Short: "İnteraktif kırpma istasyonunu aç",
	Long: `Dosyayı interaktif zaman çizelgesinde açar. Fareyle işaretleri ve
oynatma kafasını sürükleyin; shift basılıyken sürükleme ince ayar
modunda çalışır (piksel-altı hassasiyet). Oynatma kafası bir işaretin
yakınına bırakılırsa işarete yapışır.

Örnek:
  medianexus-cli station klip.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		env, err := newNexusEnv(true)
		if err != nil {
			return err
		}

		model := newStationModel(src, env.ff, env.cfg)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(stationCmd)
}
