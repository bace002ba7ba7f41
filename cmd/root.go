package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/config"
	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var (
	verbose bool
	workers int

	appVersion = "dev"
	appDate    = ""
)

// SetVersionInfo build-time version bilgisini ayarlar
func SetVersionInfo(version, date string) {
	if strings.TrimSpace(version) != "" {
		appVersion = version
	}
	appDate = strings.TrimSpace(date)
	if appDate == "" || appDate == "unknown" {
		appDate = time.Now().Format("2006-01-02 15:04:05")
	}
	rootCmd.Version = appVersion
	rootCmd.SetVersionTemplate(versionTemplate())
}

func versionTemplate() string {
	return fmt.Sprintf(
		"MediaNexus CLI v%s\nTarih:  %s\nGo:     %s\nOS:     %s/%s\n",
		appVersion, appDate, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}

var rootCmd = &cobra.Command{
	Use:   "medianexus-cli",
	Short: "MediaNexus CLI - yerel medya kutuphanesi ve kirpma araci",
	Long: `MediaNexus CLI — Yerel medya kütüphanenizi yönetin, klipleri kırpın.

Video ve ses dosyalarınızı internet'e yüklemeden tarar, önizlemelerini
üretir ve interaktif zaman çizelgesiyle kare hassasiyetinde kırpar.
Kırpılan klipler yerel önbellekte saklanır.

Desteklenen formatlar:
  Video:  MP4, MOV, AVI, MKV  (FFmpeg gerekir)
  Ses:    MP3, WAV, FLAC, AAC

Örnekler:
  medianexus-cli library add ~/Videolar
  medianexus-cli scan
  medianexus-cli trim klip.mp4 --start 00:05.000 --end 01:20.500
  medianexus-cli station klip.mp4
  medianexus-cli cache list
  medianexus-cli watch ~/Videolar
  medianexus-cli report rapor.pdf`,
	Version: appVersion,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Dosya verilirse kırpma istasyonunu aç, verilmezse yardım göster
		if len(args) == 1 {
			return stationCmd.RunE(cmd, args)
		}
		ui.PrintBanner()
		return cmd.Help()
	},
}

// Execute CLI'ı çalıştırır
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Detaylı çıktı modu")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Paralel worker sayısı (önizleme üretiminde)")

	SetVersionInfo(appVersion, appDate)

	// Hata mesajlarını özelleştir
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "Hata: %s\n\n", err.Error())
		cmd.Usage()
		return err
	})
}

// nexusEnv komutların ortak çalışma ortamı: yapılandırma ve FFmpeg.
type nexusEnv struct {
	cfg *config.Config
	ff  *transcoder.FFmpeg
}

// newNexusEnv yapılandırmayı yükler ve gerekiyorsa FFmpeg'i çözer.
func newNexusEnv(requireFFmpeg bool) (*nexusEnv, error) {
	env := &nexusEnv{cfg: config.Load()}

	ff, err := transcoder.Find()
	if err != nil {
		if requireFFmpeg {
			return nil, err
		}
		ui.PrintWarning("FFmpeg bulunamadı; önizleme ve kırpma devre dışı. Kurulum: medianexus-cli doctor")
	}
	env.ff = ff

	return env, nil
}

// trimCacheDir kırpma önbelleğinin kök klasörünü döner (~/.medianexus/cache).
// Kırpılmış klipler doğrudan bu klasörde durur.
func trimCacheDir() (string, error) {
	return config.CacheDir("cache")
}

// thumbCacheDir önizleme klasörünü döner (~/.medianexus/cache/thumbnails).
func thumbCacheDir() (string, error) {
	dir, err := trimCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "thumbnails"), nil
}
