package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/config"
	"github.com/mlihgenel/medianexus-cli/internal/installer"
	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var doctorInstall bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Sistem gereksinimlerini kontrol et",
	Long: `FFmpeg/ffprobe kurulumunu ve yapılandırma dizinini kontrol eder.
--install ile eksik FFmpeg sistem paket yöneticisiyle kurulabilir.

Örnekler:
  medianexus-cli doctor
  medianexus-cli doctor --install`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.PrintBanner()

		// FFmpeg
		ff, err := transcoder.Find()
		if err != nil {
			ui.PrintError("FFmpeg: bulunamadı")
			info := installer.FFmpegInstall()
			if info.Supported {
				ui.PrintInfo(fmt.Sprintf("Kurulum komutu: %s", info.Description))
				if doctorInstall {
					ui.PrintInfo("FFmpeg kuruluyor...")
					if _, err := installer.InstallFFmpeg(); err != nil {
						return err
					}
					ui.PrintSuccess("FFmpeg kuruldu.")
				} else {
					ui.PrintInfo("Otomatik kurulum için: medianexus-cli doctor --install")
				}
			} else {
				ui.PrintInfo(fmt.Sprintf("Manuel kurulum: %s", info.ManualURL))
			}
		} else {
			ui.PrintSuccess(fmt.Sprintf("FFmpeg:  %s", ff.Path))
			ui.PrintSuccess(fmt.Sprintf("FFprobe: %s", ff.ProbePath))
		}

		// Yapılandırma dizini
		dir, err := config.Dir()
		if err != nil {
			ui.PrintError(fmt.Sprintf("Yapılandırma dizini belirlenemedi: %v", err))
			return nil
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			ui.PrintError(fmt.Sprintf("Yapılandırma dizini yazılamıyor: %s", dir))
			return nil
		}
		ui.PrintSuccess(fmt.Sprintf("Yapılandırma: %s", dir))

		cfg := config.Load()
		ui.PrintInfo(fmt.Sprintf("Kütüphane klasörü: %d kayıtlı", len(cfg.LibraryPaths)))

		return nil
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorInstall, "install", false, "Eksik FFmpeg'i otomatik kur")
	rootCmd.AddCommand(doctorCmd)
}
