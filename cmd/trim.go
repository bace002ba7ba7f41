package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/cache"
	"github.com/mlihgenel/medianexus-cli/internal/timeline"
	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var (
	trimStart string
	trimEnd   string
)

var trimCmd = &cobra.Command{
	Use:   "trim <dosya>",
	Short: "Medya dosyasını kırpıp önbelleğe kaydet",
	Long: `Dosyanın belirtilen aralığını kare hassasiyetinde kırpar ve kırpma
önbelleğine kaydeder. Zamanlar MM:SS.mmm formatında verilir.

Aynı dosya ve aralık için çıktı önbellekte zaten varsa ffmpeg
çalıştırılmaz, mevcut kayıt kullanılır.

Örnekler:
  medianexus-cli trim klip.mp4 --start 00:05.000 --end 01:20.500
  medianexus-cli trim kayit.mp3 --start 00:00.000 --end 00:30.000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		startMS, err := timeline.ParseTimecode(trimStart)
		if err != nil {
			return err
		}
		endMS, err := timeline.ParseTimecode(trimEnd)
		if err != nil {
			return err
		}

		env, err := newNexusEnv(true)
		if err != nil {
			return err
		}

		dir, err := trimCacheDir()
		if err != nil {
			return err
		}
		ix, err := cache.Load(dir)
		if err != nil {
			return err
		}

		startedAt := time.Now()
		entry, err := cache.Export(env.ff, ix, src, startMS, endMS)
		if err != nil {
			var verr *transcoder.ValidationError
			var perr *transcoder.ProcessError
			switch {
			case errors.As(err, &verr):
				ui.PrintError(fmt.Sprintf("Geçersiz istek: %s", verr.Msg))
			case errors.As(err, &perr):
				ui.PrintError("Kırpma başarısız oldu:")
				fmt.Println(perr.Error())
			}
			return err
		}

		ui.PrintTrim(filepath.Base(src), entry.DisplayName)
		ui.PrintSuccess(fmt.Sprintf("Klip önbelleğe kaydedildi: %s", entry.Path))
		ui.PrintDuration(time.Since(startedAt))
		return nil
	},
}

func init() {
	trimCmd.Flags().StringVarP(&trimStart, "start", "s", "", "Başlangıç zamanı (MM:SS.mmm)")
	trimCmd.Flags().StringVarP(&trimEnd, "end", "e", "", "Bitiş zamanı (MM:SS.mmm)")

	trimCmd.MarkFlagRequired("start")
	trimCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(trimCmd)
}
