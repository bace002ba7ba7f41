package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/library"
	"github.com/mlihgenel/medianexus-cli/internal/thumbs"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Kütüphaneyi tara ve önizlemeleri üret",
	Long: `Kayıtlı tüm kütüphane klasörlerini tarar ve eksik önizlemeleri
paralel olarak üretir. Önizlemesi çıkarılamayan dosyalar (ör. ses)
önizlemesiz listelenir.

Örnek:
  medianexus-cli scan
  medianexus-cli scan --workers 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newNexusEnv(false)
		if err != nil {
			return err
		}
		if len(env.cfg.LibraryPaths) == 0 {
			ui.PrintInfo("Kütüphane boş. Klasör eklemek için: medianexus-cli library add <dizin>")
			return nil
		}

		startedAt := time.Now()

		assets, failed := library.ScanAll(env.cfg.LibraryPaths)
		for _, path := range failed {
			ui.PrintWarning(fmt.Sprintf("Klasör okunamadı: %s", path))
		}

		var video, audio int
		for _, a := range assets {
			switch a.Kind {
			case library.KindVideo:
				video++
			case library.KindAudio:
				audio++
			}
		}

		thumbed := 0
		if env.ff != nil && len(assets) > 0 {
			thumbDir, err := thumbCacheDir()
			if err != nil {
				return err
			}

			pipeline := thumbs.New(env.ff, thumbDir, workers)
			requested := 0
			for _, a := range assets {
				if pipeline.Request(a.Path) {
					requested++
				}
			}

			if requested > 0 {
				bar := ui.NewProgressBar(requested, "Önizleme")
				for done := 0; done < requested; done++ {
					res := <-pipeline.Results()
					if res.Err == nil {
						thumbed++
					} else if verbose {
						ui.PrintWarning(fmt.Sprintf("Önizleme üretilemedi: %s", res.Source))
					}
					bar.Update(done + 1)
				}
			}
			pipeline.Close()
		}

		ui.PrintScanSummary(len(assets), video, audio, thumbed, time.Since(startedAt))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
