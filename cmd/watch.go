package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/library"
	"github.com/mlihgenel/medianexus-cli/internal/thumbs"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var (
	watchRecursive bool
	watchInterval  time.Duration
	watchSettle    time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <dizin>",
	Short: "Klasörü izleyip yeni medya için önizleme üret",
	Long: `Belirtilen klasörü izler ve yeni/degisen medya dosyalarının
önizlemelerini otomatik üretir. Dosya sistemi olayları destekleniyorsa
fsnotify kullanılır, aksi halde polling'e düşülür.

Örnekler:
  medianexus-cli watch ~/Videolar
  medianexus-cli watch ~/Gelen --recursive --interval 5s`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceDir := args[0]

		env, err := newNexusEnv(true)
		if err != nil {
			return err
		}

		engine, engineErr := library.NewAdaptiveWatcher(sourceDir, watchRecursive, watchSettle)
		if engineErr != nil {
			ui.PrintWarning("Dosya sistemi olayları kullanılamıyor; polling ile devam ediliyor.")
		}
		if err := engine.Bootstrap(); err != nil {
			return err
		}

		var events <-chan struct{}
		if ew, ok := engine.(*library.EventWatcher); ok {
			events = ew.Events()
			defer ew.Close()
		}

		thumbDir, err := thumbCacheDir()
		if err != nil {
			return err
		}
		pipeline := thumbs.New(env.ff, thumbDir, workers)
		defer pipeline.Close()

		// Sonuçları arka planda tüket ve raporla.
		go func() {
			for res := range pipeline.Results() {
				if res.Err != nil {
					ui.PrintWarning(fmt.Sprintf("Önizleme üretilemedi: %s", res.Source))
					continue
				}
				fmt.Printf("%s %s → %s\n", ui.IconThumb, res.Source, res.Thumb)
			}
		}()

		ui.PrintInfo(fmt.Sprintf("İzleme başladı: %s (%s)", sourceDir, engine.Mode()))
		ui.PrintInfo("Durdurmak için Ctrl+C kullanın.")

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		poll := func() {
			files, err := engine.Poll(time.Now())
			if err != nil {
				ui.PrintError(fmt.Sprintf("İzleme hatası: %s", err.Error()))
				return
			}
			for _, f := range files {
				pipeline.Request(f)
			}
		}

		for {
			select {
			case <-ticker.C:
				poll()
			case <-events:
				poll()
			case <-sigCh:
				ui.PrintInfo("İzleme durduruldu.")
				return nil
			}
		}
	},
}

func init() {
	watchCmd.Flags().BoolVarP(&watchRecursive, "recursive", "r", false, "Alt dizinleri de izle")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "Klasör tarama aralığı")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", 1500*time.Millisecond, "Dosyanın stabil sayılması için bekleme süresi")

	rootCmd.AddCommand(watchCmd)
}
