package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/cache"
	"github.com/mlihgenel/medianexus-cli/internal/thumbs"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Kırpma önbelleğini yönet",
	Long: `Kırpılmış klipleri listeler, yeniden adlandırır, siler ve kontakt
sayfası üretir.

Örnekler:
  medianexus-cli cache list
  medianexus-cli cache rename eski.mp4 yeni.mp4
  medianexus-cli cache remove klip_trimmed_0_5000.mp4
  medianexus-cli cache sheet klipler.jpg`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "Önbellekteki klipleri listele",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := trimCacheDir()
		if err != nil {
			return err
		}
		ix, err := cache.Load(dir)
		if err != nil {
			return err
		}

		entries := ix.Entries()
		if len(entries) == 0 {
			ui.PrintInfo("Önbellek boş. Klip kırpmak için: medianexus-cli trim <dosya> -s ... -e ...")
			return nil
		}

		var rows [][]string
		for _, e := range entries {
			size := "-"
			if info, err := os.Stat(e.Path); err == nil {
				size = formatSize(info.Size())
			}
			rows = append(rows, []string{e.DisplayName, size})
		}

		fmt.Printf("\n%s %sKırpma Önbelleği%s (%d klip)\n\n", ui.IconCache, ui.Bold, ui.Reset, len(entries))
		ui.PrintTable([]string{"Klip", "Boyut"}, rows)
		return nil
	},
}

var cacheRenameCmd = &cobra.Command{
	Use:   "rename <eski-ad> <yeni-ad>",
	Short: "Klibi yeniden adlandır",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := trimCacheDir()
		if err != nil {
			return err
		}
		ix, err := cache.Load(dir)
		if err != nil {
			return err
		}

		entry, err := ix.Rename(args[0], args[1])
		if err != nil {
			var conflict *cache.ConflictError
			if errors.As(err, &conflict) {
				ui.PrintError(fmt.Sprintf("Bu isim kullanımda: %s", conflict.Name))
			}
			return err
		}

		ui.PrintSuccess(fmt.Sprintf("Klip yeniden adlandırıldı: %s", entry.DisplayName))
		return nil
	},
}

var cacheRemoveCmd = &cobra.Command{
	Use:   "remove <ad>",
	Short: "Klibi önbellekten sil",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := trimCacheDir()
		if err != nil {
			return err
		}
		ix, err := cache.Load(dir)
		if err != nil {
			return err
		}

		entry, ok := ix.Remove(args[0])
		if !ok {
			return fmt.Errorf("kayıt bulunamadı: %s", args[0])
		}
		if err := os.Remove(entry.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("dosya silinemedi: %w", err)
		}

		// Klibin önizlemesi varsa onu da temizle.
		if thumbDir, err := thumbCacheDir(); err == nil {
			os.Remove(filepath.Join(thumbDir, thumbs.ThumbName(entry.Path)))
		}

		ui.PrintSuccess(fmt.Sprintf("Klip silindi: %s", entry.DisplayName))
		return nil
	},
}

var cacheSheetCmd = &cobra.Command{
	Use:   "sheet <çıktı.jpg>",
	Short: "Önbellek için kontakt sayfası üret",
	Long: `Önbellekteki kliplerin önizlemelerini tek bir JPEG kontakt
sayfasında birleştirir. Eksik önizlemeler önce üretilir (FFmpeg gerekir).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newNexusEnv(false)
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
		if ix.Len() == 0 {
			return fmt.Errorf("önbellek boş; kontakt sayfası üretilemedi")
		}

		thumbDir, err := thumbCacheDir()
		if err != nil {
			return err
		}

		var paths []string
		for _, e := range ix.Entries() {
			thumb := filepath.Join(thumbDir, thumbs.ThumbName(e.Path))
			if _, err := os.Stat(thumb); os.IsNotExist(err) {
				if env.ff == nil {
					continue
				}
				if err := env.ff.ExtractThumbnail(e.Path, thumb); err != nil {
					continue
				}
			}
			paths = append(paths, thumb)
		}

		if err := thumbs.BuildSheet(paths, args[0]); err != nil {
			return err
		}

		ui.PrintSuccess(fmt.Sprintf("Kontakt sayfası yazıldı: %s (%d önizleme)", args[0], len(paths)))
		return nil
	},
}

// formatSize bayt cinsinden boyutu okunabilir formata çevirir.
func formatSize(size int64) string {
	switch {
	case size >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(size)/(1<<30))
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheRenameCmd)
	cacheCmd.AddCommand(cacheRemoveCmd)
	cacheCmd.AddCommand(cacheSheetCmd)
	rootCmd.AddCommand(cacheCmd)
}
