package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/config"
	"github.com/mlihgenel/medianexus-cli/internal/library"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Kütüphane klasörlerini yönet",
	Long: `Kütüphane klasörlerini ekler, çıkarır ve listeler.

Örnekler:
  medianexus-cli library add ~/Videolar
  medianexus-cli library remove ~/Videolar
  medianexus-cli library list`,
}

var libraryAddCmd = &cobra.Command{
	Use:   "add <dizin>",
	Short: "Klasörü kütüphaneye ekle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("klasör bulunamadı: %s", path)
		}
		if !info.IsDir() {
			return fmt.Errorf("kütüphane yolu dizin olmalıdır: %s", path)
		}

		cfg := config.Load()
		if !cfg.AddLibraryPath(path) {
			ui.PrintWarning(fmt.Sprintf("Klasör zaten kütüphanede: %s", path))
			return nil
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		ui.PrintSuccess(fmt.Sprintf("Klasör eklendi: %s", path))
		return nil
	},
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove <dizin>",
	Short: "Klasörü kütüphaneden çıkar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		cfg := config.Load()
		if !cfg.RemoveLibraryPath(path) {
			return fmt.Errorf("klasör kütüphanede kayıtlı değil: %s", path)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		ui.PrintSuccess(fmt.Sprintf("Klasör çıkarıldı: %s", path))
		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Kütüphane klasörlerini ve içeriklerini listele",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if len(cfg.LibraryPaths) == 0 {
			ui.PrintInfo("Kütüphane boş. Klasör eklemek için: medianexus-cli library add <dizin>")
			return nil
		}

		var rows [][]string
		for _, path := range cfg.LibraryPaths {
			assets, err := library.Scan(path)
			if err != nil {
				rows = append(rows, []string{path, "-", "-", "okunamadı"})
				continue
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
			rows = append(rows, []string{
				path,
				fmt.Sprintf("%d", video),
				fmt.Sprintf("%d", audio),
				"tamam",
			})
		}

		fmt.Printf("\n%s %sKütüphane Klasörleri%s\n\n", ui.IconFolder, ui.Bold, ui.Reset)
		ui.PrintTable([]string{"Klasör", "Video", "Ses", "Durum"}, rows)
		return nil
	},
}

func init() {
	libraryCmd.AddCommand(libraryAddCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
	libraryCmd.AddCommand(libraryListCmd)
	rootCmd.AddCommand(libraryCmd)
}
