package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/mlihgenel/medianexus-cli/internal/cache"
	"github.com/mlihgenel/medianexus-cli/internal/library"
	"github.com/mlihgenel/medianexus-cli/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report <çıktı.pdf|çıktı.txt>",
	Short: "Kütüphane ve önbellek raporu üret",
	Long: `Kütüphanedeki medya dosyalarını ve kırpma önbelleğini tek bir
raporda toplar. Çıktı uzantısına göre PDF veya düz metin üretilir.

Örnekler:
  medianexus-cli report rapor.pdf
  medianexus-cli report rapor.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := args[0]

		env, err := newNexusEnv(false)
		if err != nil {
			return err
		}

		assets, failed := library.ScanAll(env.cfg.LibraryPaths)
		for _, path := range failed {
			ui.PrintWarning(fmt.Sprintf("Klasör okunamadı: %s", path))
		}

		dir, err := trimCacheDir()
		if err != nil {
			return err
		}
		ix, err := cache.Load(dir)
		if err != nil {
			return err
		}

		if strings.ToLower(filepath.Ext(output)) == ".txt" {
			err = writeTextReport(output, assets, ix.Entries())
		} else {
			err = writePDFReport(output, assets, ix.Entries())
		}
		if err != nil {
			return err
		}

		ui.PrintSuccess(fmt.Sprintf("Rapor yazıldı: %s", output))
		return nil
	},
}

func writeTextReport(output string, assets []library.Asset, clips []cache.Entry) error {
	var b strings.Builder

	fmt.Fprintf(&b, "MediaNexus Kütüphane Raporu\n")
	fmt.Fprintf(&b, "Tarih: %s\n\n", time.Now().Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "Kütüphane (%d dosya)\n", len(assets))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 40))
	for _, a := range assets {
		fmt.Fprintf(&b, "  %-8s %-10s %s\n", a.Kind, formatSize(a.Size), a.Name)
	}

	fmt.Fprintf(&b, "\nKırpma Önbelleği (%d klip)\n", len(clips))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 40))
	for _, c := range clips {
		size := "-"
		if info, err := os.Stat(c.Path); err == nil {
			size = formatSize(info.Size())
		}
		fmt.Fprintf(&b, "  %-10s %s\n", size, c.DisplayName)
	}

	return os.WriteFile(output, []byte(b.String()), 0644)
}

func writePDFReport(output string, assets []library.Asset, clips []cache.Entry) error {
	p, hasUTF8 := initReportPDF()
	p.AddPage()

	setReportFont(p, hasUTF8, "B", 18)
	p.MultiCell(0, 10, reportText(hasUTF8, "MediaNexus Kütüphane Raporu"), "", "", false)

	setReportFont(p, hasUTF8, "", 10)
	p.SetTextColor(100, 100, 100)
	p.MultiCell(0, 6, "Tarih: "+time.Now().Format("2006-01-02 15:04"), "", "", false)
	p.SetTextColor(0, 0, 0)
	p.Ln(4)

	setReportFont(p, hasUTF8, "B", 13)
	p.MultiCell(0, 8, reportText(hasUTF8, fmt.Sprintf("Kütüphane (%d dosya)", len(assets))), "", "", false)
	p.Ln(1)

	setReportFont(p, hasUTF8, "", 10)
	for _, a := range assets {
		line := fmt.Sprintf("%-8s  %-10s  %s", a.Kind, formatSize(a.Size), a.Name)
		p.MultiCell(0, 5.5, reportText(hasUTF8, line), "", "", false)
	}
	p.Ln(4)

	setReportFont(p, hasUTF8, "B", 13)
	p.MultiCell(0, 8, reportText(hasUTF8, fmt.Sprintf("Kırpma Önbelleği (%d klip)", len(clips))), "", "", false)
	p.Ln(1)

	setReportFont(p, hasUTF8, "", 10)
	for _, c := range clips {
		size := "-"
		if info, err := os.Stat(c.Path); err == nil {
			size = formatSize(info.Size())
		}
		line := fmt.Sprintf("%-10s  %s", size, c.DisplayName)
		p.MultiCell(0, 5.5, reportText(hasUTF8, line), "", "", false)
	}

	return p.OutputFileAndClose(output)
}

// initReportPDF yeni bir gofpdf oluşturur ve mümkünse UTF-8 sistem
// fontu yükler; font yoksa Helvetica + transliterasyon kullanılır.
func initReportPDF() (*gofpdf.Fpdf, bool) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetMargins(20, 20, 20)
	p.SetAutoPageBreak(true, 20)

	fontPath := findSystemFont()
	if fontPath == "" {
		return p, false
	}

	p.SetFontLocation(filepath.Dir(fontPath))
	fontFile := filepath.Base(fontPath)
	p.AddUTF8Font("Sans", "", fontFile)
	p.AddUTF8Font("Sans", "B", fontFile)

	return p, true
}

func setReportFont(p *gofpdf.Fpdf, hasUTF8 bool, style string, size float64) {
	if hasUTF8 {
		p.SetFont("Sans", style, size)
	} else {
		p.SetFont("Helvetica", style, size)
	}
}

func reportText(hasUTF8 bool, text string) string {
	if hasUTF8 {
		return text
	}
	return transliterateToLatin(text)
}

// findSystemFont Türkçe karakter destekli bir TTF arar.
func findSystemFont() string {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
			"/Library/Fonts/Arial.ttf",
		}
	case "linux":
		candidates = []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		}
	case "windows":
		candidates = []string{
			`C:\Windows\Fonts\arial.ttf`,
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// transliterateToLatin Türkçe karakterleri Latin-1 karşılıklarına indirger.
func transliterateToLatin(text string) string {
	replacer := strings.NewReplacer(
		"ç", "c", "Ç", "C",
		"ğ", "g", "Ğ", "G",
		"ı", "i", "İ", "I",
		"ö", "o", "Ö", "O",
		"ş", "s", "Ş", "S",
		"ü", "u", "Ü", "U",
	)
	return replacer.Replace(text)
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
