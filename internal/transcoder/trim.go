package transcoder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Trim kaynağın [startMS, endMS] aralığını yeniden kodlayarak dst yoluna
// yazar. Yeniden kodlama (libx264/aac) kare hassasiyetinde kesim sağlar;
// akış kopyalama anahtar kare sınırlarına yapışırdı.
func (f *FFmpeg) Trim(src, dst string, startMS, endMS int64) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return &ValidationError{Msg: fmt.Sprintf("girdi dosyası bulunamadı: %s", src)}
	}
	if startMS < 0 {
		return &ValidationError{Msg: fmt.Sprintf("başlangıç zamanı negatif olamaz: %d", startMS)}
	}
	if endMS <= startMS {
		return &ValidationError{Msg: fmt.Sprintf("bitiş zamanı başlangıçtan büyük olmalı: %d <= %d", endMS, startMS)}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("çıktı dizini oluşturulamadı: %w", err)
	}

	args := []string{
		"-nostdin",
		"-loglevel", "error",
		"-i", src,
		"-ss", formatSeconds(startMS),
		"-to", formatSeconds(endMS),
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-c:a", "aac",
		"-y", dst,
	}

	if out, err := f.Run(f.Path, args...); err != nil {
		return &ProcessError{Tool: "FFmpeg", Err: err, Output: string(out)}
	}
	return nil
}

// formatSeconds milisaniyeyi ffmpeg'in beklediği ondalık saniyeye çevirir.
func formatSeconds(ms int64) string {
	return strconv.FormatFloat(float64(ms)/1000.0, 'f', 3, 64)
}
