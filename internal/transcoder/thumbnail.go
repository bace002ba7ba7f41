package transcoder

import (
	"fmt"
	"os"
	"path/filepath"
)

// thumbnailWidth önizleme görüntüsünün piksel genişliği; yükseklik
// en-boy oranını koruyacak şekilde ffmpeg tarafından hesaplanır.
const thumbnailWidth = 128

// ExtractThumbnail kaynağın 0.1 saniyesinden tek kare alıp dst yoluna yazar.
// Kaynağın video akışı yoksa (ör. ses dosyası) ffmpeg hata döner; çağıran
// bu durumu önizlemesiz devam ederek ele alır.
func (f *FFmpeg) ExtractThumbnail(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return &ValidationError{Msg: fmt.Sprintf("girdi dosyası bulunamadı: %s", src)}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("önizleme dizini oluşturulamadı: %w", err)
	}

	args := []string{
		"-nostdin",
		"-loglevel", "error",
		"-ss", "00:00:00.1",
		"-i", src,
		"-vframes", "1",
		"-vf", fmt.Sprintf("scale=%d:-1", thumbnailWidth),
		"-y", dst,
	}

	if out, err := f.Run(f.Path, args...); err != nil {
		return &ProcessError{Tool: "FFmpeg", Err: err, Output: string(out)}
	}
	return nil
}
