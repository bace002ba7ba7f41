package transcoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFFmpegNotFound FFmpeg sistemde bulunamadığında döner.
var ErrFFmpegNotFound = errors.New(
	"FFmpeg bulunamadı! Medya işlemleri için FFmpeg kurulu olmalıdır.\n\n" +
		"Kurulum:\n" +
		"  macOS:   brew install ffmpeg\n" +
		"  Ubuntu:  sudo apt install ffmpeg\n" +
		"  Windows: https://ffmpeg.org/download.html\n")

// ValidationError süreç başlatılmadan önce yakalanan geçersiz istekleri
// temsil eder (eksik dosya, ters zaman aralığı gibi).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ProcessError harici bir aracın (ffmpeg/ffprobe) başarısız çıkışını,
// birleşik çıktısıyla birlikte taşır.
type ProcessError struct {
	Tool   string
	Err    error
	Output string
}

func (e *ProcessError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s hatası: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s hatası: %v\n%s", e.Tool, e.Err, out)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
