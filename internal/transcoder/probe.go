package transcoder

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ProbeDurationMS kaynağın süresini ffprobe ile milisaniye olarak döner.
func (f *FFmpeg) ProbeDurationMS(src string) (int64, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return 0, &ValidationError{Msg: fmt.Sprintf("girdi dosyası bulunamadı: %s", src)}
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		src,
	}

	out, err := f.Run(f.ProbePath, args...)
	if err != nil {
		return 0, &ProcessError{Tool: "FFprobe", Err: err, Output: string(out)}
	}

	text := strings.TrimSpace(string(out))
	seconds, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("süre bilgisi çözümlenemedi: %q", text)
	}

	return int64(seconds * 1000), nil
}
