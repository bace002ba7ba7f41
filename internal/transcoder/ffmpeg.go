package transcoder

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Runner bir komutu çalıştırıp birleşik çıktısını döner.
// Testlerde sahte bir koşucu ile değiştirilir.
type Runner func(name string, args ...string) ([]byte, error)

func runCombined(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// FFmpeg ffmpeg/ffprobe ikilisinin çözümlenmiş yollarını ve koşucusunu taşır.
type FFmpeg struct {
	Path      string
	ProbePath string
	Run       Runner
}

// Find sistemde FFmpeg'i arar ve kullanıma hazır bir FFmpeg döner.
// Bulunamazsa ErrFFmpegNotFound döner.
func Find() (*FFmpeg, error) {
	path, err := findFFmpeg()
	if err != nil {
		return nil, err
	}
	return &FFmpeg{
		Path:      path,
		ProbePath: findFFprobe(path),
		Run:       runCombined,
	}, nil
}

// IsAvailable FFmpeg'in yüklü olup olmadığını kontrol eder.
func IsAvailable() bool {
	_, err := findFFmpeg()
	return err == nil
}

// findFFmpeg sistemde FFmpeg'i arar.
func findFFmpeg() (string, error) {
	// 1. Çevre değişkeninden oku
	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	// 2. PATH ve bilinen yollar
	paths := []string{"ffmpeg"}
	if runtime.GOOS == "darwin" {
		paths = append(paths, "/opt/homebrew/bin/ffmpeg", "/usr/local/bin/ffmpeg")
	} else if runtime.GOOS == "linux" {
		paths = append(paths, "/usr/bin/ffmpeg", "/usr/local/bin/ffmpeg")
	}

	for _, p := range paths {
		if path, err := exec.LookPath(p); err == nil {
			return path, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// findFFprobe ffprobe'u önce ffmpeg ile aynı dizinde, sonra PATH'te arar.
// Bulunamazsa çıplak "ffprobe" döner; süre sorgusu çalışma anında hata verir.
func findFFprobe(ffmpegPath string) string {
	sibling := filepath.Join(filepath.Dir(ffmpegPath), "ffprobe")
	if runtime.GOOS == "windows" {
		sibling += ".exe"
	}
	if _, err := os.Stat(sibling); err == nil {
		return sibling
	}
	if path, err := exec.LookPath("ffprobe"); err == nil {
		return path
	}
	return "ffprobe"
}
