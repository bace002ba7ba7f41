package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Görünüm modları: kütüphane ve önbellek listeleri için.
const (
	ViewDetails    = "details"
	ViewThumbnails = "thumbnails"
)

// Config uygulama yapılandırmasını tutar
type Config struct {
	LibraryPaths    []string `json:"library_paths"`
	LibraryViewMode string   `json:"library_view_mode"`
	CacheViewMode   string   `json:"cache_view_mode"`
	Volume          int      `json:"volume"`
}

// fileConfig diskteki JSON'un ara temsili; Volume işaretçi tutar ki
// alanın hiç yazılmamış olması ile açıkça 0 yazılması ayırt edilebilsin.
type fileConfig struct {
	LibraryPaths    []string `json:"library_paths"`
	LibraryViewMode string   `json:"library_view_mode"`
	CacheViewMode   string   `json:"cache_view_mode"`
	Volume          *int     `json:"volume"`
}

// Default varsayılan yapılandırmayı döner
func Default() *Config {
	return &Config{
		LibraryPaths:    []string{},
		LibraryViewMode: ViewDetails,
		CacheViewMode:   ViewDetails,
		Volume:          100,
	}
}

// Dir yapılandırma dizinini döner (~/.medianexus)
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".medianexus"), nil
}

// CacheDir önbellek alt klasörünün yolunu döner (~/.medianexus/<sub>)
func CacheDir(sub string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sub), nil
}

// configPath yapılandırma dosya yolunu döner
func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load yapılandırmayı dosyadan okur. Dosya yoksa veya bozuksa
// varsayılan yapılandırma döner.
func Load() *Config {
	path, err := configPath()
	if err != nil {
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom verilen yoldan yapılandırma okur. Eski sürümlerin çıplak
// klasör listesi formatı ([...]) sessizce yeni formata yükseltilir.
func LoadFrom(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err == nil {
		cfg := Default()
		if fc.LibraryPaths != nil {
			cfg.LibraryPaths = fc.LibraryPaths
		}
		if fc.LibraryViewMode != "" {
			cfg.LibraryViewMode = fc.LibraryViewMode
		}
		if fc.CacheViewMode != "" {
			cfg.CacheViewMode = fc.CacheViewMode
		}
		if fc.Volume != nil {
			cfg.Volume = clampVolume(*fc.Volume)
		}
		return cfg
	}

	// Eski format: yalnızca klasör listesi.
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		cfg := Default()
		cfg.LibraryPaths = legacy
		return cfg
	}

	return Default()
}

// Save yapılandırmayı dosyaya kaydeder
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return SaveTo(cfg, filepath.Join(dir, "config.json"))
}

// SaveTo yapılandırmayı verilen yola kaydeder
func SaveTo(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AddLibraryPath kütüphaneye klasör ekler; zaten kayıtlıysa false döner.
func (c *Config) AddLibraryPath(path string) bool {
	for _, p := range c.LibraryPaths {
		if p == path {
			return false
		}
	}
	c.LibraryPaths = append(c.LibraryPaths, path)
	return true
}

// RemoveLibraryPath klasörü kütüphaneden çıkarır; kayıtlı değilse false döner.
func (c *Config) RemoveLibraryPath(path string) bool {
	for i, p := range c.LibraryPaths {
		if p == path {
			c.LibraryPaths = append(c.LibraryPaths[:i], c.LibraryPaths[i+1:]...)
			return true
		}
	}
	return false
}

// SetVolume ses seviyesini [0,100] aralığına sabitleyerek ayarlar.
func (c *Config) SetVolume(v int) {
	c.Volume = clampVolume(v)
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
