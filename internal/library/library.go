package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind bir medya dosyasının türünü belirtir.
type Kind int

const (
	KindUnknown Kind = iota
	KindVideo
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "ses"
	default:
		return "bilinmiyor"
	}
}

// videoExtensions kütüphanede video sayılan uzantılar.
var videoExtensions = []string{".mp4", ".mov", ".avi", ".mkv"}

// audioExtensions kütüphanede ses sayılan uzantılar.
var audioExtensions = []string{".mp3", ".wav", ".flac", ".aac"}

// DetectKind dosya uzantısından medya türünü belirler.
func DetectKind(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range videoExtensions {
		if ext == e {
			return KindVideo
		}
	}
	for _, e := range audioExtensions {
		if ext == e {
			return KindAudio
		}
	}
	return KindUnknown
}

// IsMedia dosyanın kütüphane kapsamında olup olmadığını döner.
func IsMedia(path string) bool {
	return DetectKind(path) != KindUnknown
}

// Asset kütüphanedeki tek bir medya dosyasıdır.
type Asset struct {
	Path string
	Name string
	Kind Kind
	Size int64
}

// Scan verilen klasördeki medya dosyalarını listeler. Alt klasörlere
// inilmez; kütüphane klasörleri düz yapıda tutulur.
func Scan(root string) ([]Asset, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("kütüphane klasörü okunamadı: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("kütüphane yolu dizin olmalıdır: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("kütüphane klasörü okunamadı: %w", err)
	}

	var assets []Asset
	for _, entry := range entries {
		if entry.IsDir() || !IsMedia(entry.Name()) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		assets = append(assets, Asset{
			Path: filepath.Join(root, entry.Name()),
			Name: entry.Name(),
			Kind: DetectKind(entry.Name()),
			Size: fi.Size(),
		})
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets, nil
}

// ScanAll birden fazla kütüphane klasörünü tarar. Okunamayan klasörler
// atlanır ve yolları ikinci dönüş değerinde bildirilir.
func ScanAll(roots []string) ([]Asset, []string) {
	var assets []Asset
	var failed []string
	for _, root := range roots {
		found, err := Scan(root)
		if err != nil {
			failed = append(failed, root)
			continue
		}
		assets = append(assets, found...)
	}
	return assets, failed
}
