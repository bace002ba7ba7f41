package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "yok.json"))
	if cfg.Volume != 100 {
		t.Fatalf("varsayılan ses seviyesi 100 olmalı, %d", cfg.Volume)
	}
	if cfg.LibraryViewMode != ViewDetails || cfg.CacheViewMode != ViewDetails {
		t.Fatalf("varsayılan görünüm modları yanlış: %q %q", cfg.LibraryViewMode, cfg.CacheViewMode)
	}
	if len(cfg.LibraryPaths) != 0 {
		t.Fatalf("varsayılan kütüphane boş olmalı")
	}
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{bozuk json"), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}

	cfg := LoadFrom(path)
	if cfg.Volume != 100 {
		t.Fatalf("bozuk dosyada varsayılanlar dönmeli, ses=%d", cfg.Volume)
	}
}

func TestLoadFromLegacyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`["/medya/a", "/medya/b"]`), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}

	cfg := LoadFrom(path)
	if len(cfg.LibraryPaths) != 2 || cfg.LibraryPaths[0] != "/medya/a" {
		t.Fatalf("eski format yükseltilmeliydi: %#v", cfg.LibraryPaths)
	}
	// Eski formatta olmayan alanlar varsayılana düşer.
	if cfg.Volume != 100 || cfg.LibraryViewMode != ViewDetails {
		t.Fatalf("eksik alanlar varsayılan almalı: %d %q", cfg.Volume, cfg.LibraryViewMode)
	}
}

func TestLoadFromPreservesExplicitZeroVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"library_paths": [], "volume": 0}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}

	cfg := LoadFrom(path)
	if cfg.Volume != 0 {
		t.Fatalf("açıkça yazılmış 0 korunmalı, %d döndü", cfg.Volume)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.AddLibraryPath("/medya/klipler")
	cfg.LibraryViewMode = ViewThumbnails
	cfg.SetVolume(60)

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("kaydetme hatası: %v", err)
	}

	back := LoadFrom(path)
	if len(back.LibraryPaths) != 1 || back.LibraryPaths[0] != "/medya/klipler" {
		t.Fatalf("kütüphane yolları korunmadı: %#v", back.LibraryPaths)
	}
	if back.LibraryViewMode != ViewThumbnails {
		t.Fatalf("görünüm modu korunmadı: %q", back.LibraryViewMode)
	}
	if back.Volume != 60 {
		t.Fatalf("ses seviyesi korunmadı: %d", back.Volume)
	}
}

func TestAddRemoveLibraryPath(t *testing.T) {
	cfg := Default()

	if !cfg.AddLibraryPath("/a") {
		t.Fatalf("yeni klasör eklenmeliydi")
	}
	if cfg.AddLibraryPath("/a") {
		t.Fatalf("tekrar ekleme reddedilmeliydi")
	}
	if !cfg.RemoveLibraryPath("/a") {
		t.Fatalf("kayıtlı klasör silinmeliydi")
	}
	if cfg.RemoveLibraryPath("/a") {
		t.Fatalf("kayıtlı olmayan klasör için false bekleniyordu")
	}
}

func TestSetVolumeClamps(t *testing.T) {
	cfg := Default()

	cfg.SetVolume(-10)
	if cfg.Volume != 0 {
		t.Fatalf("negatif ses 0'a sabitlenmeli, %d", cfg.Volume)
	}
	cfg.SetVolume(150)
	if cfg.Volume != 100 {
		t.Fatalf("taşan ses 100'e sabitlenmeli, %d", cfg.Volume)
	}
}
