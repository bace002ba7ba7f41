package library

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		path string
		want Kind
	}{
		{"film.mp4", KindVideo},
		{"FILM.MOV", KindVideo},
		{"kayit.mkv", KindVideo},
		{"kayit.avi", KindVideo},
		{"parca.mp3", KindAudio},
		{"parca.flac", KindAudio},
		{"parca.wav", KindAudio},
		{"parca.aac", KindAudio},
		{"belge.pdf", KindUnknown},
		{"resim.jpg", KindUnknown},
		{"uzantisiz", KindUnknown},
	}
	for _, c := range cases {
		if got := DetectKind(c.path); got != c.want {
			t.Fatalf("DetectKind(%q) = %v, beklenen %v", c.path, got, c.want)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	files := []string{"b.mp4", "a.mp3", "not.txt"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("yazma hatası: %v", err)
		}
	}
	// Alt klasördeki dosyalar taranmaz.
	sub := filepath.Join(dir, "alt")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("mkdir hatası: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "derin.mp4"), []byte("x"), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}

	assets, err := Scan(dir)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("2 medya dosyası bekleniyordu, %d bulundu", len(assets))
	}
	// İsme göre sıralı döner.
	if assets[0].Name != "a.mp3" || assets[1].Name != "b.mp4" {
		t.Fatalf("sıralama yanlış: %s, %s", assets[0].Name, assets[1].Name)
	}
	if assets[0].Kind != KindAudio || assets[1].Kind != KindVideo {
		t.Fatalf("tür tespiti yanlış: %v, %v", assets[0].Kind, assets[1].Kind)
	}
}

func TestScanRejectsNonDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dosya.mp4")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}
	if _, err := Scan(file); err == nil {
		t.Fatalf("dizin olmayan yol için hata bekleniyordu")
	}
}

func TestScanAllSkipsFailedRoots(t *testing.T) {
	good := t.TempDir()
	if err := os.WriteFile(filepath.Join(good, "a.mp4"), []byte("x"), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "yok")

	assets, failed := ScanAll([]string{good, missing})
	if len(assets) != 1 {
		t.Fatalf("1 medya dosyası bekleniyordu, %d bulundu", len(assets))
	}
	if len(failed) != 1 || failed[0] != missing {
		t.Fatalf("okunamayan klasör bildirilmeliydi: %#v", failed)
	}
}
