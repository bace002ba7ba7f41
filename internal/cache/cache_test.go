package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
)

func TestTrimOutputName(t *testing.T) {
	cases := []struct {
		src     string
		startMS int64
		endMS   int64
		want    string
	}{
		{"/medya/klip.mp4", 1500, 3250, "klip_trimmed_1500_3250.mp4"},
		{"klip.mov", 0, 10000, "klip_trimmed_0_10000.mov"},
		{"/medya/nokta.li.mkv", 1, 2, "nokta.li_trimmed_1_2.mkv"},
	}
	for _, c := range cases {
		if got := TrimOutputName(c.src, c.startMS, c.endMS); got != c.want {
			t.Fatalf("TrimOutputName(%q, %d, %d) = %q, beklenen %q",
				c.src, c.startMS, c.endMS, got, c.want)
		}
	}
}

func TestIndexAddFirstWriterWins(t *testing.T) {
	ix := NewIndex(t.TempDir())

	first, added := ix.Add("/a/klip.mp4")
	if !added {
		t.Fatalf("ilk ekleme kabul edilmeliydi")
	}

	// Aynı ada sahip ikinci ekleme mevcut kaydı korur.
	second, added := ix.Add("/b/klip.mp4")
	if added {
		t.Fatalf("aynı ada sahip ikinci ekleme reddedilmeliydi")
	}
	if second.Path != first.Path {
		t.Fatalf("mevcut kayıt korunmalıydı: %q", second.Path)
	}
	if ix.Len() != 1 {
		t.Fatalf("tek kayıt bekleniyordu, %d var", ix.Len())
	}
}

func TestIndexRemove(t *testing.T) {
	ix := NewIndex(t.TempDir())
	ix.Add("/a/bir.mp4")
	ix.Add("/a/iki.mp4")

	entry, ok := ix.Remove("bir.mp4")
	if !ok || entry.DisplayName != "bir.mp4" {
		t.Fatalf("kayıt silinmeliydi: %v %v", entry, ok)
	}
	if _, ok := ix.Get("bir.mp4"); ok {
		t.Fatalf("silinen kayıt dizinde kalmamalı")
	}

	entries := ix.Entries()
	if len(entries) != 1 || entries[0].DisplayName != "iki.mp4" {
		t.Fatalf("sıra korunmalıydı: %#v", entries)
	}

	if _, ok := ix.Remove("yok.mp4"); ok {
		t.Fatalf("olmayan kayıt için false bekleniyordu")
	}
}

func TestIndexRename(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "eski.mp4")
	if err := os.WriteFile(oldPath, []byte("x"), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}

	ix := NewIndex(dir)
	ix.Add(oldPath)

	entry, err := ix.Rename("eski.mp4", "yeni.mp4")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if entry.DisplayName != "yeni.mp4" {
		t.Fatalf("görünen ad güncellenmeliydi: %q", entry.DisplayName)
	}
	if _, err := os.Stat(filepath.Join(dir, "yeni.mp4")); err != nil {
		t.Fatalf("dosya yeniden adlandırılmalıydı: %v", err)
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Fatalf("eski dosya kalmamalıydı")
	}
	if _, ok := ix.Get("eski.mp4"); ok {
		t.Fatalf("eski anahtar dizinde kalmamalı")
	}
}

func TestIndexRenameConflict(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("yazma hatası: %v", err)
		}
	}

	ix := NewIndex(dir)
	ix.Add(filepath.Join(dir, "a.mp4"))
	ix.Add(filepath.Join(dir, "b.mp4"))

	_, err := ix.Rename("a.mp4", "b.mp4")
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("ConflictError bekleniyordu, %v döndü", err)
	}

	// Çakışma durumunda diskteki dosyalara dokunulmaz.
	if _, err := os.Stat(filepath.Join(dir, "a.mp4")); err != nil {
		t.Fatalf("kaynak dosya yerinde kalmalıydı: %v", err)
	}

	// Dizinde olmayan ama diskte var olan hedef de çakışmadır.
	if err := os.WriteFile(filepath.Join(dir, "disk.mp4"), []byte("x"), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}
	_, err = ix.Rename("a.mp4", "disk.mp4")
	if !errors.As(err, &conflict) {
		t.Fatalf("diskteki dosya için de ConflictError bekleniyordu, %v döndü", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp4", "a.mp4", "not.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("yazma hatası: %v", err)
		}
	}

	ix, err := Load(dir)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	entries := ix.Entries()
	if len(entries) != 2 {
		t.Fatalf("2 kayıt bekleniyordu, %d var", len(entries))
	}
	if entries[0].DisplayName != "a.mp4" || entries[1].DisplayName != "b.mp4" {
		t.Fatalf("kayıtlar ada göre sıralı yüklenmeliydi: %#v", entries)
	}
}

func TestLoadCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "henuz", "yok")
	ix, err := Load(dir)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if ix.Len() != 0 {
		t.Fatalf("boş dizin bekleniyordu")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("önbellek klasörü oluşturulmalıydı: %v", err)
	}
}

func TestExport(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "klip.mp4")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatalf("yazma hatası: %v", err)
	}

	var runs int
	ff := &transcoder.FFmpeg{
		Path: "ffmpeg",
		Run: func(name string, args ...string) ([]byte, error) {
			runs++
			return nil, nil
		},
	}

	ix := NewIndex(t.TempDir())
	entry, err := Export(ff, ix, src, 1000, 2000)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if entry.DisplayName != "klip_trimmed_1000_2000.mp4" {
		t.Fatalf("çıktı adı yanlış: %q", entry.DisplayName)
	}
	if filepath.Dir(entry.Path) != ix.Dir() {
		t.Fatalf("çıktı önbellek klasöründe olmalı: %q", entry.Path)
	}
	if runs != 1 {
		t.Fatalf("ffmpeg bir kez çalışmalıydı, %d kez çalıştı", runs)
	}

	// Aynı istek tekrar gelirse ffmpeg çalıştırılmaz.
	again, err := Export(ff, ix, src, 1000, 2000)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if again.Path != entry.Path {
		t.Fatalf("mevcut kayıt dönmeliydi")
	}
	if runs != 1 {
		t.Fatalf("tekrar istekte ffmpeg çalıştırılmamalı")
	}
}

func TestExportValidationPassthrough(t *testing.T) {
	ff := &transcoder.FFmpeg{
		Path: "ffmpeg",
		Run: func(name string, args ...string) ([]byte, error) {
			t.Fatalf("geçersiz istekte ffmpeg çalıştırılmamalı")
			return nil, nil
		},
	}

	ix := NewIndex(t.TempDir())
	_, err := Export(ff, ix, filepath.Join(t.TempDir(), "yok.mp4"), 0, 1000)
	var verr *transcoder.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidationError bekleniyordu, %v döndü", err)
	}
}
