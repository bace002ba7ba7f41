package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mlihgenel/medianexus-cli/internal/library"
)

// ConflictError yeniden adlandırma hedefi zaten kullanımdaysa döner.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bu isimde bir kayıt zaten var: %s", e.Name)
}

// Entry önbellekteki tek bir kırpılmış klibi temsil eder.
// Anahtar dosya adıdır; DisplayName kullanıcıya gösterilen addır ve
// yeniden adlandırmada dosya adıyla birlikte değişir.
type Entry struct {
	Path        string
	DisplayName string
}

// Index kırpma önbelleğinin bellek içi dizinidir. Tek bir kontrol
// goroutine'ine aittir; eşzamanlı erişim senkronize edilmez.
type Index struct {
	dir     string
	entries map[string]Entry
	order   []string
}

// NewIndex boş bir dizin oluşturur.
func NewIndex(dir string) *Index {
	return &Index{
		dir:     dir,
		entries: make(map[string]Entry),
	}
}

// Load önbellek klasöründeki medya dosyalarını dizine yükler.
// Klasör yoksa oluşturulur ve boş dizin döner.
func Load(dir string) (*Index, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("önbellek klasörü oluşturulamadı: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("önbellek klasörü okunamadı: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !library.IsMedia(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	ix := NewIndex(dir)
	for _, name := range names {
		ix.Add(filepath.Join(dir, name))
	}
	return ix, nil
}

// Dir önbellek klasörünün yolunu döner.
func (ix *Index) Dir() string { return ix.dir }

// Len kayıt sayısını döner.
func (ix *Index) Len() int { return len(ix.entries) }

// Add yolu dizine ekler ve kaydı döner. Aynı ada sahip bir kayıt zaten
// varsa mevcut kayıt korunur ve false döner (ilk yazan kazanır).
func (ix *Index) Add(path string) (Entry, bool) {
	name := filepath.Base(path)
	if existing, ok := ix.entries[name]; ok {
		return existing, false
	}
	entry := Entry{Path: path, DisplayName: name}
	ix.entries[name] = entry
	ix.order = append(ix.order, name)
	return entry, true
}

// Get kaydı adına göre döner.
func (ix *Index) Get(name string) (Entry, bool) {
	entry, ok := ix.entries[name]
	return entry, ok
}

// Remove kaydı dizinden çıkarır; diskteki dosyaya dokunmaz.
func (ix *Index) Remove(name string) (Entry, bool) {
	entry, ok := ix.entries[name]
	if !ok {
		return Entry{}, false
	}
	delete(ix.entries, name)
	for i, n := range ix.order {
		if n == name {
			ix.order = append(ix.order[:i], ix.order[i+1:]...)
			break
		}
	}
	return entry, true
}

// Rename kaydı ve diskteki dosyayı yeniden adlandırır. Hedef ad dizinde
// veya diskte zaten varsa dosyaya dokunulmaz ve ConflictError döner.
func (ix *Index) Rename(oldName, newName string) (Entry, error) {
	entry, ok := ix.entries[oldName]
	if !ok {
		return Entry{}, fmt.Errorf("kayıt bulunamadı: %s", oldName)
	}
	if newName == oldName {
		return entry, nil
	}
	if _, exists := ix.entries[newName]; exists {
		return Entry{}, &ConflictError{Name: newName}
	}

	newPath := filepath.Join(filepath.Dir(entry.Path), newName)
	if _, err := os.Stat(newPath); err == nil {
		return Entry{}, &ConflictError{Name: newName}
	}
	if err := os.Rename(entry.Path, newPath); err != nil {
		return Entry{}, fmt.Errorf("dosya yeniden adlandırılamadı: %w", err)
	}

	delete(ix.entries, oldName)
	entry.Path = newPath
	entry.DisplayName = newName
	ix.entries[newName] = entry
	for i, n := range ix.order {
		if n == oldName {
			ix.order[i] = newName
			break
		}
	}
	return entry, nil
}

// Entries kayıtları ekleme sırasıyla döner.
func (ix *Index) Entries() []Entry {
	result := make([]Entry, 0, len(ix.order))
	for _, name := range ix.order {
		result = append(result, ix.entries[name])
	}
	return result
}
