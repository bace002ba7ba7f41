package cache

import (
	"path/filepath"

	"github.com/mlihgenel/medianexus-cli/internal/transcoder"
)

// Export kaynağın [startMS, endMS] aralığını önbellek klasörüne kırpar
// ve sonucu dizine ekler. Aynı kaynak ve aralık için çıktı zaten
// dizindeyse ffmpeg çalıştırılmadan mevcut kayıt döner.
func Export(ff *transcoder.FFmpeg, ix *Index, src string, startMS, endMS int64) (Entry, error) {
	name := TrimOutputName(src, startMS, endMS)
	if existing, ok := ix.Get(name); ok {
		return existing, nil
	}

	dst := filepath.Join(ix.Dir(), name)
	if err := ff.Trim(src, dst, startMS, endMS); err != nil {
		return Entry{}, err
	}

	entry, _ := ix.Add(dst)
	return entry, nil
}
