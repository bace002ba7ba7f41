package cache

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TrimOutputName kırpma çıktısının dosya adını üretir:
// "{ad}_trimmed_{başlangıç}_{bitiş}{uzantı}" (zamanlar milisaniye).
// Aynı kaynak ve aralık her zaman aynı adı üretir; tekrar istekler
// böylece aynı önbellek kaydına düşer.
func TrimOutputName(src string, startMS, endMS int64) string {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_trimmed_%d_%d%s", stem, startMS, endMS, ext)
}
