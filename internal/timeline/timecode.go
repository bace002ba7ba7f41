package timeline

import (
	"fmt"
	"regexp"
	"strconv"
)

// timecodePattern MM:SS.mmm desenini tam eşleşme ile kabul eder.
// Kısmi eşleşme ve yerel (locale) varyantları reddedilir.
var timecodePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\.(\d{3})$`)

// FormatTimecode milisaniyeyi MM:SS.mmm metnine çevirir.
// Dakika 60'ta sarmalanmaz; negatif girdi 0'a sabitlenir.
func FormatTimecode(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSec := ms / 1000
	millis := ms % 1000
	minutes := totalSec / 60
	seconds := totalSec % 60
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}

// ParseTimecode MM:SS.mmm metnini milisaniyeye çevirir.
func ParseTimecode(text string) (int64, error) {
	m := timecodePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("gecersiz zaman kodu: %q (beklenen format: MM:SS.mmm)", text)
	}

	minutes, _ := strconv.ParseInt(m[1], 10, 64)
	seconds, _ := strconv.ParseInt(m[2], 10, 64)
	millis, _ := strconv.ParseInt(m[3], 10, 64)

	return (minutes*60+seconds)*1000 + millis, nil
}
