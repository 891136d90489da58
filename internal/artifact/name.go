package artifact

import (
	"fmt"
	"strings"
	"time"
)

const (
	stampLayout = "02012006" // DDMMYYYY
	stampLen    = len(stampLayout)
)

// Extensions for the two artifact formats.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// FormatName returns an artifact file name like "balanco_diario_17102026.xlsx".
func FormatName(prefix string, date time.Time, ext string) string {
	return prefix + date.Format(stampLayout) + ext
}

// ParseName extracts the date stamp from an artifact file name.
func ParseName(name, prefix, ext string) (time.Time, error) {
	if !MatchesName(name, prefix, ext) {
		return time.Time{}, fmt.Errorf("invalid artifact name %q", name)
	}
	stamp := name[len(prefix) : len(name)-len(ext)]
	date, err := time.Parse(stampLayout, stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date stamp in %q: %w", name, err)
	}
	return date, nil
}

// MatchesName reports whether name follows the <prefix><8 digits><ext> convention.
// The stamp is not validated as a calendar date.
func MatchesName(name, prefix, ext string) bool {
	if len(name) < len(prefix)+len(ext) {
		return false
	}
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return false
	}
	stamp := name[len(prefix) : len(name)-len(ext)]
	if len(stamp) != stampLen {
		return false
	}
	for _, r := range stamp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
