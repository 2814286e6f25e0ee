package upload

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with a 1024 based unit, rounded to at
// most two decimals: 1536 -> "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	// Integer walk instead of log(bytes)/log(1024) so exact powers of 1024
	// never land one unit short.
	unit := 0
	div := int64(1)
	for unit < len(sizeUnits)-1 && bytes/div >= 1024 {
		div *= 1024
		unit++
	}

	value := math.Round(float64(bytes)/float64(div)*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[unit]
}
