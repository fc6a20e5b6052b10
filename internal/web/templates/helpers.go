package templates

import (
	"fmt"
	"strings"
)

func formatFloat(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

func formatLoss(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

func formatInt(n int) string {
	return fmt.Sprintf("%d", n)
}

func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// imageSrc keeps only relative paths and http(s) URLs.
func imageSrc(src string) string {
	lower := strings.ToLower(src)
	if strings.Contains(lower, ":") && !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "about:invalid"
	}
	return src
}
