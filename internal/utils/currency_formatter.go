package utils

import (
	"fmt"
	"strings"

	"github.com/tresuru/tresuru/internal/constants"
)

func FormatFromCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s.%02d", sign, groupThousands(cents/int64(constants.CentsPerUnit)), cents%int64(constants.CentsPerUnit))
}

// FormatUSD renders a cents amount for display, e.g. "$47,500.00".
func FormatUSD(cents int64) string {
	s := FormatFromCents(cents)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	amountStr = strings.TrimPrefix(amountStr, "$")

	var dollars, cents int64

	// Handle formats: "150", "150.5", "150.50"
	parts := strings.Split(amountStr, ".")

	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	if parts[0] != "" {
		_, err := fmt.Sscanf(parts[0], "%d", &dollars)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
	}

	if len(parts) == 2 {
		centStr := parts[1]
		// Pad or truncate to 2 digits
		if len(centStr) == 1 {
			centStr += "0" // "150.5" -> "50"
		} else if len(centStr) > 2 {
			centStr = centStr[:2]
		}

		_, err := fmt.Sscanf(centStr, "%d", &cents)
		if err != nil {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
	}

	return dollars*int64(constants.CentsPerUnit) + cents, nil
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
