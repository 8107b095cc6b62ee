package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// StatusColor maps a transaction status to its display color.
func StatusColor(status string) string {
	switch status {
	case "executed":
		return pterm.Green(status)
	case "approved":
		return pterm.Cyan(status)
	case "pending_approval":
		return pterm.Yellow(status)
	case "rejected", "cancelled":
		return pterm.Red(status)
	}
	return status
}
