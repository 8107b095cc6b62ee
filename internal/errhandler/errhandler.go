package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pterm/pterm"

	"github.com/tresuru/tresuru/internal/engine"
)

func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) || strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	// Gate errors are expected conditions, not faults.
	if isGateError(err) {
		pterm.Warning.Printf("%v\n", err)
		os.Exit(1)
	}

	pterm.Error.Printf("%v\n", err)
	os.Exit(1)
}

func isGateError(err error) bool {
	for _, gate := range []error{
		engine.ErrInsufficientApprovals,
		engine.ErrTreasuryPaused,
		engine.ErrTimelockNotElapsed,
		engine.ErrDailyLimitExceeded,
		engine.ErrTransactionExpired,
	} {
		if errors.Is(err, gate) {
			return true
		}
	}
	return false
}
