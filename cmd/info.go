package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/views"
)

type infoRunner struct {
	svc  *service.Service
	mode string
}

func NewInfoCmd(svc *service.Service, mode string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, backend mode, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc:  svc,
				mode: mode,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	rawDBPath := r.svc.Config.Database.Path
	expandedDBPath, _ := expandPath(rawDBPath)

	dbExists := false
	if _, err := os.Stat(expandedDBPath); err == nil {
		dbExists = true
	}

	signer, _ := ActiveSigner()

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		DBPath:         expandedDBPath,
		DBExists:       dbExists,
		Backend:        r.mode,
		LedgerEndpoint: r.svc.Config.Ledger.Endpoint,
		SignerAddress:  signer,
		AppDataDir:     getAppDataDirOrPanic(),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrPanic() string {
	dir, err := getAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
