package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath     string
	DBPath         string
	DBExists       bool // true = Found, false = Not Found
	Backend        string
	LedgerEndpoint string
	SignerAddress  string
	AppDataDir     string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	endpoint := data.LedgerEndpoint
	if endpoint == "" {
		endpoint = "-"
	}
	signer := data.SignerAddress
	if signer == "" {
		signer = "-"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Backend", data.Backend},
		{"Ledger Endpoint", endpoint},
		{"Session Signer", signer},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
