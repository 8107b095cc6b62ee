package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tresuru/tresuru/cmd/account"
	"github.com/tresuru/tresuru/cmd/governance"
	"github.com/tresuru/tresuru/cmd/signer"
	"github.com/tresuru/tresuru/cmd/tx"
	"github.com/tresuru/tresuru/internal/app"
	"github.com/tresuru/tresuru/internal/config"
	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/prompts"
)

var (
	cfgFile    string
	signerFlag string
	cfg        *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	if err := initSigners(application.Service); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "tresuru",
		Short:         "tresuru is a policy-gated multi-signature treasury CLI",
		Long:          `tresuru manages pooled treasury funds behind tiered approval thresholds, a daily spending cap, a timelock and an emergency pause.`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&signerFlag, "signer", "s", "", "act as this signer address (overrides session.signer)")

	rootCmd.AddCommand(tx.NewTransactionCmd(application.Service, ActiveSigner))
	rootCmd.AddCommand(signer.NewSignerCmd(application.Service, ActiveSigner))
	rootCmd.AddCommand(governance.NewGovernanceCmd(application.Service, ActiveSigner))
	rootCmd.AddCommand(account.NewAccountCmd(application.Service))

	rootCmd.AddCommand(NewProposeCmd(application.Service))
	rootCmd.AddCommand(NewInfoCmd(application.Service, application.Mode.String()))
	rootCmd.AddCommand(NewPolicyCmd(application.Gateway))
	rootCmd.AddCommand(NewDemoCmd(application.Store))

	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

// ActiveSigner resolves the address acting as the current user: the
// --signer flag wins over the configured session signer.
func ActiveSigner() (string, error) {
	if signerFlag != "" {
		return strings.ToLower(signerFlag), nil
	}
	if cfg.Session.Signer != "" {
		return strings.ToLower(cfg.Session.Signer), nil
	}
	return "", fmt.Errorf("no signer configured: set session.signer in the config file or pass --signer")
}

// initSigners runs the first-run wizard: an empty registry gets a
// bootstrap admin before any command executes.
func initSigners(svc *service.Service) error {
	count, err := svc.Signer.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pterm.Info.Println("No signers enrolled yet. Let's set up the first admin.")

	address, name, err := prompts.PromptInitSigner()
	if err != nil {
		return err
	}

	enrolled, err := svc.Signer.Enroll("", address, name, constants.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to enroll bootstrap admin: %w", err)
	}

	if cfg.Session.Signer == "" {
		viper.Set("session.signer", enrolled.Address)
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("failed to save config to file: %w", err)
		}
		cfg.Session.Signer = enrolled.Address
	}

	pterm.Success.Printf("Enrolled %s as admin\n", enrolled.Name)
	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("TRESURU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tresuru"), nil
	}

	return filepath.Join(configDir, "tresuru"), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
