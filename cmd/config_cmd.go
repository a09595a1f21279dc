package cmd

import (
	"fmt"

	"finchat/internal/cli"
	"finchat/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default backend: %s\n", cfg.General.DefaultBackend)
	fmt.Printf("    Default persona: %s\n", cfg.General.DefaultPersona)
	fmt.Println()

	fmt.Println("  [Granite]")
	if cfg.Granite.APIToken != "" {
		fmt.Printf("    API token: %s\n", cli.MaskSecret(cfg.Granite.APIToken))
		fmt.Println("    Configured: yes")
	} else {
		fmt.Println("    Configured: no (set HUGGINGFACE_API_TOKEN)")
	}
	fmt.Printf("    Model: %s\n", cfg.GraniteModel())
	fmt.Println()

	fmt.Println("  [Watson]")
	if cfg.WatsonConfigured() {
		fmt.Printf("    API key: %s\n", cli.MaskSecret(cfg.Watson.APIKey))
		fmt.Printf("    URL: %s\n", cfg.Watson.URL)
		fmt.Printf("    Assistant: %s\n", cfg.Watson.AssistantID)
		fmt.Println("    Configured: yes")
	} else {
		fmt.Println("    Configured: no (set WATSON_APIKEY, WATSON_URL, WATSON_ASSISTANT_ID)")
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)

	return nil
}
