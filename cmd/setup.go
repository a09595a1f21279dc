package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"finchat/internal/cli"
	"finchat/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to finchat!")
	fmt.Println()

	// 1. Hugging Face token
	fmt.Println("  1. Hugging Face API token")
	fmt.Println("     Needed for the Granite backend.")
	if cfg.Granite.APIToken != "" {
		fmt.Printf("     Current: %s\n", cli.MaskSecret(cfg.Granite.APIToken))
	}
	fmt.Print("     > ")
	token, _ := reader.ReadString('\n')
	token = strings.TrimSpace(token)
	if token != "" {
		cfg.Granite.APIToken = token
	}
	fmt.Println()

	// 2. Watson credentials
	fmt.Println("  2. Watson Assistant (optional, Enter to skip)")
	fmt.Print("     API key > ")
	key, _ := reader.ReadString('\n')
	if key = strings.TrimSpace(key); key != "" {
		cfg.Watson.APIKey = key
	}
	fmt.Print("     Service URL > ")
	url, _ := reader.ReadString('\n')
	if url = strings.TrimSpace(url); url != "" {
		cfg.Watson.URL = url
	}
	fmt.Print("     Assistant ID > ")
	id, _ := reader.ReadString('\n')
	if id = strings.TrimSpace(id); id != "" {
		cfg.Watson.AssistantID = id
	}
	fmt.Println()

	// 3. Default persona
	fmt.Println("  3. Default persona")
	fmt.Println("     (1) student [default]")
	fmt.Println("     (2) professional")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultPersona = "professional"
	default:
		cfg.General.DefaultPersona = "student"
	}
	fmt.Println()

	// 4. Default backend
	fmt.Println("  4. Default backend")
	fmt.Println("     (1) Granite via Hugging Face [default]")
	fmt.Println("     (2) Watson Assistant")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultBackend = "watson"
	default:
		cfg.General.DefaultBackend = "granite"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `finchat setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
