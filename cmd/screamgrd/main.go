package main

import (
	"fmt"
	"os"

	"github.com/jenian/screamgrd/internal/analyzer"
	"github.com/jenian/screamgrd/internal/config"
	"github.com/jenian/screamgrd/internal/detector"
	"github.com/jenian/screamgrd/internal/envfile"
	"github.com/jenian/screamgrd/internal/output"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:     "screamgrd <logfile>",
		Short:   "Scan a log file for environment variable screams",
		Long:    "A CLI tool that scans a log file for messages implicating environment variables and compares the findings with your .env file.",
		Example: "  screamgrd ./logs/app.log",
		Args:    cobra.ExactArgs(1),
		RunE:    runScan,
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Create a .screamgrd.config file in the current directory",
		Long:  "Creates a .screamgrd.config file with default configuration in the current directory.",
		RunE:  runInitConfig,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "Print the version number of screamgrd",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}

	// Flags
	envFile    string
	jsonOutput bool
	silent     bool
	strict     bool
	debug      bool
	noHeader   bool
)

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Reference file with KEY=VALUE declarations")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.Flags().BoolVar(&silent, "silent", false, "Silent mode (exit code only, pair with --strict)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with code 1 when missing variables are found")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "Skip printing the report header")

	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	logPath := args[0]

	// A missing log file is a notice, not a failure
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		if !silent {
			fmt.Printf("Log file not found: %s\n", logPath)
		}
		return nil
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("failed to read log file %s: %w", logPath, err)
	}

	cfg, err := config.Load(".")
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", config.FileName, err)
		}
		// Continue with default config
		cfg = &config.Config{}
	}

	det := detector.New()
	det.SetDebug(debug)
	candidates := det.Detect(string(content))

	loader := envfile.NewLoader(envFile)
	refVars, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load reference file: %w", err)
	}

	result := analyzer.Classify(candidates, refVars, cfg)
	result.RefPath = loader.Path()

	formatter := output.New(os.Stdout)
	opts := output.Options{
		JSON:     jsonOutput,
		Silent:   silent,
		NoHeader: noHeader,
	}
	if err := formatter.Format(logPath, result, opts); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if strict && output.HasIssues(result) {
		os.Exit(1)
	}

	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	configPath := config.FileName

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in the current directory", config.FileName)
	}

	configContent := `# .screamgrd.config
# Configuration file for screamgrd

ignores:
  # Variables that are configured in custom ways (not declared in .env)
  # These will not be reported as missing
  missing:
    # - CUSTOM_API_KEY
    # - EXTERNAL_SERVICE_TOKEN
    # Add more variable names here as needed
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", config.FileName, err)
	}

	fmt.Printf("Created %s in the current directory\n", config.FileName)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
