package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	spacetraders "github.com/spacetraders/client-go"
)

var (
	client *spacetraders.Client
	logger zerolog.Logger

	// Command flags
	baseURL  string
	username string
	token    string
	verbose  bool
	useV2    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "spacetraders",
	Short: "A command line client for the SpaceTraders game API",
	Long: `spacetraders talks to the SpaceTraders game API from the command line:
check game status, inspect your account and fleet, browse markets, and
manage loans. Credentials come from flags, SPACETRADERS_* environment
variables, or a .env file in the working directory.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version shown by --version.
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default is the live game server)")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "account username")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "API bearer token")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&useV2, "v2", false, "talk to the v2 alpha server")

	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(shipsCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(loansCmd)
}

// initializeApp resolves credentials and builds the API client.
func initializeApp(cmd *cobra.Command, args []string) error {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SPACETRADERS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if username == "" {
		username = v.GetString("username")
	}
	if token == "" {
		token = v.GetString("token")
	}
	if baseURL == "" {
		baseURL = v.GetString("base_url")
	}

	logger = setupLogger(verbose)

	// The claim command builds its own client so it can run without a
	// token on a fresh account.
	if cmd == claimCmd {
		return nil
	}

	if token == "" {
		return fmt.Errorf("no token configured: set --token, SPACETRADERS_TOKEN, or run 'spacetraders claim' first")
	}

	opts := []spacetraders.Option{spacetraders.WithLogger(logger)}
	if baseURL != "" {
		opts = append(opts, spacetraders.WithBaseURL(baseURL))
	}
	if useV2 {
		opts = append(opts, spacetraders.WithV2())
	}

	var err error
	client, err = spacetraders.New(username, token, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
