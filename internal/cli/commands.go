package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	spacetraders "github.com/spacetraders/client-go"
)

// claimCmd represents the claim command
var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim a token for a new username",
	Long: `Claim registers the username with the game and prints the issued token.
Store the token: it is the only credential for the account and cannot be
recovered later.`,
	RunE: runClaim,
}

func runClaim(cmd *cobra.Command, args []string) error {
	if username == "" {
		return fmt.Errorf("a username is required: set --username or SPACETRADERS_USERNAME")
	}

	opts := []spacetraders.Option{spacetraders.WithLogger(logger)}
	if baseURL != "" {
		opts = append(opts, spacetraders.WithBaseURL(baseURL))
	}
	if useV2 {
		opts = append(opts, spacetraders.WithV2())
	}

	c, err := spacetraders.New(username, "", opts...)
	if err != nil {
		return err
	}

	fmt.Printf("Token claimed for %s:\n\n  %s\n\nStore it somewhere safe; it cannot be recovered.\n",
		c.Username(), c.Token())
	return nil
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the game server is up",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	status, err := client.Game.Status(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(status)
	return nil
}

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account's credits, ships, and loans",
	RunE:  runAccount,
}

func runAccount(cmd *cobra.Command, args []string) error {
	user, err := client.Account.Info(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Credits:  %d\n", user.Credits)
	fmt.Printf("Ships:    %d\n", len(user.Ships))
	fmt.Printf("Loans:    %d\n", len(user.Loans))
	return nil
}

// shipsCmd represents the ships command
var shipsCmd = &cobra.Command{
	Use:   "ships",
	Short: "List the ships in your fleet",
	RunE:  runShips,
}

func runShips(cmd *cobra.Command, args []string) error {
	ships, err := client.Ships.List(context.Background())
	if err != nil {
		return err
	}

	if len(ships) == 0 {
		fmt.Println("No ships owned.")
		return nil
	}

	fmt.Printf("Found %d ships:\n", len(ships))
	fmt.Println(strings.Repeat("-", 60))
	for _, ship := range ships {
		fmt.Printf("• %s  %s  at %s", ship.ID, ship.Type, ship.Location)
		if ship.Location == spacetraders.InTransit && ship.FlightPlanID != "" {
			fmt.Printf(" (flight plan %s)", ship.FlightPlanID)
		}
		fmt.Println()
		fmt.Printf("  Cargo: %d/%d\n", ship.MaxCargo-ship.SpaceAvailable, ship.MaxCargo)
	}
	return nil
}

// marketCmd represents the market command
var marketCmd = &cobra.Command{
	Use:   "market <location>",
	Short: "Show the marketplace at a location",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarket,
}

func runMarket(cmd *cobra.Command, args []string) error {
	goods, err := client.Locations.Marketplace(context.Background(), args[0])
	if err != nil {
		return err
	}

	if len(goods) == 0 {
		fmt.Println("Nothing traded here.")
		return nil
	}

	fmt.Printf("%-20s %10s %10s %12s\n", "GOOD", "BUY", "SELL", "AVAILABLE")
	for _, good := range goods {
		fmt.Printf("%-20s %10d %10d %12d\n",
			good.Symbol, good.PurchasePricePerUnit, good.SellPricePerUnit, good.QuantityAvailable)
	}
	return nil
}

// loansCmd represents the loans command
var loansCmd = &cobra.Command{
	Use:   "loans",
	Short: "List your loans",
	RunE:  runLoans,
}

func runLoans(cmd *cobra.Command, args []string) error {
	loans, err := client.Loans.List(context.Background())
	if err != nil {
		return err
	}

	if len(loans) == 0 {
		fmt.Println("No outstanding loans.")
		return nil
	}

	for _, loan := range loans {
		fmt.Printf("• %s  %s  %s\n", loan.ID, loan.Type, loan.Status)
		fmt.Printf("  Repay %d by %s\n", loan.RepaymentAmount, loan.Due.Format("2006-01-02 15:04"))
	}
	return nil
}
