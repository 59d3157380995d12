package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "checkout",
		Short:   "Terminal PIX checkout against the payments API",
		Version: Version,
	}
	rootCmd.PersistentFlags().String("api-url", defaultAPIURL, "Payments API base URL (CHECKOUT_API_URL)")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "HTTP timeout per request (CHECKOUT_TIMEOUT)")

	rootCmd.AddCommand(payCmd())
	rootCmd.AddCommand(plansCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
