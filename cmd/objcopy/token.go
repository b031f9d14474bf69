package main

import (
	"fmt"
	"time"

	"github.com/abduss/objcopy/internal/auth"
	"github.com/abduss/objcopy/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

func init() {
	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "minio", "name of the notifying deployment")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (0 never expires)")
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the notification webhook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		token, err := auth.NewVerifier(config.LoadWebhook().JWTSecret).Issue(tokenSubject, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
