package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "objcopy",
	Short: "Copy newly uploaded objects to the target bucket and record their metadata.",
	Long: `objcopy reacts to S3 object-created notifications: the object is copied
server-side to the configured target bucket and a metadata record is written
to the record store. Run without a subcommand it starts the AWS Lambda runtime.`,
	SilenceUsage: true,
	RunE:         runLambda,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
