package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lambdaCmd)
}

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Serve S3 notifications through the AWS Lambda runtime (default)",
	Args:  cobra.NoArgs,
	RunE:  runLambda,
}

func runLambda(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}

	// lambda.Start exits the process itself and never returns.
	a.log.Info("starting lambda handler")
	_ = a.log.Sync()
	lambda.Start(a.service.HandleEvent)
	return nil
}
