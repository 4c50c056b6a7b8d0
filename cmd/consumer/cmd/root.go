package cmd

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/ezfinancial/go-entry-engine/cmd/setup"
	"github.com/ezfinancial/go-entry-engine/internal/common/graceful"
	xlog "github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/deliveries/consumer"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling raw transaction events",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runConsumerCmd)

	runConsumerCmd.Flags().StringP(runConsumerCmdName, "n", "", "consumer name")
	runConsumerCmd.MarkFlagRequired(runConsumerCmdName)
}

var (
	runConsumerCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    `Run consumer for handling raw transaction events, available consumer type: raw_transaction`,
		Example: "consumer run -n={consumer-type-name}",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)

	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	xlog.Infof(ctx, "initializing consumer: %s", consumerName)

	consumerProcess, consumerStopper, err := consumer.NewKafkaConsumer(ctx, consumerName, s.Config, s.Service, s.SQLRepo)
	if err != nil {
		graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
		xlog.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	healthCheckProcess := consumer.NewHealthHTTPServer(ctx, s.Config)

	starters = append(starters, consumerProcess.Start(), healthCheckProcess.Start())

	// StopProcess walks the stoppers in reverse, so outer surfaces go last
	// in this list and stop first.
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, consumerStopper...)
	stoppers = append(stoppers, consumerProcess.Stop())
	stoppers = append(stoppers, healthCheckProcess.Stop())

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	xlog.Infof(ctx, "consumer %s stopped!", consumerName)
}
