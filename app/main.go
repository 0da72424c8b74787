package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ydb-platform/ydb-connector-maxdb/app/client"
	"github.com/ydb-platform/ydb-connector-maxdb/app/handler"
)

var rootCmd = &cobra.Command{
	Use:   "connector",
	Short: "Connector for " + handler.Title,
}

func init() {
	rootCmd.AddCommand(client.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
