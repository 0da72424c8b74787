package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xwb1989/sqlparser"
	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/app/handler"
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
)

const (
	configFlag = "config"
	astFlag    = "ast"
	formatFlag = "format"
)

var Cmd = &cobra.Command{
	Use:   "client",
	Short: "run statements against SAP MaxDB for testing and debugging purposes",
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "probe the connection",
	Args:  cobra.NoArgs,
	Run:   run(runCheck),
}

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "run a statement",
	Args:  cobra.ExactArgs(1),
	Run:   run(runQuery),
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "list tables of the configured schema",
	Args:  cobra.NoArgs,
	Run:   run(runTables),
}

var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "describe the columns of a table",
	Args:  cobra.ExactArgs(1),
	Run:   run(runColumns),
}

func init() {
	Cmd.PersistentFlags().StringP(configFlag, "c", "", "path to YAML config file")
	config.RegisterFlags(Cmd.PersistentFlags())

	queryCmd.Flags().Bool(astFlag, false, "parse the statement and render it in the MaxDB dialect before running it")
	queryCmd.Flags().String(formatFlag, formatTable, "output format: table or arrow")

	Cmd.AddCommand(checkCmd, queryCmd, tablesCmd, columnsCmd)
}

type runner func(ctx context.Context, cmd *cobra.Command, h *handler.Handler, args []string) error

func run(fn runner) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := execute(cmd, args, fn); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}

func execute(cmd *cobra.Command, args []string, fn runner) error {
	h, logger, err := newHandler(cmd.Flags())
	if err != nil {
		return err
	}

	defer func() {
		if err := h.Close(); err != nil {
			logger.Warn("close handler", log.Error(err))
		}
	}()

	return fn(cmd.Context(), cmd, h, args)
}

func newHandler(flags *pflag.FlagSet) (*handler.Handler, log.Logger, error) {
	configPath, err := flags.GetString(configFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("get flag '%s': %w", configFlag, err)
	}

	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.NewLoggerFromConfig(&cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("new logger: %w", err)
	}

	preset, err := handler.NewPresetFactory(utils.NewQueryLoggerFactory(&cfg.Logger)).Make(cfg.DataSource.Driver)
	if err != nil {
		return nil, nil, fmt.Errorf("make preset: %w", err)
	}

	return handler.NewHandler(handler.Kind, cfg.DataSource, preset, logger), logger, nil
}

func runCheck(ctx context.Context, cmd *cobra.Command, h *handler.Handler, _ []string) error {
	status := h.CheckConnection(ctx)
	if !status.Success {
		return fmt.Errorf("%v: %s", status.Status, status.ErrorMessage)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "connection OK")

	return nil
}

func runQuery(ctx context.Context, cmd *cobra.Command, h *handler.Handler, args []string) error {
	useAST, err := cmd.Flags().GetBool(astFlag)
	if err != nil {
		return fmt.Errorf("get flag '%s': %w", astFlag, err)
	}

	format, err := cmd.Flags().GetString(formatFlag)
	if err != nil {
		return fmt.Errorf("get flag '%s': %w", formatFlag, err)
	}

	return renderResponse(cmd.OutOrStdout(), query(ctx, h, args[0], useAST), format)
}

func query(ctx context.Context, h *handler.Handler, text string, useAST bool) *handler.Response {
	if !useAST {
		return h.NativeQuery(ctx, text)
	}

	stmt, err := sqlparser.Parse(text)
	if err != nil {
		return handler.NewErrorResponse(fmt.Errorf("%w: parse: %w", utils.ErrInvalidRequest, err))
	}

	return h.Query(ctx, stmt)
}

func runTables(ctx context.Context, cmd *cobra.Command, h *handler.Handler, _ []string) error {
	return renderResponse(cmd.OutOrStdout(), h.GetTables(ctx), formatTable)
}

func runColumns(ctx context.Context, cmd *cobra.Command, h *handler.Handler, args []string) error {
	return renderResponse(cmd.OutOrStdout(), h.GetColumns(ctx, args[0]), formatTable)
}
