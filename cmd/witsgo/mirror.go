package main

import (
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ClickHouse/clickhouse-go"
	"github.com/rigstream/witsgo/mirror"
	"github.com/spf13/cobra"
)

var mirrorExample = `
# Mirror a growing log into ClickHouse until interrupted
witsgo mirror --dsn tcp://127.0.0.1:9000?database=wits \
    --well W-1 --wellbore WB-1 --log L-1 --table log_rows \
    --spool /var/lib/witsgo/L-1.spool`

func mirrorCmd() *cobra.Command {
	var (
		dsn         string
		table       string
		uidWell     string
		uidWellbore string
		uidLog      string
		spool       string
		interval    time.Duration
		batch       int
		full        bool
	)

	cmd := &cobra.Command{
		Use:     "mirror",
		Short:   "Mirror a growing log into ClickHouse",
		Example: mirrorExample,
		Run: func(cmd *cobra.Command, args []string) {
			c, err := newStoreClient()
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			connect, err := sql.Open("clickhouse", dsn)
			if err != nil {
				cmd.PrintErrln(err)
				return
			}
			defer connect.Close()

			m, err := mirror.New(c, connect, mirror.Config{
				UidWell:     uidWell,
				UidWellbore: uidWellbore,
				UidLog:      uidLog,
				Table:       table,
				Interval:    interval,
				BatchLimit:  batch,
				FullRefetch: full,
				SpoolPath:   spool,
			})
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			m.Run()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig

			m.Stop(true)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "ClickHouse dsn")
	cmd.Flags().StringVar(&table, "table", "", "Sink table for curve rows")
	cmd.Flags().StringVar(&uidWell, "well", "", "Parent well uid")
	cmd.Flags().StringVar(&uidWellbore, "wellbore", "", "Parent wellbore uid")
	cmd.Flags().StringVar(&uidLog, "log", "", "Log uid to mirror")
	cmd.Flags().StringVar(&spool, "spool", "", "Path of the on-disk spool for unsent rows")
	cmd.Flags().DurationVar(&interval, "interval", 10*time.Second, "Pull interval")
	cmd.Flags().IntVar(&batch, "batch", 500, "Row limit per publish")
	cmd.Flags().BoolVar(&full, "full", false, "Re-pull the whole data block every interval")
	_ = cmd.MarkFlagRequired("dsn")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("log")

	return cmd
}
