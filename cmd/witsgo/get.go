package main

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/rigstream/witsgo"
	"github.com/rigstream/witsgo/bindings/v1411"
	"github.com/rigstream/witsgo/store"
	"github.com/spf13/cobra"
)

var getExample = `
# List wellbores of a well by id
witsgo get wellbore --well W-1

# Fetch one full log
witsgo get log --well W-1 --wellbore WB-1 --uid L-1 --return all`

func getCmd() *cobra.Command {
	var (
		uid         string
		uidWell     string
		uidWellbore string
		ret         string
	)

	cmd := &cobra.Command{
		Use:     "get <type>",
		Short:   "Query objects from the store",
		Example: getExample,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				cmd.PrintErrln("Must specify an object type")
				return
			}

			c, err := newStoreClient()
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			out, err := fetch(cmd.Context(), c, witsgo.ObjectType(args[0]),
				uid, uidWell, uidWellbore, witsgo.ReturnElements(ret))
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			data, err := xml.MarshalIndent(out, "", "  ")
			if err != nil {
				cmd.PrintErrln(err)
				return
			}
			cmd.Println(string(data))
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Object uid")
	cmd.Flags().StringVar(&uidWell, "well", "", "Parent well uid")
	cmd.Flags().StringVar(&uidWellbore, "wellbore", "", "Parent wellbore uid")
	cmd.Flags().StringVar(&ret, "return", string(witsgo.ReturnIDOnly),
		"returnElements value, one of: all, id-only, header-only, data-only, station-location-only, latest-change-only, requested")

	return cmd
}

func fetch(ctx context.Context, c *store.Client, typ witsgo.ObjectType,
	uid, uidWell, uidWellbore string, ret witsgo.ReturnElements) (interface{}, error) {
	switch typ {
	case witsgo.TypeBhaRun:
		return c.GetBhaRuns(ctx, v1411.BhaRun{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeDrillReport:
		return c.GetDrillReports(ctx, v1411.DrillReport{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeFluidsReport:
		return c.GetFluidsReports(ctx, v1411.FluidsReport{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeFormationMarker:
		return c.GetFormationMarkers(ctx, v1411.FormationMarker{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeLog:
		return c.GetLogs(ctx, v1411.Log{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeMudLog:
		return c.GetMudLogs(ctx, v1411.MudLog{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeTrajectory:
		return c.GetTrajectories(ctx, v1411.Trajectory{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeTubular:
		return c.GetTubulars(ctx, v1411.Tubular{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeWbGeometry:
		return c.GetWbGeometries(ctx, v1411.WbGeometry{UidWell: uidWell, UidWellbore: uidWellbore, Uid: uid}, ret)
	case witsgo.TypeWell:
		return c.GetWells(ctx, v1411.Well{Uid: uid}, ret)
	case witsgo.TypeWellbore:
		return c.GetWellbores(ctx, v1411.Wellbore{UidWell: uidWell, Uid: uid}, ret)
	default:
		return nil, fmt.Errorf("unknown object type: %s", typ)
	}
}
