// Package store binds the WITSML Store API: every call is one synchronous
// WMLS_* exchange, and retrieval wraps a single query object into its
// singleton collection before sending it.
package store

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/rigstream/witsgo"
	"github.com/rigstream/witsgo/bindings/v1411"
	"github.com/rigstream/witsgo/soap"
)

func NewClient(config ...Config) (*Client, error) {
	// Set default config
	cfg := configDefault(config...)

	logger := cfg.Logger
	if logger == nil {
		var err error
		logger, err = NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	transport, err := soap.NewClient(soap.Config{
		URL:        cfg.URL,
		Username:   cfg.Username,
		Password:   cfg.Password,
		UserAgent:  cfg.AgentName,
		Timeout:    cfg.Timeout,
		Insecure:   cfg.Insecure,
		RootCAs:    cfg.RootCAs,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		logger:    logger,
	}, nil
}

type Client struct {
	transport *soap.Client
	logger    Logger
}

// getFromStore sends one WMLS_GetFromStore call and decodes XMLout into out
// on result 1 or 2. Result 2 means the store truncated a growing object's
// data nodes; the data that did arrive is still decoded.
func (c *Client) getFromStore(ctx context.Context, typ witsgo.ObjectType, query interface{}, ret witsgo.ReturnElements, out interface{}) error {
	xmlIn, err := xml.Marshal(query)
	if err != nil {
		return fmt.Errorf("encode %s query: %w", typ, err)
	}

	var resp getFromStoreResponse
	req := getFromStoreRequest{
		WMLtypeIn: typ.String(),
		XMLin:     string(xmlIn),
		OptionsIn: ret.Options(),
	}
	if err := c.transport.Call(ctx, actionGetFromStore, req, &resp); err != nil {
		return err
	}

	switch resp.Result {
	case witsgo.ResultSuccess:
	case witsgo.ResultPartial:
		c.logger.Warnw("some growing data-object nodes were not returned",
			"type", typ.String(),
			"message", resp.SuppMsgOut,
		)
	default:
		return &witsgo.StoreError{Code: resp.Result, Message: resp.SuppMsgOut}
	}

	if err := xml.Unmarshal([]byte(resp.XMLOut), out); err != nil {
		return fmt.Errorf("decode %s reply: %w", typ, err)
	}
	return nil
}

// GetBhaRuns queries the store for bhaRuns matching query; an empty BhaRun
// with ReturnIDOnly lists everything by id.
func (c *Client) GetBhaRuns(ctx context.Context, query v1411.BhaRun, ret witsgo.ReturnElements) (*v1411.BhaRuns, error) {
	q := v1411.BhaRuns{Version: v1411.Version, BhaRun: []v1411.BhaRun{query}}
	var out v1411.BhaRuns
	if err := c.getFromStore(ctx, witsgo.TypeBhaRun, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDrillReports queries the store for drillReports matching query.
func (c *Client) GetDrillReports(ctx context.Context, query v1411.DrillReport, ret witsgo.ReturnElements) (*v1411.DrillReports, error) {
	q := v1411.DrillReports{Version: v1411.Version, DrillReport: []v1411.DrillReport{query}}
	var out v1411.DrillReports
	if err := c.getFromStore(ctx, witsgo.TypeDrillReport, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFluidsReports queries the store for fluidsReports matching query.
func (c *Client) GetFluidsReports(ctx context.Context, query v1411.FluidsReport, ret witsgo.ReturnElements) (*v1411.FluidsReports, error) {
	q := v1411.FluidsReports{Version: v1411.Version, FluidsReport: []v1411.FluidsReport{query}}
	var out v1411.FluidsReports
	if err := c.getFromStore(ctx, witsgo.TypeFluidsReport, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFormationMarkers queries the store for formationMarkers matching query.
func (c *Client) GetFormationMarkers(ctx context.Context, query v1411.FormationMarker, ret witsgo.ReturnElements) (*v1411.FormationMarkers, error) {
	q := v1411.FormationMarkers{Version: v1411.Version, FormationMarker: []v1411.FormationMarker{query}}
	var out v1411.FormationMarkers
	if err := c.getFromStore(ctx, witsgo.TypeFormationMarker, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLogs queries the store for logs matching query. Use ReturnDataOnly with
// a startIndex to pull increments of a growing log.
func (c *Client) GetLogs(ctx context.Context, query v1411.Log, ret witsgo.ReturnElements) (*v1411.Logs, error) {
	q := v1411.Logs{Version: v1411.Version, Log: []v1411.Log{query}}
	var out v1411.Logs
	if err := c.getFromStore(ctx, witsgo.TypeLog, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMudLogs queries the store for mudLogs matching query.
func (c *Client) GetMudLogs(ctx context.Context, query v1411.MudLog, ret witsgo.ReturnElements) (*v1411.MudLogs, error) {
	q := v1411.MudLogs{Version: v1411.Version, MudLog: []v1411.MudLog{query}}
	var out v1411.MudLogs
	if err := c.getFromStore(ctx, witsgo.TypeMudLog, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTrajectories queries the store for trajectorys matching query.
// ReturnStationLocationOnly trims each station to its location fields.
func (c *Client) GetTrajectories(ctx context.Context, query v1411.Trajectory, ret witsgo.ReturnElements) (*v1411.Trajectories, error) {
	q := v1411.Trajectories{Version: v1411.Version, Trajectory: []v1411.Trajectory{query}}
	var out v1411.Trajectories
	if err := c.getFromStore(ctx, witsgo.TypeTrajectory, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTubulars queries the store for tubulars matching query.
func (c *Client) GetTubulars(ctx context.Context, query v1411.Tubular, ret witsgo.ReturnElements) (*v1411.Tubulars, error) {
	q := v1411.Tubulars{Version: v1411.Version, Tubular: []v1411.Tubular{query}}
	var out v1411.Tubulars
	if err := c.getFromStore(ctx, witsgo.TypeTubular, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWbGeometries queries the store for wbGeometrys matching query.
func (c *Client) GetWbGeometries(ctx context.Context, query v1411.WbGeometry, ret witsgo.ReturnElements) (*v1411.WbGeometries, error) {
	q := v1411.WbGeometries{Version: v1411.Version, WbGeometry: []v1411.WbGeometry{query}}
	var out v1411.WbGeometries
	if err := c.getFromStore(ctx, witsgo.TypeWbGeometry, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWells queries the store for wells matching query.
func (c *Client) GetWells(ctx context.Context, query v1411.Well, ret witsgo.ReturnElements) (*v1411.Wells, error) {
	q := v1411.Wells{Version: v1411.Version, Well: []v1411.Well{query}}
	var out v1411.Wells
	if err := c.getFromStore(ctx, witsgo.TypeWell, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWellbores queries the store for wellbores matching query.
func (c *Client) GetWellbores(ctx context.Context, query v1411.Wellbore, ret witsgo.ReturnElements) (*v1411.Wellbores, error) {
	q := v1411.Wellbores{Version: v1411.Version, Wellbore: []v1411.Wellbore{query}}
	var out v1411.Wellbores
	if err := c.getFromStore(ctx, witsgo.TypeWellbore, q, ret, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVersion reports the comma separated data schema versions the store
// supports.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	var resp getVersionResponse
	if err := c.transport.Call(ctx, actionGetVersion, getVersionRequest{}, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// GetCap fetches the store's capabilities document for a data version.
func (c *Client) GetCap(ctx context.Context, dataVersion string) (string, error) {
	req := getCapRequest{OptionsIn: "dataVersion=" + dataVersion}
	var resp getCapResponse
	if err := c.transport.Call(ctx, actionGetCap, req, &resp); err != nil {
		return "", err
	}
	if resp.Result != witsgo.ResultSuccess {
		return "", &witsgo.StoreError{Code: resp.Result, Message: resp.SuppMsgOut}
	}
	return resp.CapabilitiesOut, nil
}

// GetBaseMsg resolves the fixed message text for a result code.
func (c *Client) GetBaseMsg(ctx context.Context, code int16) (string, error) {
	var resp getBaseMsgResponse
	if err := c.transport.Call(ctx, actionGetBaseMsg, getBaseMsgRequest{ReturnValueIn: code}, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// AddToStore writes the objects in collection to the store. Unlike retrieval
// only result 1 is success. The returned string is the store's supplementary
// message, which some stores use to echo generated uids.
func (c *Client) AddToStore(ctx context.Context, typ witsgo.ObjectType, collection interface{}) (string, error) {
	xmlIn, err := xml.Marshal(collection)
	if err != nil {
		return "", fmt.Errorf("encode %s collection: %w", typ, err)
	}
	req := addToStoreRequest{WMLtypeIn: typ.String(), XMLin: string(xmlIn)}
	var resp addToStoreResponse
	if err := c.transport.Call(ctx, actionAddToStore, req, &resp); err != nil {
		return "", err
	}
	if resp.Result != witsgo.ResultSuccess {
		return "", &witsgo.StoreError{Code: resp.Result, Message: resp.SuppMsgOut}
	}
	return resp.SuppMsgOut, nil
}

// UpdateInStore updates existing objects; the collection must identify each
// object by uid.
func (c *Client) UpdateInStore(ctx context.Context, typ witsgo.ObjectType, collection interface{}) error {
	xmlIn, err := xml.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", typ, err)
	}
	req := updateInStoreRequest{WMLtypeIn: typ.String(), XMLin: string(xmlIn)}
	var resp updateInStoreResponse
	if err := c.transport.Call(ctx, actionUpdateInStore, req, &resp); err != nil {
		return err
	}
	if resp.Result != witsgo.ResultSuccess {
		return &witsgo.StoreError{Code: resp.Result, Message: resp.SuppMsgOut}
	}
	return nil
}

// DeleteFromStore removes the objects matched by the query collection.
func (c *Client) DeleteFromStore(ctx context.Context, typ witsgo.ObjectType, query interface{}) error {
	queryIn, err := xml.Marshal(query)
	if err != nil {
		return fmt.Errorf("encode %s query: %w", typ, err)
	}
	req := deleteFromStoreRequest{WMLtypeIn: typ.String(), QueryIn: string(queryIn)}
	var resp deleteFromStoreResponse
	if err := c.transport.Call(ctx, actionDeleteFromStore, req, &resp); err != nil {
		return err
	}
	if resp.Result != witsgo.ResultSuccess {
		return &witsgo.StoreError{Code: resp.Result, Message: resp.SuppMsgOut}
	}
	return nil
}
