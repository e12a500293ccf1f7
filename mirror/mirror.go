// Package mirror drains a growing WITSML log into a ClickHouse table: each
// tick pulls the data block past the last mirrored index, decodes the curve
// rows and batch-inserts them through database/sql. Rows that cannot be
// published wait in memory, or in an on-disk spool when one is configured,
// and are retried before the next pull.
package mirror

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rigstream/witsgo"
	"github.com/rigstream/witsgo/bindings/v1411"
	"github.com/rigstream/witsgo/store"
)

// LogSource is the slice of the store client the mirror needs.
type LogSource interface {
	GetLogs(ctx context.Context, query v1411.Log, ret witsgo.ReturnElements) (*v1411.Logs, error)
}

// Row is one decoded curve row bound to the insert statement it belongs to.
// Raw string values are kept so rows survive a json round trip through the
// spool.
type Row struct {
	Query string   `json:"query"`
	Args  []string `json:"args"`
}

func (r Row) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Row) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}

func (r Row) exec() []interface{} {
	args := make([]interface{}, len(r.Args))
	for i, a := range r.Args {
		if v, err := strconv.ParseFloat(a, 64); err == nil {
			args[i] = v
		} else {
			args[i] = a
		}
	}
	return args
}

func New(source LogSource, connect *sql.DB, config ...Config) (*Mirror, error) {
	// Set default config
	cfg := configDefault(config...)

	if cfg.UidLog == "" {
		return nil, errors.New("mirror: log uid is required")
	}
	if cfg.Table == "" {
		return nil, errors.New("mirror: sink table is required")
	}

	logger := cfg.Logger
	if logger == nil {
		var err error
		logger, err = store.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	m := &Mirror{
		cfg:     cfg,
		logger:  logger,
		source:  source,
		connect: connect,
		buffer:  newBuffer(),
		metrics: NewMetrics(cfg.Registry),
		stopSig: make(chan bool),
	}

	if cfg.SpoolPath != "" {
		spool, err := OpenSpool(cfg.SpoolPath)
		if err != nil {
			return nil, err
		}
		m.spool = spool
	}

	return m, nil
}

type Mirror struct {
	cfg Config

	logger store.Logger

	source  LogSource
	connect *sql.DB
	buffer  *buffer
	spool   *Spool
	metrics *Metrics

	stopSig  chan bool
	started  int32
	shutdown int32

	lastIndex float64
	indexUom  string
	hasLast   bool
}

// Run starts the mirror loop in its own goroutine. A second Run is a no-op.
func (m *Mirror) Run() {
	if !atomic.CompareAndSwapInt32(&m.started, 0, 1) {
		return
	}

	t := time.NewTicker(m.cfg.Interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-t.C:
				m.tick(context.Background())
			case flush := <-m.stopSig:
				if flush {
					m.tick(context.Background())
				}
				m.drain()
				close(m.stopSig)
				return
			}
		}
	}()
}

// Stop ends the loop. With flush the mirror performs one last pull and
// publish first; either way unsent rows are moved to the spool. Stop before
// Run and a second Stop are no-ops.
func (m *Mirror) Stop(flush bool) {
	if atomic.LoadInt32(&m.started) == 0 {
		return
	}
	if !atomic.CompareAndSwapInt32(&m.shutdown, 0, 1) {
		return
	}
	m.stopSig <- flush
	<-m.stopSig
}

// tick retries held back rows, then pulls and publishes the next increment.
func (m *Mirror) tick(ctx context.Context) {
	m.deliver(m.replay())

	rows, err := m.fetch(ctx)
	if err != nil {
		m.logger.Warnw("problem pulling log data from the store", "error", err)
		m.metrics.FetchErrors.WithLabelValues(m.cfg.Table).Inc()
		return
	}
	m.deliver(rows)
}

// replay collects rows held back by earlier failures, memory first, then the
// spool up to the batch limit.
func (m *Mirror) replay() []Row {
	rows := m.buffer.Eject(m.cfg.BatchLimit)

	if m.spool != nil && len(rows) < m.cfg.BatchLimit {
		frames, err := m.spool.Eject(m.cfg.BatchLimit - len(rows))
		if err != nil {
			m.logger.Warnw("problem ejecting rows from the spool", "error", err)
		}
		for _, frame := range frames {
			var r Row
			if err := r.UnmarshalBinary(frame); err != nil {
				m.logger.Warnw("dropping undecodable spooled row", "error", err)
				continue
			}
			rows = append(rows, r)
		}
	}

	return rows
}

// fetch pulls the next data increment and binds each row to its insert
// statement.
func (m *Mirror) fetch(ctx context.Context) ([]Row, error) {
	query := v1411.Log{
		UidWell:     m.cfg.UidWell,
		UidWellbore: m.cfg.UidWellbore,
		Uid:         m.cfg.UidLog,
	}
	if !m.cfg.FullRefetch && m.hasLast {
		// startIndex is a measure in the schema, so the index curve's unit
		// must go along or a validating store rejects the query.
		query.StartIndex = &v1411.Measure{Uom: m.indexUom, Value: m.lastIndex}
	}

	logs, err := m.source.GetLogs(ctx, query, witsgo.ReturnDataOnly)
	if err != nil {
		return nil, err
	}
	if len(logs.Log) == 0 || logs.Log[0].LogData == nil || len(logs.Log[0].LogData.Data) == 0 {
		return nil, nil
	}

	curves, err := logs.Log[0].Curves()
	if err != nil {
		return nil, err
	}

	insert := insertQuery(m.cfg.Table, curves.Mnemonics)
	rows := make([]Row, 0, len(curves.Rows))
	for _, args := range curves.Rows {
		rows = append(rows, Row{Query: insert, Args: args})
	}

	if !m.cfg.FullRefetch {
		last := curves.Rows[len(curves.Rows)-1]
		if v, err := strconv.ParseFloat(strings.TrimSpace(last[0]), 64); err == nil {
			m.lastIndex = v
			if len(curves.Units) > 0 {
				m.indexUom = curves.Units[0]
			}
			m.hasLast = true
		} else {
			m.logger.Warnw("index value is not numeric, next pull repeats this range",
				"value", last[0],
			)
		}
	}

	return rows, nil
}

// deliver publishes rows grouped by statement, falling back to buffer or
// spool on failure.
func (m *Mirror) deliver(rows []Row) {
	if len(rows) == 0 {
		return
	}

	groups := map[string][]Row{}
	for _, r := range rows {
		groups[r.Query] = append(groups[r.Query], r)
	}

	for query, grouped := range groups {
		args := make([][]interface{}, len(grouped))
		for i, r := range grouped {
			args[i] = r.exec()
		}

		if err := m.publish(query, args); err != nil {
			m.logger.Warnw("publication ended with an error", "error", err)
			m.metrics.Batches.WithLabelValues(m.cfg.Table, "error").Inc()
			m.fallback(grouped)
			continue
		}

		m.metrics.Batches.WithLabelValues(m.cfg.Table, "ok").Inc()
		m.metrics.RowsMirrored.WithLabelValues(m.cfg.Table).Add(float64(len(grouped)))
	}

	m.metrics.BufferedRows.WithLabelValues(m.cfg.Table).Set(float64(m.buffer.Len()))
	if m.spool != nil {
		m.metrics.SpooledRows.WithLabelValues(m.cfg.Table).Set(float64(m.spool.Len()))
	}
}

func (m *Mirror) publish(query string, rows [][]interface{}) error {
	panicked := true
	tx, err := m.connect.Begin()
	if err != nil {
		return err
	}
	defer func() {
		// Make sure to rollback when panic, Block error or Commit error
		if panicked || err != nil {
			if err := tx.Rollback(); err != nil {
				m.logger.Errorw("problem when rolling back a transaction", "error", err)
			}
		}
	}()

	err = func() error {
		stmt, err := tx.Prepare(query)
		if err != nil {
			return err
		}

		for _, args := range rows {
			if _, err := stmt.Exec(args...); err != nil {
				return err
			}
		}

		return stmt.Close()
	}()

	if err == nil {
		err = tx.Commit()
	}

	panicked = false

	return err
}

func (m *Mirror) fallback(rows []Row) {
	if m.spool == nil {
		m.buffer.Append(rows)
		return
	}

	for i, r := range rows {
		frame, err := r.MarshalBinary()
		if err == nil {
			err = m.spool.Push(frame)
		}
		if err != nil {
			m.logger.Warnw("error when spooling rows, keeping them in memory", "error", err)
			m.buffer.Append(rows[i:])
			return
		}
	}
}

// drain moves everything still in memory to the spool before the loop exits
// and releases the mirror's collectors from the registry.
func (m *Mirror) drain() {
	defer m.metrics.Disable(m.cfg.Registry)

	rows := m.buffer.Eject(-1)

	if m.spool == nil {
		if len(rows) > 0 {
			m.logger.Errorw("data lost! no spool configured for unsent rows",
				"lost", len(rows),
			)
		}
		return
	}

	for i, r := range rows {
		frame, err := r.MarshalBinary()
		if err == nil {
			err = m.spool.Push(frame)
		}
		if err != nil {
			m.logger.Errorw("data lost! fatal error writing to spool when stopping mirror",
				"error", err,
				"lost", len(rows)-i,
			)
			break
		}
	}

	if err := m.spool.Close(); err != nil {
		m.logger.Errorw("problem closing the spool", "error", err)
	}
}

// insertQuery builds the insert statement for one mnemonic list. A mnemonic
// with no alphanumerics at all gets a positional column name.
func insertQuery(table string, mnemonics []string) string {
	cols := make([]string, len(mnemonics))
	for i, mnemonic := range mnemonics {
		cols[i] = columnName(mnemonic)
		if cols[i] == "" {
			cols[i] = fmt.Sprintf("col%d", i)
		}
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), placeholders)
}

// columnName lowers a mnemonic and squashes anything outside [a-z0-9] to an
// underscore, so ROP(avg) and rop_avg land in the same column.
func columnName(mnemonic string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(mnemonic) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
