package mirror

import (
	"context"
	"database/sql/driver"
	"encoding/xml"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rigstream/witsgo"
	"github.com/rigstream/witsgo/bindings/v1411"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infow(string, ...interface{})  {}
func (nopLogger) Warnw(string, ...interface{})  {}
func (nopLogger) Errorw(string, ...interface{}) {}

// stubSource replays canned log responses and records every query it saw.
type stubSource struct {
	queries []v1411.Log
	replies []*v1411.Logs
}

func (s *stubSource) GetLogs(_ context.Context, query v1411.Log, _ witsgo.ReturnElements) (*v1411.Logs, error) {
	s.queries = append(s.queries, query)
	if len(s.replies) == 0 {
		return &v1411.Logs{}, nil
	}
	next := s.replies[0]
	s.replies = s.replies[1:]
	return next, nil
}

func dataReply(rows ...string) *v1411.Logs {
	return &v1411.Logs{Log: []v1411.Log{{
		Uid: "L-1",
		LogData: &v1411.LogData{
			MnemonicList: "DEPT,GR",
			UnitList:     "m,gAPI",
			Data:         rows,
		},
	}}}
}

const insertDeptGr = "INSERT INTO log_rows (dept, gr) VALUES (?,?)"

func newTestMirror(t *testing.T, source LogSource, cfg Config) (*Mirror, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	if cfg.UidLog == "" {
		cfg.UidLog = "L-1"
	}
	if cfg.Table == "" {
		cfg.Table = "log_rows"
	}
	cfg.Logger = nopLogger{}

	m, err := New(source, db, cfg)
	require.NoError(t, err)
	return m, mock
}

func expectPublish(mock sqlmock.Sqlmock, rows ...[]driver.Value) {
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta(insertDeptGr))
	for _, args := range rows {
		prep.ExpectExec().WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
}

func TestTickPublishesIncrement(t *testing.T) {
	source := &stubSource{replies: []*v1411.Logs{
		dataReply("100,87.2", "100.1,88"),
		dataReply("100.2,89.5"),
	}}
	m, mock := newTestMirror(t, source, Config{UidWell: "W-1", UidWellbore: "WB-1"})

	expectPublish(mock,
		[]driver.Value{100.0, 87.2},
		[]driver.Value{100.1, 88.0},
	)
	m.tick(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())

	expectPublish(mock, []driver.Value{100.2, 89.5})
	m.tick(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())

	// The first pull is unbounded, the second starts at the last mirrored
	// index and carries the index curve's unit.
	require.Len(t, source.queries, 2)
	assert.Nil(t, source.queries[0].StartIndex)
	require.NotNil(t, source.queries[1].StartIndex)
	assert.Equal(t, 100.1, source.queries[1].StartIndex.Value)
	assert.Equal(t, "m", source.queries[1].StartIndex.Uom)
	assert.Equal(t, "W-1", source.queries[1].UidWell)
	assert.Equal(t, "L-1", source.queries[1].Uid)

	// On the wire startIndex is a measure, so the uom attribute must be
	// present for the query to pass schema validation.
	data, err := xml.Marshal(source.queries[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), `<startIndex uom="m">100.1</startIndex>`)
}

func TestTickFullRefetchKeepsQueryOpen(t *testing.T) {
	source := &stubSource{replies: []*v1411.Logs{
		dataReply("100,87.2"),
		dataReply("100,87.2"),
	}}
	m, mock := newTestMirror(t, source, Config{FullRefetch: true})

	expectPublish(mock, []driver.Value{100.0, 87.2})
	m.tick(context.Background())
	expectPublish(mock, []driver.Value{100.0, 87.2})
	m.tick(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, source.queries, 2)
	assert.Nil(t, source.queries[1].StartIndex)
}

func TestDeliverFallsBackToBufferAndReplays(t *testing.T) {
	source := &stubSource{replies: []*v1411.Logs{
		dataReply("100,87.2", "100.1,88"),
	}}
	m, mock := newTestMirror(t, source, Config{})

	mock.ExpectBegin().WillReturnError(assert.AnError)
	m.tick(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 2, m.buffer.Len())

	// Next tick replays the buffered rows before pulling again.
	expectPublish(mock,
		[]driver.Value{100.0, 87.2},
		[]driver.Value{100.1, 88.0},
	)
	m.tick(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, m.buffer.Len())
}

func TestDeliverFallsBackToSpool(t *testing.T) {
	source := &stubSource{replies: []*v1411.Logs{
		dataReply("100,87.2"),
	}}
	m, mock := newTestMirror(t, source, Config{
		SpoolPath: t.TempDir() + "/mirror.spool",
	})

	mock.ExpectBegin().WillReturnError(assert.AnError)
	m.tick(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, m.buffer.Len())
	assert.Equal(t, 1, m.spool.Len())

	expectPublish(mock, []driver.Value{100.0, 87.2})
	m.tick(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, m.spool.Len())
}

func TestRunStopIsIdempotent(t *testing.T) {
	source := &stubSource{}
	m, mock := newTestMirror(t, source, Config{})

	m.Run()
	m.Stop(false)
	m.Stop(false)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStopBeforeRunReturns(t *testing.T) {
	m, _ := newTestMirror(t, &stubSource{}, Config{})

	// No loop goroutine is receiving yet; Stop must not block on it.
	m.Stop(false)
}

func TestStopReleasesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, _ := newTestMirror(t, &stubSource{}, Config{Registry: reg})

	m.Run()
	m.Stop(false)

	// The stopped mirror's collectors are gone, so a fresh set registers
	// without a duplicate-collector panic.
	require.NotPanics(t, func() { NewMetrics(reg) })
}

func TestNewValidatesConfig(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = New(&stubSource{}, db, Config{Table: "log_rows", Logger: nopLogger{}})
	assert.EqualError(t, err, "mirror: log uid is required")

	_, err = New(&stubSource{}, db, Config{UidLog: "L-1", Logger: nopLogger{}})
	assert.EqualError(t, err, "mirror: sink table is required")
}

func TestInsertQuery(t *testing.T) {
	got := insertQuery("log_rows", []string{"DEPT", "GR", "ROP(avg)"})
	assert.Equal(t, "INSERT INTO log_rows (dept, gr, rop_avg) VALUES (?,?,?)", got)

	// A mnemonic with nothing to keep falls back to a positional name.
	got = insertQuery("log_rows", []string{"DEPT", "%"})
	assert.Equal(t, "INSERT INTO log_rows (dept, col1) VALUES (?,?)", got)
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "dept", columnName("DEPT"))
	assert.Equal(t, "rop_avg", columnName("ROP(avg)"))
	assert.Equal(t, "hkld", columnName("_HKLD_"))
}
