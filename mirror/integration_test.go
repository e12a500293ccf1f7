//go:build integration
// +build integration

package mirror_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/ClickHouse/clickhouse-go"
	"github.com/rigstream/witsgo"
	"github.com/rigstream/witsgo/bindings/v1411"
	"github.com/rigstream/witsgo/mirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// growingLog hands out a fresh slice of rows on every pull, honoring the
// startIndex the mirror asks for.
type growingLog struct {
	rows  []string
	index []float64
}

func (g *growingLog) GetLogs(_ context.Context, query v1411.Log, _ witsgo.ReturnElements) (*v1411.Logs, error) {
	from := 0
	if query.StartIndex != nil {
		for i, idx := range g.index {
			if idx > query.StartIndex.Value {
				from = i
				break
			}
			from = i + 1
		}
	}
	return &v1411.Logs{Log: []v1411.Log{{
		Uid: query.Uid,
		LogData: &v1411.LogData{
			MnemonicList: "DEPT,GR",
			UnitList:     "m,gAPI",
			Data:         g.rows[from:],
		},
	}}}, nil
}

func TestMirrorInRealDatabase(t *testing.T) {
	dsn := os.Getenv("WITSGO_CLICKHOUSE_DSN")
	if dsn == "" {
		t.Skip("WITSGO_CLICKHOUSE_DSN not set")
	}

	conn, err := sql.Open("clickhouse", dsn)
	require.NoError(t, err)
	defer conn.Close()

	table := fmt.Sprintf("witsgo_it_%d", time.Now().Unix())
	_, err = conn.Exec(fmt.Sprintf(
		"CREATE TABLE %s (dept Float64, gr Float64) ENGINE = Memory", table))
	require.NoError(t, err)
	defer conn.Exec("DROP TABLE IF EXISTS " + table)

	source := &growingLog{
		rows:  []string{"100,87.2", "100.1,88", "100.2,89.5", "100.3,90.1"},
		index: []float64{100, 100.1, 100.2, 100.3},
	}

	m, err := mirror.New(source, conn, mirror.Config{
		UidLog:    "L-1",
		Table:     table,
		Interval:  200 * time.Millisecond,
		SpoolPath: filepath.Join(t.TempDir(), "rows.spool"),
	})
	require.NoError(t, err)

	m.Run()
	time.Sleep(time.Second)
	m.Stop(true)

	var count int
	err = conn.QueryRow("SELECT count(1) FROM " + table).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
