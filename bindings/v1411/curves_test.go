package v1411_test

import (
	"encoding/xml"
	"testing"

	"github.com/rigstream/witsgo/bindings/v1411"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurves(t *testing.T) {
	reply := `<logs xmlns="http://www.witsml.org/schemas/1series" version="1.4.1.1">
  <log uidWell="W-1" uidWellbore="WB-1" uid="L-1">
    <name>GR run 1</name>
    <indexCurve>DEPT</indexCurve>
    <logData>
      <mnemonicList>DEPT,GR,ROP</mnemonicList>
      <unitList>m,gAPI,m/h</unitList>
      <data>100,87.2,31.5</data>
      <data>100.1,88.0,30.9</data>
    </logData>
  </log>
</logs>`

	var logs v1411.Logs
	require.NoError(t, xml.Unmarshal([]byte(reply), &logs))
	require.Len(t, logs.Log, 1)

	curves, err := logs.Log[0].Curves()
	require.NoError(t, err)

	assert.Equal(t, []string{"DEPT", "GR", "ROP"}, curves.Mnemonics)
	assert.Equal(t, []string{"m", "gAPI", "m/h"}, curves.Units)
	require.Len(t, curves.Rows, 2)
	assert.Equal(t, []string{"100.1", "88.0", "30.9"}, curves.Rows[1])
}

func TestCurvesNoData(t *testing.T) {
	l := v1411.Log{Uid: "L-1"}
	_, err := l.Curves()
	assert.EqualError(t, err, "log has no logData")
}

func TestCurvesRaggedRow(t *testing.T) {
	l := v1411.Log{LogData: &v1411.LogData{
		MnemonicList: "DEPT,GR",
		UnitList:     "m,gAPI",
		Data:         []string{"100,87.2", "100.1"},
	}}
	_, err := l.Curves()
	assert.EqualError(t, err, "data row 1 has 1 values, want 2")
}
