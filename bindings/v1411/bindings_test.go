package v1411_test

import (
	"encoding/xml"
	"testing"

	"github.com/rigstream/witsgo/bindings/v1411"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyQueryMarshal(t *testing.T) {
	// An empty object wrapped in its collection is the id-only query for
	// everything the store has.
	data, err := xml.Marshal(v1411.Logs{Version: v1411.Version, Log: []v1411.Log{{}}})
	require.NoError(t, err)
	assert.Equal(t,
		`<logs xmlns="http://www.witsml.org/schemas/1series" version="1.4.1.1"><log></log></logs>`,
		string(data))
}

func TestQueryMarshalKeepsUids(t *testing.T) {
	q := v1411.Trajectories{Version: v1411.Version, Trajectory: []v1411.Trajectory{{
		UidWell:     "W-1",
		UidWellbore: "WB-1",
		Uid:         "T-1",
	}}}
	data, err := xml.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t,
		`<trajectorys xmlns="http://www.witsml.org/schemas/1series" version="1.4.1.1">`+
			`<trajectory uidWell="W-1" uidWellbore="WB-1" uid="T-1"></trajectory></trajectorys>`,
		string(data))
}

func TestMeasureRoundTrip(t *testing.T) {
	type holder struct {
		XMLName xml.Name       `xml:"holder"`
		Md      *v1411.Measure `xml:"md,omitempty"`
	}

	data, err := xml.Marshal(holder{Md: &v1411.Measure{Uom: "m", Value: 1503.25}})
	require.NoError(t, err)
	assert.Equal(t, `<holder><md uom="m">1503.25</md></holder>`, string(data))

	var h holder
	require.NoError(t, xml.Unmarshal(data, &h))
	require.NotNil(t, h.Md)
	assert.Equal(t, "m", h.Md.Uom)
	assert.Equal(t, 1503.25, h.Md.Value)
}

func TestMeasureUnmarshalEmptyValue(t *testing.T) {
	// Query replies echo requested elements as empty tags.
	var m v1411.Measure
	require.NoError(t, xml.Unmarshal([]byte(`<md uom="ft"></md>`), &m))
	assert.Equal(t, "ft", m.Uom)
	assert.Zero(t, m.Value)
}

func TestTrajectoryUnmarshal(t *testing.T) {
	reply := `<trajectorys xmlns="http://www.witsml.org/schemas/1series" version="1.4.1.1">
  <trajectory uidWell="W-1" uidWellbore="WB-1" uid="T-1">
    <nameWell>Varg</nameWell>
    <nameWellbore>Varg A-3</nameWellbore>
    <name>Survey run 2</name>
    <mdMn uom="m">0</mdMn>
    <mdMx uom="m">2143.6</mdMx>
    <aziRef>grid north</aziRef>
    <trajectoryStation uid="S-1">
      <typeTrajStation>tie in point</typeTrajStation>
      <md uom="m">0</md>
      <incl uom="dega">0</incl>
      <azi uom="dega">0</azi>
    </trajectoryStation>
    <trajectoryStation uid="S-2">
      <typeTrajStation>magnetic MWD</typeTrajStation>
      <md uom="m">527.4</md>
      <tvd uom="m">527.1</tvd>
      <incl uom="dega">1.9</incl>
      <azi uom="dega">243.8</azi>
      <dls uom="dega/30m">0.4</dls>
    </trajectoryStation>
  </trajectory>
</trajectorys>`

	var trajs v1411.Trajectories
	require.NoError(t, xml.Unmarshal([]byte(reply), &trajs))

	require.Len(t, trajs.Trajectory, 1)
	traj := trajs.Trajectory[0]
	assert.Equal(t, "T-1", traj.Uid)
	assert.Equal(t, "grid north", traj.AziRef)
	require.Len(t, traj.TrajectoryStation, 2)
	assert.Equal(t, 527.4, traj.TrajectoryStation[1].Md.Value)
	assert.Equal(t, "dega/30m", traj.TrajectoryStation[1].Dls.Uom)
	assert.Nil(t, traj.TrajectoryStation[0].Tvd)
}

func TestWellboreUnmarshalSkipsUnknownElements(t *testing.T) {
	reply := `<wellbores xmlns="http://www.witsml.org/schemas/1series" version="1.4.1.1">
  <wellbore uidWell="W-1" uid="WB-1">
    <nameWell>Varg</nameWell>
    <name>Varg A-3</name>
    <typeWellbore>initial</typeWellbore>
    <md uom="m">2143.6</md>
    <commonData>
      <dTimLastChange>2024-11-02T06:10:04.000Z</dTimLastChange>
      <itemState>actual</itemState>
    </commonData>
  </wellbore>
</wellbores>`

	var wbs v1411.Wellbores
	require.NoError(t, xml.Unmarshal([]byte(reply), &wbs))

	require.Len(t, wbs.Wellbore, 1)
	assert.Equal(t, "WB-1", wbs.Wellbore[0].Uid)
	assert.Equal(t, 2143.6, wbs.Wellbore[0].Md.Value)
	require.NotNil(t, wbs.Wellbore[0].CommonData)
	assert.Equal(t, "actual", wbs.Wellbore[0].CommonData.ItemState)
}
