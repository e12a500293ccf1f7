package witsgo

// ObjectType is the WMLtypeIn discriminator naming the data-object a Store
// API call operates on.
type ObjectType string

const (
	TypeBhaRun          ObjectType = "bhaRun"
	TypeDrillReport     ObjectType = "drillReport"
	TypeFluidsReport    ObjectType = "fluidsReport"
	TypeFormationMarker ObjectType = "formationMarker"
	TypeLog             ObjectType = "log"
	TypeMudLog          ObjectType = "mudLog"
	TypeTrajectory      ObjectType = "trajectory"
	TypeTubular         ObjectType = "tubular"
	TypeWbGeometry      ObjectType = "wbGeometry"
	TypeWell            ObjectType = "well"
	TypeWellbore        ObjectType = "wellbore"
)

func (t ObjectType) String() string {
	return string(t)
}
