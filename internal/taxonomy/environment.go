package taxonomy

import (
	"fmt"

	"hazard217/internal/errs"
)

// NumEnvironments is the number of MIL-HDBK-217F active environments.
const NumEnvironments = 14

// Environment is an active operating environment, numbered 1..14.
type Environment int

const (
	GroundBenign Environment = iota + 1
	GroundFixed
	GroundMobile
	NavalSheltered
	NavalUnsheltered
	AirborneInhabitedCargo
	AirborneInhabitedFighter
	AirborneUninhabitedCargo
	AirborneUninhabitedFighter
	AirborneRotaryWinged
	SpaceFlight
	MissileFlight
	MissileLaunch
	CannonLaunch
)

var environmentCodes = [NumEnvironments]string{
	"GB", "GF", "GM", "NS", "NU", "AIC", "AIF", "AUC", "AUF", "ARW", "SF", "MF", "ML", "CL",
}

// Index converts the 1-based environment into a table column.
func (e Environment) Index() (int, error) {
	if e < 1 || e > NumEnvironments {
		return 0, errs.OutOfRange("environment_active_id", float64(e), 1, NumEnvironments)
	}
	return int(e) - 1, nil
}

// Code returns the handbook abbreviation (GB, GF, ...).
func (e Environment) Code() string {
	if i, err := e.Index(); err == nil {
		return environmentCodes[i]
	}
	return fmt.Sprintf("env(%d)", int(e))
}

func (e Environment) String() string { return e.Code() }

// DormantEnvironment is the storage environment of a dormant part.
type DormantEnvironment int

const (
	DormantAirborne DormantEnvironment = iota + 1
	DormantGround
	DormantNaval
	DormantSpace
)

// EnvironmentGroup coarsens an active environment for dormancy conversion.
type EnvironmentGroup int

const (
	GroupGround EnvironmentGroup = iota + 1
	GroupNaval
	GroupAirborne
	GroupSpace
	GroupMissile
)

// Group returns the coarse group of an active environment.
func (e Environment) Group() EnvironmentGroup {
	switch {
	case e >= GroundBenign && e <= GroundMobile:
		return GroupGround
	case e == NavalSheltered || e == NavalUnsheltered:
		return GroupNaval
	case e >= AirborneInhabitedCargo && e <= AirborneRotaryWinged:
		return GroupAirborne
	case e == SpaceFlight:
		return GroupSpace
	default:
		return GroupMissile
	}
}

// SeverityClass is the derating class an environment falls into.
type SeverityClass int

const (
	Protected SeverityClass = iota + 1
	Normal
	Severe
)

func (s SeverityClass) String() string {
	switch s {
	case Protected:
		return "protected"
	case Normal:
		return "normal"
	case Severe:
		return "severe"
	default:
		return "unknown"
	}
}

// ParseSeverityClass maps a class name back to its value.
func ParseSeverityClass(s string) (SeverityClass, error) {
	switch s {
	case "protected":
		return Protected, nil
	case "normal":
		return Normal, nil
	case "severe":
		return Severe, nil
	}
	return 0, errs.MissingKey("severity class", s)
}

// SeverityMap assigns a severity class to each active environment.
type SeverityMap map[Environment]SeverityClass

// DefaultSeverity puts ground benign and space flight in the protected
// class, the fixed, sheltered and inhabited environments in the normal
// class and everything else in the severe class.
func DefaultSeverity() SeverityMap {
	m := make(SeverityMap, NumEnvironments)
	for e := GroundBenign; e <= CannonLaunch; e++ {
		m[e] = Severe
	}
	for _, e := range []Environment{GroundBenign, SpaceFlight} {
		m[e] = Protected
	}
	for _, e := range []Environment{GroundFixed, NavalSheltered, AirborneInhabitedCargo, AirborneInhabitedFighter} {
		m[e] = Normal
	}
	return m
}

// Classify returns the severity class of e.
func (m SeverityMap) Classify(e Environment) (SeverityClass, error) {
	if _, err := e.Index(); err != nil {
		return 0, err
	}
	class, ok := m[e]
	if !ok {
		return 0, errs.MissingKey("severity map", e.Code())
	}
	return class, nil
}
