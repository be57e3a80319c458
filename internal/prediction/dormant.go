package prediction

import (
	"hazard217/internal/component"
	"hazard217/internal/taxonomy"
)

// Active to dormant conversion factors. Columns pair the active environment
// group with the dormant environment: ground/ground, airborne/airborne,
// airborne/ground, naval/naval, naval/ground, space/space, space/ground.
var dormantFactors = map[dormantClass][7]float64{
	dormantIC:         {0.08, 0.06, 0.04, 0.06, 0.05, 0.10, 0.30},
	dormantDiode:      {0.04, 0.05, 0.01, 0.04, 0.03, 0.20, 0.80},
	dormantTransistor: {0.05, 0.06, 0.02, 0.05, 0.03, 0.20, 1.00},
	dormantCapacitor:  {0.10, 0.10, 0.03, 0.10, 0.04, 0.20, 0.40},
	dormantResistor:   {0.20, 0.06, 0.03, 0.10, 0.06, 0.50, 1.00},
	dormantSwitch:     {0.40, 0.20, 0.10, 0.40, 0.20, 0.80, 1.00},
	dormantRelay:      {0.20, 0.20, 0.04, 0.30, 0.08, 0.40, 0.90},
	dormantConnector:  {0.005, 0.005, 0.003, 0.008, 0.003, 0.02, 0.03},
	dormantBoard:      {0.04, 0.02, 0.01, 0.03, 0.01, 0.08, 0.20},
	dormantInductor:   {0.20, 0.20, 0.20, 0.30, 0.30, 0.50, 1.00},
}

type dormantClass int

const (
	dormantIC dormantClass = iota + 1
	dormantDiode
	dormantTransistor
	dormantCapacitor
	dormantResistor
	dormantSwitch
	dormantRelay
	dormantConnector
	dormantBoard
	dormantInductor
)

func dormantClassOf(c component.Component) (dormantClass, bool) {
	switch c.Category {
	case taxonomy.IntegratedCircuit:
		return dormantIC, true
	case taxonomy.Semiconductor:
		switch {
		case c.Subcategory <= 2:
			return dormantDiode, true
		case c.Subcategory <= 9:
			return dormantTransistor, true
		}
	case taxonomy.Resistor:
		return dormantResistor, true
	case taxonomy.Capacitor:
		return dormantCapacitor, true
	case taxonomy.Inductor:
		return dormantInductor, true
	case taxonomy.Relay:
		return dormantRelay, true
	case taxonomy.Switch:
		return dormantSwitch, true
	case taxonomy.Connection:
		if c.Subcategory == 4 {
			return dormantBoard, true
		}
		return dormantConnector, true
	}
	return 0, false
}

func dormantColumn(active taxonomy.Environment, dormant taxonomy.DormantEnvironment) (int, bool) {
	switch active.Group() {
	case taxonomy.GroupGround:
		if dormant == taxonomy.DormantGround {
			return 0, true
		}
	case taxonomy.GroupAirborne:
		switch dormant {
		case taxonomy.DormantAirborne:
			return 1, true
		case taxonomy.DormantGround:
			return 2, true
		}
	case taxonomy.GroupNaval:
		switch dormant {
		case taxonomy.DormantNaval:
			return 3, true
		case taxonomy.DormantGround:
			return 4, true
		}
	case taxonomy.GroupSpace:
		switch dormant {
		case taxonomy.DormantSpace:
			return 5, true
		case taxonomy.DormantGround:
			return 6, true
		}
	}
	return 0, false
}

// DormantFactor returns the multiplier that converts c's active hazard
// rate into its dormant hazard rate. ok is false when no conversion is
// published for the part type or the environment pair.
func DormantFactor(c component.Component) (factor float64, ok bool) {
	class, ok := dormantClassOf(c)
	if !ok {
		return 0, false
	}
	col, ok := dormantColumn(c.EnvironmentActive, c.EnvironmentDormant)
	if !ok {
		return 0, false
	}
	return dormantFactors[class][col], true
}
