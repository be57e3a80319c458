// Package taxonomy holds the MIL-HDBK-217F classification of parts: the ten
// categories, their subcategories, the fourteen operating environments and
// the severity class each environment falls into for derating.
package taxonomy

import (
	"fmt"

	"hazard217/internal/errs"
)

// Category identifies a part category.
type Category int

const (
	IntegratedCircuit Category = iota + 1
	Semiconductor
	Resistor
	Capacitor
	Inductor
	Relay
	Switch
	Connection
	Meter
	Miscellaneous
)

var categoryNames = map[Category]string{
	IntegratedCircuit: "integrated circuit",
	Semiconductor:     "semiconductor",
	Resistor:          "resistor",
	Capacitor:         "capacitor",
	Inductor:          "inductive device",
	Relay:             "relay",
	Switch:            "switch",
	Connection:        "connection",
	Meter:             "meter",
	Miscellaneous:     "miscellaneous",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid reports whether c is one of the ten categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Categories lists every category in id order.
func Categories() []Category {
	return []Category{
		IntegratedCircuit, Semiconductor, Resistor, Capacitor, Inductor,
		Relay, Switch, Connection, Meter, Miscellaneous,
	}
}

// Method selects the prediction method.
type Method int

const (
	PartsCount Method = iota + 1
	PartsStress
)

func (m Method) String() string {
	switch m {
	case PartsCount:
		return "parts count"
	case PartsStress:
		return "parts stress"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// HazardRateType selects where a component's active hazard rate comes from.
type HazardRateType int

const (
	Assessed HazardRateType = iota + 1
	SpecifiedHazardRate
	SpecifiedMTBF
)

// Subcategory names per category, keyed by subcategory id.
var subcategories = map[Category]map[int]string{
	IntegratedCircuit: {
		1: "linear", 2: "logic", 3: "PAL/PLA", 4: "microprocessor",
		5: "memory, ROM", 6: "memory, EEPROM", 7: "memory, DRAM",
		8: "memory, SRAM", 9: "GaAs", 10: "VHSIC/VLSI",
	},
	Semiconductor: {
		1: "diode, low frequency", 2: "diode, high frequency",
		3: "transistor, low frequency, bipolar", 4: "transistor, low frequency, Si FET",
		5: "transistor, unijunction", 6: "transistor, high frequency, low noise, bipolar",
		7: "transistor, high frequency, high power, bipolar", 8: "transistor, high frequency, GaAs FET",
		9: "transistor, high frequency, Si FET", 10: "thyristor/SCR",
		11: "optoelectronic, detector/isolator/emitter", 12: "optoelectronic, alphanumeric display",
		13: "optoelectronic, laser diode",
	},
	Resistor: {
		1: "fixed, composition", 2: "fixed, film", 3: "fixed, film, power",
		4: "fixed, film, network", 5: "fixed, wirewound", 6: "fixed, wirewound, power",
		7: "fixed, wirewound, power, chassis mounted", 8: "thermistor",
		9: "variable, wirewound", 10: "variable, wirewound, precision",
		11: "variable, wirewound, semiprecision", 12: "variable, wirewound, power",
		13: "variable, non-wirewound", 14: "variable, composition",
		15: "variable, non-wirewound, film and precision",
	},
	Capacitor: {
		1: "fixed, paper, bypass", 2: "fixed, feed-through", 3: "fixed, paper and plastic film",
		4: "fixed, metallized paper", 5: "fixed, plastic and metallized plastic",
		6: "fixed, super-metallized plastic", 7: "fixed, mica", 8: "fixed, mica, button",
		9: "fixed, glass", 10: "fixed, ceramic, general purpose", 11: "fixed, ceramic, temperature compensating",
		12: "fixed, tantalum, solid", 13: "fixed, tantalum, non-solid", 14: "fixed, aluminum oxide",
		15: "fixed, aluminum, dry", 16: "variable, ceramic", 17: "variable, piston",
		18: "variable, air trimmer", 19: "variable, vacuum",
	},
	Inductor:   {1: "transformer", 2: "coil"},
	Relay:      {1: "mechanical", 2: "solid state and time delay"},
	Switch:     {1: "toggle or pushbutton", 2: "sensitive", 3: "rotary", 4: "thumbwheel", 5: "circuit breaker"},
	Connection: {1: "circular/rack and panel", 2: "PCB edge", 3: "IC socket", 4: "plated through hole", 5: "non-plated through hole"},
	Meter:      {1: "elapsed time", 2: "panel"},
	Miscellaneous: {
		1: "crystal", 2: "filter", 3: "fuse", 4: "lamp",
	},
}

// SubcategoryName returns the descriptive name of a subcategory.
func SubcategoryName(c Category, sub int) (string, error) {
	name, ok := subcategories[c][sub]
	if !ok {
		return "", errs.MissingKey(c.String()+" subcategory", sub)
	}
	return name, nil
}

// ValidSubcategory reports whether sub exists within category c.
func ValidSubcategory(c Category, sub int) bool {
	_, ok := subcategories[c][sub]
	return ok
}
