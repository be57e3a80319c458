package component

import "hazard217/internal/taxonomy"

// Part is the category-specific half of a Component. The set of variants
// is closed; each one maps to exactly one category.
type Part interface {
	Category() taxonomy.Category
	sealed()
}

// IntegratedCircuit covers monolithic, memory, GaAs and VHSIC devices.
type IntegratedCircuit struct {
	Technology        int     `record:"technology_id"` // 1 bipolar, 2 MOS; GaAs: 1 MMIC, 2 digital
	Family            int     `record:"family_id"`
	Type              int     `record:"type_id"` // EEPROM error correction, VHSIC die type
	Application       int     `record:"application_id"`
	Package           int     `record:"package_id"`
	Construction      int     `record:"construction_id"`
	Manufacturing     int     `record:"manufacturing_id"`
	Elements          float64 `record:"n_elements"`
	Pins              float64 `record:"n_active_pins"`
	Cycles            float64 `record:"n_cycles"`
	YearsInProduction float64 `record:"years_in_production"`
	TemperatureCase   float64 `record:"temperature_case"`
	ThetaJC           float64 `record:"theta_jc"`
	FeatureSize       float64 `record:"feature_size"`
	Area              float64 `record:"area"`
	VoltageESD        float64 `record:"voltage_esd"`
}

// Semiconductor covers diodes, transistors, thyristors and optoelectronics.
type Semiconductor struct {
	Type            int     `record:"type_id"`
	Application     int     `record:"application_id"`
	Construction    int     `record:"construction_id"`
	Matching        int     `record:"matching_id"`
	Package         int     `record:"package_id"`
	ThetaJC         float64 `record:"theta_jc"`
	TemperatureCase float64 `record:"temperature_case"`
	Frequency       float64 `record:"frequency_operating"` // GHz
	Elements        float64 `record:"n_elements"`          // display characters
}

type Resistor struct {
	Specification int     `record:"specification_id"`
	Type          int     `record:"type_id"`
	Family        int     `record:"family_id"`
	Construction  int     `record:"construction_id"`
	Resistance    float64 `record:"resistance"` // ohms
	Elements      float64 `record:"n_elements"` // network resistors or potentiometer taps
}

type Capacitor struct {
	Specification int     `record:"specification_id"`
	Configuration int     `record:"configuration_id"`
	Construction  int     `record:"construction_id"`
	Capacitance   float64 `record:"capacitance"` // µF
	Resistance    float64 `record:"resistance"`  // effective series resistance, ohms
}

// Inductor covers transformers (1) and coils (2).
type Inductor struct {
	Family          int     `record:"family_id"`
	Insulation      int     `record:"insulation_id"`
	Construction    int     `record:"construction_id"`
	SpecSheetPage   int     `record:"page_number"`
	TemperatureRise float64 `record:"temperature_rise"`
	Area            float64 `record:"area"`   // in²
	Weight          float64 `record:"weight"` // lb
}

type Relay struct {
	Type          int     `record:"type_id"`
	LoadType      int     `record:"technology_id"` // 1 resistive, 2 inductive, 3 lamp
	ContactForm   int     `record:"contact_form_id"`
	ContactRating int     `record:"contact_rating_id"`
	Application   int     `record:"application_id"`
	Construction  int     `record:"construction_id"`
	CyclesPerHour float64 `record:"n_cycles"`
}

type Switch struct {
	ContactForm   int     `record:"contact_form_id"`
	LoadType      int     `record:"application_id"` // 1 resistive, 2 inductive, 3 lamp
	Construction  int     `record:"construction_id"`
	PowerSwitch   int     `record:"power_switch"` // breaker used as on/off switch when 1
	CyclesPerHour float64 `record:"n_cycles"`
	Contacts      float64 `record:"n_elements"`
}

type Connection struct {
	Type         int     `record:"type_id"`
	Insert       int     `record:"insert_id"` // insert material class A..D as 1..4
	Gauge        int     `record:"contact_gauge"`
	ActivePins   float64 `record:"n_active_pins"`
	MatingCycles float64 `record:"n_cycles"` // per 1000 hours
	Layers       float64 `record:"n_circuit_planes"`
	WaveSoldered float64 `record:"n_wave_soldered"`
	HandSoldered float64 `record:"n_hand_soldered"`
}

type Meter struct {
	Type        int `record:"type_id"`
	Application int `record:"application_id"` // panel meters: 1 DC, 2 AC
	Function    int `record:"function_id"`    // 1 ammeter, 2 voltmeter, 3 other
}

// Miscellaneous covers crystals (1), filters (2), fuses (3) and lamps (4).
type Miscellaneous struct {
	Type        int     `record:"type_id"`
	Application int     `record:"application_id"` // lamps: 1 AC, 2 DC
	Frequency   float64 `record:"frequency_operating"` // MHz
}

func (*IntegratedCircuit) Category() taxonomy.Category { return taxonomy.IntegratedCircuit }
func (*Semiconductor) Category() taxonomy.Category     { return taxonomy.Semiconductor }
func (*Resistor) Category() taxonomy.Category          { return taxonomy.Resistor }
func (*Capacitor) Category() taxonomy.Category         { return taxonomy.Capacitor }
func (*Inductor) Category() taxonomy.Category          { return taxonomy.Inductor }
func (*Relay) Category() taxonomy.Category             { return taxonomy.Relay }
func (*Switch) Category() taxonomy.Category            { return taxonomy.Switch }
func (*Connection) Category() taxonomy.Category        { return taxonomy.Connection }
func (*Meter) Category() taxonomy.Category             { return taxonomy.Meter }
func (*Miscellaneous) Category() taxonomy.Category     { return taxonomy.Miscellaneous }

func (*IntegratedCircuit) sealed() {}
func (*Semiconductor) sealed()     {}
func (*Resistor) sealed()          {}
func (*Capacitor) sealed()         {}
func (*Inductor) sealed()          {}
func (*Relay) sealed()             {}
func (*Switch) sealed()            {}
func (*Connection) sealed()        {}
func (*Meter) sealed()             {}
func (*Miscellaneous) sealed()     {}

// NewPart returns an empty variant for cat.
func NewPart(cat taxonomy.Category) (Part, bool) {
	switch cat {
	case taxonomy.IntegratedCircuit:
		return &IntegratedCircuit{}, true
	case taxonomy.Semiconductor:
		return &Semiconductor{}, true
	case taxonomy.Resistor:
		return &Resistor{}, true
	case taxonomy.Capacitor:
		return &Capacitor{}, true
	case taxonomy.Inductor:
		return &Inductor{}, true
	case taxonomy.Relay:
		return &Relay{}, true
	case taxonomy.Switch:
		return &Switch{}, true
	case taxonomy.Connection:
		return &Connection{}, true
	case taxonomy.Meter:
		return &Meter{}, true
	case taxonomy.Miscellaneous:
		return &Miscellaneous{}, true
	}
	return nil, false
}
