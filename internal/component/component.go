// Package component defines the typed part description the engines work on.
//
// A Component carries the identifiers and operating values every part has,
// plus exactly one category-specific Part variant. Records (string-keyed
// maps) exist only at the boundary and are converted with FromRecord.
package component

import (
	"fmt"

	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

// Component is one part to be predicted or derated.
type Component struct {
	ID          string
	Category    taxonomy.Category
	Subcategory int
	Quality     int
	Method      taxonomy.Method

	// Where the active hazard rate comes from. Assessed runs the handbook
	// models; the specified types take the rate or MTBF as given.
	HazardRateType      taxonomy.HazardRateType
	HazardRateSpecified float64
	MTBFSpecified       float64

	EnvironmentActive  taxonomy.Environment
	EnvironmentDormant taxonomy.DormantEnvironment

	TemperatureActive   float64 // ambient, °C
	TemperatureRatedMax float64 // °C

	CurrentOperating   float64
	CurrentRated       float64
	PowerOperating     float64
	PowerRated         float64
	VoltageACOperating float64
	VoltageDCOperating float64
	VoltageRated       float64

	DutyCycle   float64 // percent of time active
	Quantity    int
	MultAdj     float64
	AddAdj      float64
	MissionTime float64 // hours

	Part Part
}

// New returns a component with the neutral adjustment defaults: one part,
// always active, no multiplicative or additive adjustment.
func New(id string, subcategory int, part Part) Component {
	return Component{
		ID:                 id,
		Category:           part.Category(),
		Subcategory:        subcategory,
		Quality:            1,
		Method:             taxonomy.PartsCount,
		HazardRateType:     taxonomy.Assessed,
		EnvironmentActive:  taxonomy.GroundBenign,
		EnvironmentDormant: taxonomy.DormantGround,
		DutyCycle:          100,
		Quantity:           1,
		MultAdj:            1,
		Part:               part,
	}
}

// Validate checks the identifiers that every engine relies on.
func (c Component) Validate() error {
	if !c.Category.Valid() {
		return errs.OutOfRange("category_id", float64(c.Category), 1, 10)
	}
	if c.Part == nil {
		return errs.MissingKey("component part", c.Category)
	}
	if c.Part.Category() != c.Category {
		return &errs.TypeMismatchError{
			Field: "part",
			Want:  c.Category.String(),
			Got:   c.Part.Category().String(),
		}
	}
	if !taxonomy.ValidSubcategory(c.Category, c.Subcategory) {
		return errs.MissingKey(c.Category.String()+" subcategory", c.Subcategory)
	}
	if _, err := c.EnvironmentActive.Index(); err != nil {
		return err
	}
	return nil
}

func (c Component) String() string {
	return fmt.Sprintf("%s (%s %d)", c.ID, c.Category, c.Subcategory)
}

// Ratio divides an operating value by its rating. Both zero means an
// unloaded part and yields zero; a zero rating under load is an error.
func Ratio(quantity string, operating, rated float64) (float64, error) {
	if rated == 0 {
		if operating == 0 {
			return 0, nil
		}
		return 0, errs.DivisionByZero("rated " + quantity)
	}
	return operating / rated, nil
}

// CurrentRatio is operating over rated current.
func (c Component) CurrentRatio() (float64, error) {
	return Ratio("current", c.CurrentOperating, c.CurrentRated)
}

// PowerRatio is operating over rated power.
func (c Component) PowerRatio() (float64, error) {
	return Ratio("power", c.PowerOperating, c.PowerRated)
}

// VoltageOperating is the combined AC and DC operating voltage.
func (c Component) VoltageOperating() float64 {
	return c.VoltageACOperating + c.VoltageDCOperating
}

// VoltageRatio is combined operating voltage over rated voltage.
func (c Component) VoltageRatio() (float64, error) {
	return Ratio("voltage", c.VoltageOperating(), c.VoltageRated)
}
