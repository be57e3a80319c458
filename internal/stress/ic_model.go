package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// ICModel covers monolithic, memory, GaAs and VHSIC integrated circuits.
type ICModel struct{}

func (m *ICModel) Category() taxonomy.Category { return taxonomy.IntegratedCircuit }

const (
	icTechnologyBipolar = 1
	icTechnologyMOS     = 2

	icEEPROM = 6
	icGaAs   = 9
	icVHSIC  = 10
)

var (
	icQuality     = []float64{0.25, 1.0, 2.0}
	icEnvironment = tables.Row{0.5, 2.0, 4.0, 4.0, 6.0, 4.0, 5.0, 5.0, 8.0, 8.0, 0.5, 5.0, 12.0, 220.0}
)

// Die complexity factor C1 by subcategory and technology. For GaAs the
// technology is 1 for MMIC and 2 for digital.
var icDieComplexity = map[tables.Key][]float64{
	{Subcategory: 1, Variant: icTechnologyBipolar}: {0.01, 0.02, 0.04, 0.06},
	{Subcategory: 1, Variant: icTechnologyMOS}:     {0.01, 0.02, 0.04, 0.06},
	{Subcategory: 2, Variant: icTechnologyBipolar}: {0.0025, 0.005, 0.01, 0.02, 0.04, 0.08},
	{Subcategory: 2, Variant: icTechnologyMOS}:     {0.01, 0.02, 0.04, 0.08, 0.16, 0.29},
	{Subcategory: 3, Variant: icTechnologyBipolar}: {0.01, 0.021, 0.042},
	{Subcategory: 3, Variant: icTechnologyMOS}:     {0.00085, 0.0017, 0.0034, 0.0068},
	{Subcategory: 4, Variant: icTechnologyBipolar}: {0.06, 0.12, 0.24},
	{Subcategory: 4, Variant: icTechnologyMOS}:     {0.14, 0.28, 0.56},
	{Subcategory: 5, Variant: icTechnologyBipolar}: {0.0094, 0.019, 0.038, 0.075},
	{Subcategory: 5, Variant: icTechnologyMOS}:     {0.00065, 0.0013, 0.0026, 0.0052},
	{Subcategory: 6, Variant: icTechnologyMOS}:     {0.00085, 0.0017, 0.0034, 0.0068},
	{Subcategory: 7, Variant: icTechnologyMOS}:     {0.0013, 0.0025, 0.005, 0.01},
	{Subcategory: 8, Variant: icTechnologyBipolar}: {0.0052, 0.011, 0.021, 0.042},
	{Subcategory: 8, Variant: icTechnologyMOS}:     {0.0078, 0.016, 0.031, 0.062},
	{Subcategory: 9, Variant: 1}:                   {4.5, 7.2},
	{Subcategory: 9, Variant: 2}:                   {25.0, 51.0},
}

// Linear and digital activation energies (eV) by family.
var icFamilyActivation = []float64{0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.45, 0.45, 0.5, 0.5, 0.6, 0.6, 0.6}

var icGaAsActivation = []float64{1.5, 1.4}

// Package factor constants for C2 = f0 · Np^f1, by package group.
var icPackageConstants = map[int][2]float64{
	1: {2.8e-4, 1.08},
	2: {9.0e-5, 1.51},
	3: {3.0e-5, 1.82},
	4: {3.0e-5, 2.01},
	5: {3.6e-4, 1.08},
}

// GaAs application factor by technology then application.
var icGaAsApplication = map[int][]float64{
	1: {1.0, 3.0, 3.0},
	2: {1.0},
}

var eepromCorrection = map[int]float64{1: 1.0, 2: 0.72, 3: 0.68}

var vhsicPackageType = map[int]float64{1: 1.0, 7: 1.3, 2: 2.2, 8: 2.9, 3: 4.7, 9: 6.1}

func (m *ICModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.IntegratedCircuit](c)
	if err != nil {
		return WorkRecord{}, err
	}
	piQ, err := quality(icQuality, c)
	if err != nil {
		return WorkRecord{}, err
	}
	piE, err := environment(icEnvironment, "integrated circuit environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}

	w := newRecord("")
	tj := w.derive("temperature_junction", p.TemperatureCase+c.PowerOperating*p.ThetaJC)

	ea, err := icActivationEnergy(c.Subcategory, p)
	if err != nil {
		return WorkRecord{}, err
	}
	tref := 296.0
	if c.Subcategory == icGaAs {
		tref = 423
	}
	w.derive("activation_energy", ea)
	piT := w.derive("piT", 0.1*arrhenius(ea, tj, tref))

	if c.Subcategory == icVHSIC {
		return vhsic(w, c, p, piT, piQ, piE)
	}

	piL := w.derive("piL", 0.01*math.Exp(5.35-0.35*p.YearsInProduction))

	idx, err := tables.ComplexityIndex(c.Subcategory, p.Technology, p.Elements)
	if err != nil {
		return WorkRecord{}, err
	}
	c1List, ok := icDieComplexity[tables.Key{Subcategory: c.Subcategory, Variant: p.Technology}]
	if !ok {
		return WorkRecord{}, errs.MissingKey("integrated circuit die complexity", c.Subcategory, p.Technology)
	}
	c1, err := pick(c1List, idx, "complexity index", "integrated circuit die complexity")
	if err != nil {
		return WorkRecord{}, err
	}
	w.derive("C1", c1)

	c2, err := icPackageFactor(p.Package, p.Pins)
	if err != nil {
		return WorkRecord{}, err
	}
	w.derive("C2", c2)
	w.derive("piE", piE)
	w.derive("piQ", piQ)

	var lambda float64
	switch {
	case c.Subcategory == icGaAs:
		apps, ok := icGaAsApplication[p.Technology]
		if !ok {
			return WorkRecord{}, errs.MissingKey("GaAs application factor", p.Technology)
		}
		piA, err := pick(apps, p.Application, "application_id", "GaAs application factor")
		if err != nil {
			return WorkRecord{}, err
		}
		w.derive("piA", piA)
		w.Equation = "(C1 * piT * piA + C2 * piE) * piQ * piL"
		lambda = (c1*piT*piA + c2*piE) * piQ * piL
	case c.Subcategory >= 5:
		cyc := 0.0
		if c.Subcategory == icEEPROM {
			if cyc, err = eepromCycling(w, p, tj, piQ); err != nil {
				return WorkRecord{}, err
			}
		}
		w.derive("lambda_cyc", cyc)
		w.Equation = "(C1 * piT + C2 * piE + lambdaCyc) * piQ * piL"
		lambda = (c1*piT + c2*piE + cyc) * piQ * piL
	default:
		w.Equation = "(C1 * piT + C2 * piE) * piQ * piL"
		lambda = (c1*piT + c2*piE) * piQ * piL
	}

	// The additive composition has no single base rate; the die term
	// stands in for it.
	w.LambdaB = c1
	w.HazardRate = lambda
	return *w, nil
}

func icActivationEnergy(sub int, p *component.IntegratedCircuit) (float64, error) {
	switch sub {
	case 1, 3, 4:
		return 0.65, nil
	case 2:
		return pick(icFamilyActivation, p.Family, "family_id", "integrated circuit activation energy")
	case 5, 6, 7, 8:
		return 0.6, nil
	case icGaAs:
		return pick(icGaAsActivation, p.Technology, "technology_id", "GaAs activation energy")
	case icVHSIC:
		return 0.35, nil
	}
	return 0, errs.MissingKey("integrated circuit activation energy", sub)
}

func icPackageGroup(pkg int) int {
	switch {
	case pkg >= 1 && pkg <= 3:
		return 1
	case pkg == 4:
		return 2
	case pkg == 5:
		return 3
	case pkg == 6:
		return 4
	}
	return 5
}

func icPackageFactor(pkg int, pins float64) (float64, error) {
	if err := positive("n_active_pins", pins); err != nil {
		return 0, err
	}
	f := icPackageConstants[icPackageGroup(pkg)]
	return f[0] * math.Pow(pins, f[1]), nil
}

// eepromCycling is the write cycling hazard rate for flotox (construction 1)
// and textured-poly (construction 2) EEPROMs.
func eepromCycling(w *WorkRecord, p *component.IntegratedCircuit, tj, piQ float64) (float64, error) {
	const k = 8.63e-5
	t := kelvin(tj)

	a1 := 6.817e-6 * p.Cycles
	var a2 float64
	switch {
	case p.Cycles <= 300000:
		a2 = 0
	case p.Cycles <= 400000:
		a2 = 1.1
	default:
		a2 = 2.3
	}

	var b1, b2 float64
	switch p.Construction {
	case 1:
		b1 = math.Pow(p.Elements/16000, 0.5) * math.Exp(-0.15/k*(1/t-1.0/333))
	case 2:
		scale := math.Pow(p.Elements/64000, 0.25)
		b1 = scale * math.Exp(0.1/k*(1/t-1.0/303))
		b2 = scale * math.Exp(-0.12/k*(1/t-1.0/303))
	default:
		return 0, errs.MissingKey("EEPROM construction", p.Construction)
	}

	piECC, err := valueFor(eepromCorrection, p.Type, "EEPROM error correction factor")
	if err != nil {
		return 0, err
	}
	w.derive("A1", a1)
	w.derive("A2", a2)
	w.derive("B1", b1)
	w.derive("B2", b2)
	w.derive("piECC", piECC)
	return (a1*b1 + a2*b2/piQ) * piECC, nil
}

func vhsic(w *WorkRecord, c component.Component, p *component.IntegratedCircuit, piT, piQ, piE float64) (WorkRecord, error) {
	lambdaBD := 0.24
	if p.Type == 1 {
		lambdaBD = 0.16
	}
	piMFG := 2.0
	if p.Manufacturing == 1 {
		piMFG = 0.55
	}
	if p.FeatureSize == 0 {
		return WorkRecord{}, errs.DivisionByZero("feature size")
	}
	piCD := (p.Area/0.21)*math.Pow(2/p.FeatureSize, 2)*0.64 + 0.36
	piPT, err := valueFor(vhsicPackageType, p.Package, "VHSIC package type factor")
	if err != nil {
		return WorkRecord{}, err
	}
	lambdaBP := 0.0022 + 1.72e-5*p.Pins
	lambdaEOS := -math.Log(1-0.00057*math.Exp(-0.0002*p.VoltageESD)) / 0.00876

	w.derive("lambda_BD", lambdaBD)
	w.derive("piMFG", piMFG)
	w.derive("piCD", piCD)
	w.derive("lambda_BP", lambdaBP)
	w.derive("piPT", piPT)
	w.derive("lambda_EOS", lambdaEOS)
	w.derive("piE", piE)
	w.derive("piQ", piQ)

	w.Equation = "lambdaBD * piMFG * piT * piCD + lambdaBP * piE * piQ * piPT + lambdaEOS"
	w.LambdaB = lambdaBD
	w.HazardRate = lambdaBD*piMFG*piT*piCD + lambdaBP*piE*piQ*piPT + lambdaEOS
	return *w, nil
}
