package taxonomy

import (
	"errors"
	"testing"

	"hazard217/internal/errs"
)

func TestEnvironmentIndexBounds(t *testing.T) {
	for e := GroundBenign; e <= CannonLaunch; e++ {
		idx, err := e.Index()
		if err != nil {
			t.Fatalf("Index(%d) error: %v", e, err)
		}
		if idx != int(e)-1 {
			t.Errorf("Index(%d) = %d", e, idx)
		}
	}

	for _, bad := range []Environment{0, -1, 15, 100} {
		if _, err := bad.Index(); !errors.Is(err, errs.ErrOutOfRange) {
			t.Errorf("Index(%d) err = %v, want OutOfRange", bad, err)
		}
	}
}

func TestEnvironmentCodes(t *testing.T) {
	if GroundBenign.Code() != "GB" || CannonLaunch.Code() != "CL" || SpaceFlight.Code() != "SF" {
		t.Errorf("unexpected codes: %s %s %s", GroundBenign, CannonLaunch, SpaceFlight)
	}
}

func TestDefaultSeverity(t *testing.T) {
	m := DefaultSeverity()
	want := map[Environment]SeverityClass{
		GroundBenign:           Protected,
		SpaceFlight:            Protected,
		GroundFixed:            Normal,
		NavalSheltered:         Normal,
		AirborneInhabitedCargo: Normal,
		GroundMobile:           Severe,
		NavalUnsheltered:       Severe,
		MissileLaunch:          Severe,
		CannonLaunch:           Severe,
	}
	for env, class := range want {
		got, err := m.Classify(env)
		if err != nil {
			t.Fatalf("Classify(%s): %v", env, err)
		}
		if got != class {
			t.Errorf("Classify(%s) = %s, want %s", env, got, class)
		}
	}

	if _, err := m.Classify(0); !errors.Is(err, errs.ErrOutOfRange) {
		t.Errorf("Classify(0) err = %v, want OutOfRange", err)
	}
}

func TestEnvironmentGroup(t *testing.T) {
	cases := map[Environment]EnvironmentGroup{
		GroundMobile:               GroupGround,
		NavalUnsheltered:           GroupNaval,
		AirborneUninhabitedFighter: GroupAirborne,
		SpaceFlight:                GroupSpace,
		MissileFlight:              GroupMissile,
		CannonLaunch:               GroupMissile,
	}
	for env, want := range cases {
		if got := env.Group(); got != want {
			t.Errorf("%s.Group() = %d, want %d", env, got, want)
		}
	}
}

func TestSubcategoryName(t *testing.T) {
	name, err := SubcategoryName(Resistor, 1)
	if err != nil || name != "fixed, composition" {
		t.Errorf("SubcategoryName(Resistor, 1) = %q, %v", name, err)
	}
	if _, err := SubcategoryName(Relay, 3); !errors.Is(err, errs.ErrMissingKey) {
		t.Errorf("expected MissingKey, got %v", err)
	}
	if !ValidSubcategory(Capacitor, 19) || ValidSubcategory(Capacitor, 20) {
		t.Error("capacitor subcategory bounds wrong")
	}
}

func TestParseSeverityClass(t *testing.T) {
	for _, s := range []SeverityClass{Protected, Normal, Severe} {
		got, err := ParseSeverityClass(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSeverityClass(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseSeverityClass("harsh"); err == nil {
		t.Error("expected error for unknown class")
	}
}
