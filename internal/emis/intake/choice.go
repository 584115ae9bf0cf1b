package intake

import (
	"errors"
	"fmt"
)

var ErrUnknownFacilityChoice = errors.New("INVALID_INPUT")

// FacilityChoice selects the wizard branch: assess an existing EMIS or
// specify a new one.
type FacilityChoice string

const (
	WithEMIS    FacilityChoice = "with-emis"
	WithoutEMIS FacilityChoice = "without-emis"
)

func ParseFacilityChoice(s string) (FacilityChoice, error) {
	switch c := FacilityChoice(s); c {
	case WithEMIS, WithoutEMIS:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown facility choice %q", ErrUnknownFacilityChoice, s)
	}
}

func (c FacilityChoice) Label() string {
	switch c {
	case WithEMIS:
		return "Facility with EMIS"
	case WithoutEMIS:
		return "Facility without EMIS"
	default:
		return string(c)
	}
}
