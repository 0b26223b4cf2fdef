package utils

import (
	"fmt"
	"strings"
)

// BCType selects how the two boundary interfaces of a 1D finite volume grid are evaluated
type BCType uint8

const (
	// BCZeroInflow uses a zero ghost value left of cell 0 and the last cell value right of cell N-1.
	// For a positive velocity nothing enters, for a negative velocity the right boundary keeps
	// feeding in the value of the last cell.
	BCZeroInflow BCType = iota
	// BCZeroGradient copies the nearest interior interface flux onto each boundary
	BCZeroGradient
	// BCPeriodic wraps the domain so interface 0 and interface N are the same interface
	BCPeriodic
)

var bcNames = []string{
	"ZeroInflow",
	"ZeroGradient",
	"Periodic",
}

// String returns the string representation of a BCType
func (bc BCType) String() string {
	if int(bc) < len(bcNames) {
		return bcNames[bc]
	}
	return "Unknown"
}

// BCNameMap maps the accepted boundary policy names onto BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"zeroinflow":    BCZeroInflow,
	"zero_inflow":   BCZeroInflow,
	"zero-inflow":   BCZeroInflow,
	"inflow":        BCZeroInflow,
	"outflow":       BCZeroInflow,
	"zerogradient":  BCZeroGradient,
	"zero_gradient": BCZeroGradient,
	"zero-gradient": BCZeroGradient,
	"neumann":       BCZeroGradient,
	"periodic":      BCPeriodic,
	"wrap":          BCPeriodic,
}

// ParseBCName converts a boundary policy name to BCType
// The matching is case-insensitive and trims whitespace
func ParseBCName(name string) (bc BCType, err error) {
	var (
		ok        bool
		lowerName = strings.ToLower(strings.TrimSpace(name))
	)
	if bc, ok = BCNameMap[lowerName]; !ok {
		err = fmt.Errorf("unknown boundary policy %q, must be one of %v", name, bcNames)
	}
	return
}
