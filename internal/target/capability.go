package target

// Capability is a target feature that code generation can query.
type Capability int

// Reserved capabilities. No target reports any of them yet.
const (
	CPUHasBRA8   Capability = iota // CPU has a BRA with 8 bit offset
	CPUHasINA                      // CPU has INA/DEA
	CPUHasPushXY                   // CPU has PHX/PHY/PLX/PLY
	CPUHasZPInd                    // CPU has zero page indirect addressing
	CPUHasSTZ                      // CPU has STZ
	CPUHasBITImm                   // CPU has BIT with immediate operand
)

// HasCapability returns whether the current target has the given capability.
// It currently reports false for every capability and target.
func HasCapability(Capability) bool {
	return false
}
