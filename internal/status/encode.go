// internal/status/encode.go
package status

// Encode converts a Snapshot into a full register block.
// Layout is protocol-locked. The clear register always reads 0.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, RegistersPerCore)

	regs[RegEnable] = bit(s.Enable)
	regs[RegReady] = bit(s.Ready)
	regs[RegPRBSConfig] = s.PRBSConfig & PRBSConfigMask
	regs[RegSTPLEnable] = bit(s.STPLEnable)
	regs[RegJSync] = bit(s.JSync)
	regs[RegRestartCount] = s.RestartCount
	regs[RegLastExit] = s.LastExit

	return regs
}

func bit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
