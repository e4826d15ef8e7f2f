// internal/status/constants.go
package status

// Control/status register map.
// These values define the host protocol and MUST NOT be configurable.
// Every register is one 16-bit word.

// ---- BLOCK GEOMETRY ----

// RegistersPerCore is the fixed number of words in one core's register block.
const RegistersPerCore = 8

// ---- REGISTER ADDRESSES ----

// RegEnable holds the link enable bit (R/W).
const RegEnable = 0

// RegReady holds the aggregate readiness bit (R).
const RegReady = 1

// RegPRBSConfig holds the test pattern selector (R/W, 4 bits). 0 disables test mode.
const RegPRBSConfig = 2

// RegSTPLEnable substitutes the short transport test pattern for live data (R/W).
const RegSTPLEnable = 3

// RegJSync holds the synchronized jsync confirmation bit (R).
const RegJSync = 4

// RegRestartCountClear clears the restart counter on write (W, reads 0).
const RegRestartCountClear = 5

// RegRestartCount holds the number of watchdog restarts since the last clear (R).
const RegRestartCount = 6

// RegLastExit holds the reason of the last watchdog exit from running (R).
const RegLastExit = 7

// ---- HOST CONTROL BLOCK ----

// The host-owned control block mirrors the writable registers.
// Words are relative to the configured control address.
const (
	CtrlEnable     = 0
	CtrlPRBSConfig = 1
	CtrlSTPLEnable = 2
	CtrlClear      = 3

	CtrlWords = 4
)

// ---- LIMITS ----

// PRBSConfigMask is the width of the prbs_config register.
const PRBSConfigMask uint16 = 0x000F

// MaxWriteWords is the largest register count one Modbus write (FC 16) may carry.
// Longer blocks are split.
const MaxWriteWords = 123

// RestartCountMax is where the restart counter saturates.
const RestartCountMax uint16 = 0xFFFF

// ---- CONFIGURATION DESCRIPTORS ----

// DescriptorWords is the number of words holding one lane's 14 configuration octets.
// Descriptors follow the register block, one per lane, in lane order.
const DescriptorWords = 7

// BlockWords is the size of the full host status block for a link with lanes lanes.
func BlockWords(lanes int) int {
	return RegistersPerCore + lanes*DescriptorWords
}
