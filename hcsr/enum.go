package hcsr

// Xlen is the native register width of the hart.
type Xlen uint

const (
	XLEN_32 = Xlen(32)
	XLEN_64 = Xlen(64)
)

// XlenCode is the encoding of an effective XLEN in the VSXL and UXL fields.
type XlenCode uint64

//go:generate go tool stringer -linecomment -type=XlenCode,GatpMode,AtpMode,ExtState,TrapMode -output=enum_string.go
const (
	XL_32  = XlenCode(1) // 32
	XL_64  = XlenCode(2) // 64
	XL_128 = XlenCode(3) // 128
)

// GatpMode selects the G-stage translation scheme in hgatp.
type GatpMode uint64

const (
	GATP_BARE   = GatpMode(0)  // Bare
	GATP_SV32X4 = GatpMode(1)  // Sv32x4
	GATP_SV39X4 = GatpMode(8)  // Sv39x4
	GATP_SV48X4 = GatpMode(9)  // Sv48x4
	GATP_SV57X4 = GatpMode(10) // Sv57x4
)

// AtpMode selects the VS-stage translation scheme in vsatp.
type AtpMode uint64

const (
	ATP_BARE = AtpMode(0)  // Bare
	ATP_SV32 = AtpMode(1)  // Sv32
	ATP_SV39 = AtpMode(8)  // Sv39
	ATP_SV48 = AtpMode(9)  // Sv48
	ATP_SV57 = AtpMode(10) // Sv57
	ATP_SV64 = AtpMode(11) // Sv64
)

// ExtState is the state of an extension's context (FS, VS and XS fields).
type ExtState uint64

const (
	EXT_OFF     = ExtState(0) // Off
	EXT_INITIAL = ExtState(1) // Initial
	EXT_CLEAN   = ExtState(2) // Clean
	EXT_DIRTY   = ExtState(3) // Dirty
)

// TrapMode is the vectoring mode of vstvec.
type TrapMode uint64

const (
	TVEC_DIRECT   = TrapMode(0) // Direct
	TVEC_VECTORED = TrapMode(1) // Vectored
)
