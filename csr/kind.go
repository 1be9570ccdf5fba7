package csr

// Kind is the value space of a field.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind,Mode -output=kind_string.go
const (
	KIND_BOOL = Kind(0) // bool
	KIND_UINT = Kind(1) // uint
	KIND_ENUM = Kind(2) // enum
)

// Mode is a RISC-V privilege mode, including the virtualized modes of the
// hypervisor extension.
type Mode int

const (
	MODE_U  = Mode(0) // U
	MODE_S  = Mode(1) // S
	MODE_M  = Mode(2) // M
	MODE_HS = Mode(3) // HS
	MODE_VS = Mode(4) // VS
	MODE_VU = Mode(5) // VU
)

// Reaches reports whether code running in mode m may access a register
// that belongs to domain. M-mode reaches every domain; HS-mode (S-mode on
// a hart with the hypervisor extension) reaches everything but M; VS-mode
// reaches VS and VU; U and VU reach only themselves.
func (m Mode) Reaches(domain Mode) bool {
	switch m {
	case MODE_M:
		return true
	case MODE_HS, MODE_S:
		return domain != MODE_M
	case MODE_VS:
		return domain == MODE_VS || domain == MODE_VU
	default:
		return m == domain
	}
}
