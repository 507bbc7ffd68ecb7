package service

// ScanMode discriminates till-counter earn codes from member-onboarding join codes.
type ScanMode string

const (
	ScanModeEarn ScanMode = "earn"
	ScanModeJoin ScanMode = "join"
)

// ScanPayload is the decoded content of a printed program QR code.
type ScanPayload struct {
	ProgramPublicID string
	EarnToken       string
	Mode            ScanMode
}

// QRCodeService defines the interface for building, parsing and rendering the
// QR payload URLs printed at the till and on join posters.
type QRCodeService interface {
	// BuildScanURL encodes a program's public ID, earn token and mode into the payload URL.
	BuildScanURL(programPublicID, earnToken string, mode ScanMode) (string, error)

	// ParseScanURL decodes a payload URL scanned by a member's camera.
	ParseScanURL(raw string) (*ScanPayload, error)

	// RenderPNG renders the payload URL as a printable QR image.
	RenderPNG(url string) ([]byte, error)
}
