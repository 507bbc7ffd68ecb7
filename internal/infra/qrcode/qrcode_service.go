package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"tally/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// The base URL is the public host the printed codes point at, e.g.
// https://tally.example.com; scan URLs take the form
// {base}/s/{publicID}?mode=earn&token=...
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// BuildScanURL encodes a program's public ID, earn token and mode into the payload URL.
func (s *qrcodeService) BuildScanURL(programPublicID, earnToken string, mode service.ScanMode) (string, error) {
	if programPublicID == "" {
		return "", fmt.Errorf("program public id is required")
	}
	if mode != service.ScanModeEarn && mode != service.ScanModeJoin {
		return "", fmt.Errorf("invalid scan mode: %s", mode)
	}
	// Join codes deliberately omit the earn token; possession of a join
	// poster must not let anyone award stamps.
	if mode == service.ScanModeEarn && earnToken == "" {
		return "", fmt.Errorf("earn token is required for earn mode")
	}

	query := url.Values{}
	query.Set("mode", string(mode))
	if mode == service.ScanModeEarn {
		query.Set("token", earnToken)
	}

	return fmt.Sprintf("%s/s/%s?%s", s.baseURL, url.PathEscape(programPublicID), query.Encode()), nil
}

// ParseScanURL decodes a payload URL scanned by a member's camera.
func (s *qrcodeService) ParseScanURL(raw string) (*service.ScanPayload, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scan url: %w", err)
	}

	const prefix = "/s/"
	if !strings.HasPrefix(parsed.Path, prefix) {
		return nil, fmt.Errorf("not a scan url: %s", parsed.Path)
	}

	publicID := strings.TrimPrefix(parsed.Path, prefix)
	if publicID == "" || strings.Contains(publicID, "/") {
		return nil, fmt.Errorf("invalid program public id in scan url")
	}

	mode := service.ScanMode(parsed.Query().Get("mode"))
	switch mode {
	case service.ScanModeEarn, service.ScanModeJoin:
	default:
		return nil, fmt.Errorf("invalid scan mode: %s", mode)
	}

	return &service.ScanPayload{
		ProgramPublicID: publicID,
		EarnToken:       parsed.Query().Get("token"),
		Mode:            mode,
	}, nil
}

// RenderPNG renders the payload URL as a printable QR image.
func (s *qrcodeService) RenderPNG(scanURL string) ([]byte, error) {
	qrCode, err := qrcode.New(scanURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
