package qrcode

import (
	"testing"

	"tally/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://tally.example.com")
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_BuildScanURL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://tally.example.com/")

	scanURL, err := svc.BuildScanURL("p_7f3k9x", "tok_abc123", service.ScanModeEarn)
	require.NoError(t, err)
	assert.Equal(t, "https://tally.example.com/s/p_7f3k9x?mode=earn&token=tok_abc123", scanURL)
}

func TestQRCodeService_BuildScanURL_JoinOmitsToken(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://tally.example.com")

	scanURL, err := svc.BuildScanURL("p_7f3k9x", "", service.ScanModeJoin)
	require.NoError(t, err)
	assert.Equal(t, "https://tally.example.com/s/p_7f3k9x?mode=join", scanURL)
	assert.NotContains(t, scanURL, "token")
}

func TestQRCodeService_BuildScanURL_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://tally.example.com")

	tests := []struct {
		name     string
		publicID string
		token    string
		mode     service.ScanMode
	}{
		{"missing public id", "", "tok", service.ScanModeEarn},
		{"earn without token", "p_7f3k9x", "", service.ScanModeEarn},
		{"invalid mode", "p_7f3k9x", "tok", service.ScanMode("redeem")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BuildScanURL(tt.publicID, tt.token, tt.mode)
			assert.Error(t, err)
		})
	}
}

func TestQRCodeService_ParseScanURL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://tally.example.com")

	payload, err := svc.ParseScanURL("https://tally.example.com/s/p_7f3k9x?mode=earn&token=tok_abc123")
	require.NoError(t, err)
	assert.Equal(t, "p_7f3k9x", payload.ProgramPublicID)
	assert.Equal(t, "tok_abc123", payload.EarnToken)
	assert.Equal(t, service.ScanModeEarn, payload.Mode)
}

func TestQRCodeService_ParseScanURL_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://tally.example.com")

	tests := []struct {
		name string
		raw  string
	}{
		{"not a scan path", "https://tally.example.com/api/loyalty/earn"},
		{"empty public id", "https://tally.example.com/s/?mode=earn&token=t"},
		{"missing mode", "https://tally.example.com/s/p_7f3k9x"},
		{"unknown mode", "https://tally.example.com/s/p_7f3k9x?mode=redeem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseScanURL(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestQRCodeService_RenderPNG(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M", "https://tally.example.com")

			scanURL, err := svc.BuildScanURL("p_7f3k9x", "tok_abc123", service.ScanModeEarn)
			require.NoError(t, err)

			qrBytes, err := svc.RenderPNG(scanURL)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)

			// Verify it's a valid PNG (starts with PNG magic number)
			assert.Equal(t, byte(0x89), qrBytes[0])
			assert.Equal(t, byte(0x50), qrBytes[1])
			assert.Equal(t, byte(0x4E), qrBytes[2])
			assert.Equal(t, byte(0x47), qrBytes[3])
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://tally.example.com")

	scanURL, err := svc.BuildScanURL("p_7f3k9x", "tok_abc123", service.ScanModeEarn)
	require.NoError(t, err)

	payload, err := svc.ParseScanURL(scanURL)
	require.NoError(t, err)
	assert.Equal(t, "p_7f3k9x", payload.ProgramPublicID)
	assert.Equal(t, "tok_abc123", payload.EarnToken)
	assert.Equal(t, service.ScanModeEarn, payload.Mode)
}
