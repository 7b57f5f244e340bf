package qrcode

import (
	"testing"

	"registry/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *qrcodeService {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 256,
			ErrorCorrectionLevel: "M",
			BaseURL:              "https://registry.example.com/",
		},
	}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestQRCodeService_VerificationURL(t *testing.T) {
	service := newTestService()

	// Trailing slash on the base URL must not double up.
	assert.Equal(t, "https://registry.example.com/verify/REG654321", service.VerificationURL("REG654321"))
}

func TestQRCodeService_GenerateVerificationQR_Deterministic(t *testing.T) {
	service := newTestService()

	first, err := service.GenerateVerificationQR("REG654321")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := service.GenerateVerificationQR("REG654321")
	require.NoError(t, err)

	// Same member ID, byte-identical PNG. Clients may cache aggressively.
	assert.Equal(t, first, second)
}

func TestQRCodeService_GenerateVerificationQR_PNGSignature(t *testing.T) {
	service := newTestService()

	png, err := service.GenerateVerificationQR("REG654321")
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, png[:8])
}

func TestQRCodeService_GenerateVerificationQR_DistinctMembers(t *testing.T) {
	service := newTestService()

	first, err := service.GenerateVerificationQR("REG111111")
	require.NoError(t, err)

	second, err := service.GenerateVerificationQR("REG222222")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
