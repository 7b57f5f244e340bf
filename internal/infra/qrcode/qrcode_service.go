package qrcode

import (
	"image/color"
	"strings"

	"registry/config"
	"registry/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// Card palette: gold modules on black, matching the printed card face.
var (
	qrForeground = color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	qrBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium
	baseURL := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		switch cfg.QRCode.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// VerificationURL builds the public verification URL encoded into the QR code.
func (s *qrcodeService) VerificationURL(memberID string) string {
	return s.baseURL + "/verify/" + memberID
}

// GenerateVerificationQR generates a PNG QR code pointing at the member's
// public verification page. Output is deterministic for a given member ID
// and configuration.
func (s *qrcodeService) GenerateVerificationQR(memberID string) ([]byte, error) {
	qrCode, err := qrcode.New(s.VerificationURL(memberID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	qrCode.ForegroundColor = qrForeground
	qrCode.BackgroundColor = qrBackground

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
