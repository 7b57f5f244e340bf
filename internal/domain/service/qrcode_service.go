package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateVerificationQR encodes the absolute public verification URL for
	// a member ID into a PNG image. Pure function of the member ID and the
	// configured base URL: identical inputs produce byte-identical output.
	GenerateVerificationQR(memberID string) ([]byte, error)

	// VerificationURL returns the absolute URL the QR code encodes.
	VerificationURL(memberID string) string
}
