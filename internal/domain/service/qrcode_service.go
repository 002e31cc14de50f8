package service

// QRCodeService defines the interface for QR code rendering.
type QRCodeService interface {
	// GenerateProfileQR renders the public page URL for a slug as a PNG
	// image suitable for printing on cards and flyers.
	GenerateProfileQR(slug string) ([]byte, error)
}
