package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for public business profiles.
type QRCodeService interface {
	// BusinessProfileQR renders a PNG QR code pointing at the public profile of businessID.
	BusinessProfileQR(businessID uuid.UUID) ([]byte, error)

	// ProfileURL returns the public profile URL encoded in the QR code.
	ProfileURL(businessID uuid.UUID) string
}
