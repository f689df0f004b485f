package qrcode

import (
	"strings"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/domain/constants"
	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	publicURL            string
}

// New builds the QR code service from the qrcode and site sections.
func New(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	publicURL := ""
	if cfg.Site != nil {
		publicURL = cfg.Site.PublicURL
	}

	return NewQRCodeService(size, level, publicURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, publicURL string) service.QRCodeService {
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
		publicURL:            strings.TrimRight(publicURL, "/"),
	}
}

// ProfileURL returns the absolute public profile URL of a business.
func (s *qrcodeService) ProfileURL(businessID uuid.UUID) string {
	return s.publicURL + constants.PublicBusinessPath + businessID.String()
}

// BusinessProfileQR renders a PNG pointing at the business profile.
func (s *qrcodeService) BusinessProfileQR(businessID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProfileURL(businessID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
