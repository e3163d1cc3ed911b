package service

import (
	"github.com/google/uuid"
)

// OrderLabel identifies the order a QR code points at.
type OrderLabel struct {
	ID     uuid.UUID
	Number string
}

// QRCodeService renders order QR codes as PNG images.
type QRCodeService interface {
	OrderLabelPNG(label OrderLabel) ([]byte, error)
}
