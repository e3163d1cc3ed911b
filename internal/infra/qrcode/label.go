// Package qrcode renders the QR code printed on order receipts and packing
// slips.
package qrcode

import (
	"net/url"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type labelRenderer struct {
	size     int
	recovery qrcode.RecoveryLevel
	// base is the storefront order page; nil encodes a bare order reference.
	base *url.URL
}

// NewQRCodeService builds the renderer from the qrcode config section. An
// unknown recovery level falls back to M.
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	return newLabelRenderer(cfg.QRCode)
}

func newLabelRenderer(cfg *config.QRCodeConfig) (*labelRenderer, error) {
	r := &labelRenderer{size: cfg.Size, recovery: qrcode.Medium}
	if r.size <= 0 {
		r.size = defaultSize
	}
	if level, ok := recoveryLevels[strings.ToUpper(cfg.ErrorCorrectionLevel)]; ok {
		r.recovery = level
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, errors.Errorf("qrcode.baseUrl %q is not an absolute URL", cfg.BaseURL)
		}
		r.base = base
	}

	return r, nil
}

// content is what a scanner reads: the order page when a storefront is
// configured, otherwise an order:<number>:<id> reference.
func (r *labelRenderer) content(label service.OrderLabel) string {
	if r.base == nil {
		return "order:" + label.Number + ":" + label.ID.String()
	}

	page := r.base.JoinPath("orders", label.ID.String())
	page.RawQuery = url.Values{"number": {label.Number}}.Encode()

	return page.String()
}

func (r *labelRenderer) OrderLabelPNG(label service.OrderLabel) ([]byte, error) {
	png, err := qrcode.Encode(r.content(label), r.recovery, r.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render QR code for order %s", label.Number)
	}

	return png, nil
}
