package qrcode

import (
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var label = service.OrderLabel{
	ID:     uuid.MustParse("4f1c2d3e-5a6b-4c7d-8e9f-0a1b2c3d4e5f"),
	Number: "ORD-20250314-0007",
}

func TestNewLabelRenderer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.QRCodeConfig
		size     int
		recovery qrcode.RecoveryLevel
		wantErr  bool
	}{
		{name: "defaults", cfg: config.QRCodeConfig{}, size: defaultSize, recovery: qrcode.Medium},
		{name: "highest", cfg: config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "h"}, size: 128, recovery: qrcode.Highest},
		{name: "unknown level", cfg: config.QRCodeConfig{ErrorCorrectionLevel: "X"}, size: defaultSize, recovery: qrcode.Medium},
		{name: "relative base url", cfg: config.QRCodeConfig{BaseURL: "shop/orders"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := newLabelRenderer(&tt.cfg)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, r.size)
			assert.Equal(t, tt.recovery, r.recovery)
		})
	}
}

func TestLabelRenderer_Content(t *testing.T) {
	bare, err := newLabelRenderer(&config.QRCodeConfig{})
	require.NoError(t, err)
	assert.Equal(t, "order:ORD-20250314-0007:4f1c2d3e-5a6b-4c7d-8e9f-0a1b2c3d4e5f", bare.content(label))

	linked, err := newLabelRenderer(&config.QRCodeConfig{BaseURL: "https://shop.example.com/"})
	require.NoError(t, err)
	assert.Equal(t,
		"https://shop.example.com/orders/4f1c2d3e-5a6b-4c7d-8e9f-0a1b2c3d4e5f?number=ORD-20250314-0007",
		linked.content(label))
}

func TestLabelRenderer_PNG(t *testing.T) {
	svc, err := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128}})
	require.NoError(t, err)

	png, err := svc.OrderLabelPNG(label)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
