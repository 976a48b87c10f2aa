package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUPIGenerator_PaymentURI(t *testing.T) {
	g := NewUPIGenerator("hostia@upi", "HOSTIA")

	uri := g.PaymentURI(decimal.RequireFromString("81"))
	require.True(t, strings.HasPrefix(uri, "upi://pay?"))

	q, err := url.ParseQuery(strings.TrimPrefix(uri, "upi://pay?"))
	require.NoError(t, err)
	assert.Equal(t, "hostia@upi", q.Get("pa"))
	assert.Equal(t, "HOSTIA", q.Get("pn"))
	assert.Equal(t, "81.00", q.Get("am"))
	assert.Equal(t, "INR", q.Get("cu"))
}

func TestUPIGenerator_PaymentQR(t *testing.T) {
	g := NewUPIGenerator("hostia@upi", "HOSTIA")

	dataURL, err := g.PaymentQR(decimal.RequireFromString("499.50"))
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, Size, img.Bounds().Dx())
}
