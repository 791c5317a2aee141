package artifact

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"math"
	"net/url"
	"strings"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRBaseURL = "https://quickchart.io/qr"
	QRSize           = 200

	// Bars are BarcodeScale pixels per module and BarcodeHeightMM tall at 72 dpi
	// times the same scale, with no caption underneath.
	BarcodeScale    = 3
	BarcodeHeightMM = 10

	pngDataURIPrefix = "data:image/png;base64,"
)

// Generator produces the QR reference and the Code-128 barcode for a pass id
type Generator struct {
	qrBaseURL string
}

// NewGenerator creates an artifact generator. An empty base URL selects DefaultQRBaseURL.
func NewGenerator(qrBaseURL string) repository.ArtifactGenerator {
	return newGenerator(qrBaseURL)
}

func newGenerator(qrBaseURL string) *Generator {
	if qrBaseURL == "" {
		qrBaseURL = DefaultQRBaseURL
	}
	return &Generator{qrBaseURL: strings.TrimRight(qrBaseURL, "?")}
}

// Generate renders both artifacts. Only the barcode step can fail.
func (g *Generator) Generate(id string) (*entity.Artifacts, error) {
	barcodeURI, err := RenderBarcode(id)
	if err != nil {
		return nil, err
	}

	return &entity.Artifacts{
		QR:      g.QRURL(id),
		Barcode: barcodeURI,
	}, nil
}

// QRURL points the external QR service at the id. Nothing is fetched here.
func (g *Generator) QRURL(id string) string {
	return fmt.Sprintf("%s?text=%s&size=%d", g.qrBaseURL, url.QueryEscape(id), QRSize)
}

// RenderBarcode encodes text as a Code-128 PNG data URI
func RenderBarcode(text string) (string, error) {
	code, err := code128.Encode(text)
	if err != nil {
		return "", fmt.Errorf("failed to encode code128: %w", err)
	}

	width := code.Bounds().Dx() * BarcodeScale
	scaled, err := barcode.Scale(code, width, barcodeHeightPixels())
	if err != nil {
		return "", fmt.Errorf("failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("failed to encode barcode png: %w", err)
	}

	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// RenderQRPNG renders the QR payload locally, for clients that cannot reach the QR service
func RenderQRPNG(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = QRSize
	}
	data, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return data, nil
}

func barcodeHeightPixels() int {
	return int(math.Round(BarcodeHeightMM * 72 / 25.4 * BarcodeScale))
}
