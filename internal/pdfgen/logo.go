package pdfgen

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"
)

const jpegQuality = 80

// LogoFetcher downloads a business logo and normalizes it to JPEG so the
// renderer only ever embeds one format. All failures are swallowed: a
// document without a logo is always preferable to no document.
type LogoFetcher struct {
	baseURL string
	client  *http.Client
}

// NewLogoFetcher builds a fetcher. baseURL is prepended to relative logo
// paths served by the upstream media host.
func NewLogoFetcher(baseURL string) *LogoFetcher {
	return &LogoFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch returns the logo as JPEG bytes, or nil when the logo is absent or
// cannot be fetched or decoded.
func (f *LogoFetcher) Fetch(ctx context.Context, logoURL string) []byte {
	if logoURL == "" {
		return nil
	}
	if !strings.HasPrefix(logoURL, "http://") && !strings.HasPrefix(logoURL, "https://") {
		logoURL = f.baseURL + "/" + strings.TrimLeft(logoURL, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoURL, nil)
	if err != nil {
		return nil
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil
	}
	return buf.Bytes()
}
