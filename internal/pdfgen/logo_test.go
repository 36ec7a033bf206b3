package pdfgen

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLogoFetchNormalizesToJPEG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/media/business/logo.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(pngBytes(t))
	}))
	defer srv.Close()

	f := NewLogoFetcher(srv.URL)
	got := f.Fetch(context.Background(), "/media/business/logo.png")
	if got == nil {
		t.Fatal("expected logo bytes, got nil")
	}
	if _, err := jpeg.Decode(bytes.NewReader(got)); err != nil {
		t.Errorf("fetched logo is not valid JPEG: %v", err)
	}
}

func TestLogoFetchFailuresReturnNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/garbage":
			w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewLogoFetcher(srv.URL)
	ctx := context.Background()

	if got := f.Fetch(ctx, ""); got != nil {
		t.Error("empty URL should return nil")
	}
	if got := f.Fetch(ctx, "/missing.png"); got != nil {
		t.Error("404 should return nil")
	}
	if got := f.Fetch(ctx, "/garbage"); got != nil {
		t.Error("undecodable body should return nil")
	}
}
