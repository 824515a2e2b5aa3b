package drawing

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestImageDescriptor(t *testing.T) {
	s := mustNew(t, Sz(5, 3)) // 10x6 physical
	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	defer img.Release()

	want := Descriptor{
		Width:            10,
		Height:           6,
		BitsPerComponent: 8,
		BitsPerPixel:     32,
		BytesPerRow:      48,
		ColorSpace:       ColorSpaceDeviceRGB,
		AlphaInfo:        AlphaPremultipliedFirst,
		ByteOrder:        ByteOrder32Little,
	}
	if got := img.Descriptor(); got != want {
		t.Errorf("Descriptor() = %+v, want %+v", got, want)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 10, 6) {
		t.Errorf("Bounds() = %v, want %v", got, image.Rect(0, 0, 10, 6))
	}
	if got := len(img.Bytes()); got != s.Len() {
		t.Errorf("len(Bytes()) = %d, want %d", got, s.Len())
	}
}

// TestImageSharesBuffer verifies the export is a view: drawing after
// export is visible through the image.
func TestImageSharesBuffer(t *testing.T) {
	s := mustNew(t, Sz(4, 4), WithScale(1), WithClear(true))
	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	defer img.Release()

	if &img.Bytes()[0] != &s.pix[0] {
		t.Fatal("Image() copied the pixel buffer")
	}

	s.setPixel(1, 2, PackPixel(255, 9, 8, 7))
	if got, _ := img.PixelAt(1, 2); got != PackPixel(255, 9, 8, 7) {
		t.Errorf("img.PixelAt(1, 2) = %v, want %v", got, PackPixel(255, 9, 8, 7))
	}
	if got := img.At(1, 2); got != PackPixel(255, 9, 8, 7) {
		t.Errorf("img.At(1, 2) = %v, want %v", got, PackPixel(255, 9, 8, 7))
	}
}

func TestImageOutlivesSurface(t *testing.T) {
	s, err := New(Sz(3, 3), WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	s.setPixel(2, 2, PackPixel(128, 64, 32, 16))
	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	defer img.Release()

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got, ok := img.PixelAt(2, 2); !ok || got != PackPixel(128, 64, 32, 16) {
		t.Errorf("PixelAt after Close = %v, %v, want %v, true", got, ok, PackPixel(128, 64, 32, 16))
	}
}

func TestImageReleaseRecycles(t *testing.T) {
	// A layout no other test uses, so the pool bucket is private.
	s, err := New(Sz(37, 11), WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	n := s.Len()
	idle := bufferPool.Idle(n)

	a, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}

	_ = s.Close()
	a.Release()
	a.Release() // idempotent: must not drop b's reference
	if got := bufferPool.Idle(n); got != idle {
		t.Fatalf("buffer recycled while an image still holds it: idle = %d, want %d", got, idle)
	}
	if _, ok := b.PixelAt(0, 0); !ok {
		t.Error("b.PixelAt(0, 0) ok = false while b is live")
	}

	b.Release()
	if got := bufferPool.Idle(n); got != idle+1 {
		t.Errorf("idle after last release = %d, want %d", got, idle+1)
	}
	if a.Bytes() != nil || b.Bytes() != nil {
		t.Error("Bytes() non-nil after Release")
	}
	if _, ok := b.PixelAt(0, 0); ok {
		t.Error("PixelAt ok = true after Release")
	}
	if _, err := b.ToRGBA(); !errors.Is(err, ErrReleased) {
		t.Errorf("ToRGBA() after Release error = %v, want ErrReleased", err)
	}
}

func TestImageUnavailable(t *testing.T) {
	empty := mustNew(t, Sz(0, 10))
	if img, err := empty.Image(); !errors.Is(err, ErrNoImage) || img != nil {
		t.Errorf("empty Image() = %v, %v, want nil, ErrNoImage", img, err)
	}

	closed, err := New(Sz(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	_ = closed.Close()
	if img, err := closed.Image(); !errors.Is(err, ErrNoImage) || img != nil {
		t.Errorf("closed Image() = %v, %v, want nil, ErrNoImage", img, err)
	}

	// A failed export leaves the surface usable.
	empty.WithSink(func(c *Canvas) { c.Clear(color.White) })
}

func TestImageToRGBA(t *testing.T) {
	s := mustNew(t, Sz(2, 1), WithScale(1))
	s.setPixel(0, 0, PackPixel(255, 10, 20, 30))
	s.setPixel(1, 0, PackPixel(128, 100, 50, 0))
	img, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}
	defer img.Release()

	rgba, err := img.ToRGBA()
	if err != nil {
		t.Fatalf("ToRGBA() error = %v", err)
	}
	want := []byte{10, 20, 30, 255, 100, 50, 0, 128}
	if !bytes.Equal(rgba.Pix[:8], want) {
		t.Errorf("ToRGBA().Pix = %v, want %v", rgba.Pix[:8], want)
	}
}

func TestImageEncodePNG(t *testing.T) {
	s := mustNew(t, Sz(3, 2), WithScale(1), WithClear(true))
	s.WithSink(func(c *Canvas) {
		c.SetColor(color.RGBA{R: 255, A: 255})
		c.FillRect(0, 0, 3, 1)
	})
	img, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}
	defer img.Release()

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := decoded.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Fatalf("decoded bounds = %v, want %v", got, image.Rect(0, 0, 3, 2))
	}
	if r, _, _, a := decoded.At(1, 0).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("decoded (1,0) r=%#x a=%#x, want opaque red", r, a)
	}
	if _, _, _, a := decoded.At(1, 1).RGBA(); a != 0 {
		t.Errorf("decoded (1,1) a=%#x, want 0", a)
	}
}

func TestImageSavePNG(t *testing.T) {
	s := mustNew(t, Sz(2, 2), WithScale(1), WithClear(true))
	img, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}
	defer img.Release()

	path := filepath.Join(t.TempDir(), "out.png")
	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := img.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded, want error")
	}
}
