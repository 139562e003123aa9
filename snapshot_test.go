package thicklines

import (
	"bytes"
	"testing"
)

// TestSnapshotRoundTripExact verifies the blob codec is lossless at the byte
// level, fractional alpha included.
func TestSnapshotRoundTripExact(t *testing.T) {
	p := NewPixmap(16, 16)
	p.FillCircle(8, 8, 5, RGBA{R: 0.8, G: 0.2, B: 0.4, A: 0.6}, BlendNormal)
	p.SetPixel(0, 0, RGBA{R: 1, G: 1, B: 0, A: 0.5})

	blob, err := encodeSnapshot(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeSnapshot(blob)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 16 || got.Height() != 16 {
		t.Fatalf("decoded %dx%d, want 16x16", got.Width(), got.Height())
	}
	if !bytes.Equal(p.Data(), got.Data()) {
		t.Error("decoded bytes differ from source")
	}
}

func TestSnapshotRoundTripBlank(t *testing.T) {
	p := NewPixmap(8, 8)
	blob, err := encodeSnapshot(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeSnapshot(blob)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(p.Data(), got.Data()) {
		t.Error("blank canvas did not round-trip")
	}
}

func TestDecodeSnapshotGarbage(t *testing.T) {
	if _, err := decodeSnapshot([]byte("not a raster blob")); err == nil {
		t.Error("garbage blob decoded without error")
	}
}

func TestDecodeAsyncResolves(t *testing.T) {
	a := NewPixmap(4, 4)
	a.SetPixel(2, 2, Red)
	b := NewPixmap(4, 4)
	b.SetPixel(1, 3, Blue)
	blobA, err := encodeSnapshot(a)
	if err != nil {
		t.Fatal(err)
	}
	blobB, err := encodeSnapshot(b)
	if err != nil {
		t.Fatal(err)
	}

	fut := decodeAsync([][]byte{blobA, blobB}, 7)
	got, err := fut.await()
	if err != nil {
		t.Fatal(err)
	}
	if fut.gen != 7 {
		t.Errorf("gen = %d, want 7", fut.gen)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d pixmaps, want 2", len(got))
	}
	if !bytes.Equal(a.Data(), got[0].Data()) || !bytes.Equal(b.Data(), got[1].Data()) {
		t.Error("async decode differs from source")
	}

	// await is idempotent on a resolved future.
	again, err := fut.await()
	if err != nil || again[0] != got[0] {
		t.Error("second await returned a different result")
	}
}

func TestDecodeAsyncError(t *testing.T) {
	fut := decodeAsync([][]byte{{0, 1, 2}}, 1)
	if _, err := fut.await(); err == nil {
		t.Error("async decode of garbage resolved without error")
	}
}
