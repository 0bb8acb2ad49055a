package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFrameName(t *testing.T) {
	tests := []struct {
		name          string
		frame, frames int
		want          string
	}{
		{"out.png", 0, 1, "out.png"},
		{"out.png", 0, 2, "out-0000.png"},
		{"dir/out.png", 12, 20, "dir/out-0012.png"},
		{"out", 3, 5, "out-0003"},
	}

	for _, test := range tests {
		if got := frameName(test.name, test.frame, test.frames); got != test.want {
			t.Errorf("frameName(%q, %d, %d) = %q, want %q", test.name, test.frame, test.frames, got, test.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		Width:       32,
		Height:      16,
		Save:        filepath.Join(dir, "field.png"),
		Frames:      3,
		FPS:         10,
		Supersample: 2,
	}

	if err := save(context.Background(), opts, 0); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		name := frameName(opts.Save, i, opts.Frames)
		file, err := os.Open(name)
		if err != nil {
			t.Fatal(err)
		}

		img, err := png.Decode(file)
		file.Close()
		if err != nil {
			t.Fatalf("decoding %v: %v", name, err)
		}
		if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
			t.Errorf("%v is %v, want 32x16", name, img.Bounds())
		}
	}
}

func TestSaveBadPath(t *testing.T) {
	opts := Options{
		Width:       4,
		Height:      4,
		Save:        filepath.Join(t.TempDir(), "missing", "field.png"),
		Frames:      1,
		FPS:         1,
		Supersample: 1,
	}

	if err := save(context.Background(), opts, 0); err == nil {
		t.Error("save into a missing directory succeeded")
	}
}
