package convolve

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	img, err := New(10, 5, 3)
	if err != nil {
		t.Fatalf("New() = %v, want nil", err)
	}
	if img.Width() != 10 {
		t.Errorf("Width = %d, want 10", img.Width())
	}
	if img.Height() != 5 {
		t.Errorf("Height = %d, want 5", img.Height())
	}
	if img.Channels() != 3 {
		t.Errorf("Channels = %d, want 3", img.Channels())
	}
	if len(img.Data()) != 10*5*3 {
		t.Errorf("len(Data) = %d, want %d", len(img.Data()), 10*5*3)
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name     string
		w, h, ch int
		want     error
	}{
		{"zero width", 0, 5, 3, ErrInvalidDimensions},
		{"zero height", 5, 0, 3, ErrInvalidDimensions},
		{"negative width", -1, 5, 3, ErrInvalidDimensions},
		{"zero channels", 5, 5, 0, ErrInvalidChannels},
		{"five channels", 5, 5, 5, ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, tt.ch)
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%d, %d, %d) error = %v, want %v", tt.w, tt.h, tt.ch, err, tt.want)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 4*3*2)
	img, err := FromRaw(data, 4, 3, 2)
	if err != nil {
		t.Fatalf("FromRaw() = %v, want nil", err)
	}

	// FromRaw must wrap, not copy: writes through the image are visible
	// in the caller's buffer.
	img.Set(1, 2, 1, 99)
	if data[img.Index(1, 2, 1)] != 99 {
		t.Error("FromRaw copied the buffer instead of wrapping it")
	}
}

func TestFromRawTooSmall(t *testing.T) {
	data := make([]byte, 4*3*2-1)
	if _, err := FromRaw(data, 4, 3, 2); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("FromRaw() error = %v, want ErrDataTooSmall", err)
	}
}

func TestImageIndexAtSet(t *testing.T) {
	img, _ := New(4, 3, 2)

	if got := img.Index(2, 1, 1); got != (1*4+2)*2+1 {
		t.Errorf("Index(2,1,1) = %d, want %d", got, (1*4+2)*2+1)
	}

	img.Set(3, 2, 0, 42)
	if got := img.At(3, 2, 0); got != 42 {
		t.Errorf("At(3,2,0) = %d, want 42", got)
	}
}
