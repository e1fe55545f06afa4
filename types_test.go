package chemops

import (
	"errors"
	"testing"
)

func TestDefaultProtonationOptions(t *testing.T) {
	opts := DefaultProtonationOptions()
	if opts.InputFormat != FormatInChI || opts.OutputFormat != FormatInChI {
		t.Errorf("formats = %q/%q, want inchi/inchi", opts.InputFormat, opts.OutputFormat)
	}
	if opts.PH != DefaultPH {
		t.Errorf("PH = %v, want %v", opts.PH, DefaultPH)
	}
	if opts.MajorTautomer || opts.KeepHydrogens {
		t.Errorf("unexpected flags: %+v", opts)
	}
}

func TestProtonationOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    ProtonationOptions
		wantErr error
	}{
		{"valid", DefaultProtonationOptions(), nil},
		{"no input format", ProtonationOptions{OutputFormat: FormatSMILES}, ErrEmptyFormat},
		{"no output format", ProtonationOptions{InputFormat: FormatSMILES}, ErrEmptyFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDepictionInput_Normalized(t *testing.T) {
	in := DepictionInput{Structure: "x", Format: FormatSMILES}.normalized()

	if in.ImageFormat != ImageSVG {
		t.Errorf("ImageFormat = %q, want svg", in.ImageFormat)
	}
	if in.Width != DefaultImageWidth || in.Height != DefaultImageHeight {
		t.Errorf("size = %dx%d, want defaults", in.Width, in.Height)
	}
	if in.LabelFontSize != DefaultLabelFontSize {
		t.Errorf("LabelFontSize = %v, want %v", in.LabelFontSize, DefaultLabelFontSize)
	}
}

func TestDepictionInput_NormalizedKeepsExplicit(t *testing.T) {
	in := DepictionInput{
		Structure:     "x",
		Format:        FormatSMILES,
		ImageFormat:   ImagePNG,
		Width:         100,
		Height:        50,
		LabelFontSize: 1.2,
	}.normalized()

	if in.ImageFormat != ImagePNG || in.Width != 100 || in.Height != 50 || in.LabelFontSize != 1.2 {
		t.Errorf("normalized overwrote explicit values: %+v", in)
	}
}

func TestIsValidImageFormat(t *testing.T) {
	for _, format := range []string{ImageSVG, ImagePNG, ImageJPEG, ImagePDF, ImageEPS, ImageEMF, ImageMSBMP} {
		if !isValidImageFormat(format) {
			t.Errorf("isValidImageFormat(%q) = false, want true", format)
		}
	}
	for _, format := range []string{"", "tiff", "SVG", "bmp"} {
		if isValidImageFormat(format) {
			t.Errorf("isValidImageFormat(%q) = true, want false", format)
		}
	}
}
