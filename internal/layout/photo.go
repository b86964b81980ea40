package layout

import (
	"bytes"
	"fmt"
	"image"

	// Registered so image.DecodeConfig recognizes the two supported formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/lmoreno/resume-wizard/internal/types"
)

// validatePhoto checks that the supplied bytes decode as PNG or JPEG.
// The image content itself is passed through to the renderer untouched;
// only the header is inspected here.
func validatePhoto(photo *types.Photo) error {
	if photo == nil || len(photo.Bytes) == 0 {
		return fmt.Errorf("no photo bytes")
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(photo.Bytes))
	if err != nil {
		return fmt.Errorf("photo does not decode: %w", err)
	}
	if format != "png" && format != "jpeg" {
		return fmt.Errorf("unsupported photo format %q", format)
	}
	return nil
}
