package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gen2brain/webp"
)

// Extension returns the file extension (without dot) for a format name.
func Extension(format string) string {
	switch format {
	case "webp":
		return "webp"
	case "jpeg":
		return "jpg"
	default:
		return "png"
	}
}

// Encode writes img to outPath in the specified format, creating parent
// directories as needed. Quality applies to lossy formats only. Nothing is
// left at outPath when encoding fails.
func Encode(img image.Image, outPath, format string, quality int) (err error) {
	var encode func(w io.Writer) error
	switch format {
	case "webp":
		encode = func(w io.Writer) error {
			if err := webp.Encode(w, img, webp.Options{Quality: quality}); err != nil {
				return fmt.Errorf("encoding webp: %w", err)
			}
			return nil
		}
	case "jpeg":
		encode = func(w io.Writer) error {
			if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
				return fmt.Errorf("encoding jpeg: %w", err)
			}
			return nil
		}
	case "png":
		encode = func(w io.Writer) error {
			enc := png.Encoder{CompressionLevel: png.BestCompression}
			if err := enc.Encode(w, img); err != nil {
				return fmt.Errorf("encoding png: %w", err)
			}
			return nil
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(outPath)
		}
	}()

	if err := encode(f); err != nil {
		return err
	}
	return f.Close()
}
