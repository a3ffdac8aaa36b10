package latex

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// DefaultDPI is the rasterization resolution when none is configured.
const DefaultDPI = 300

// cropMargin is the background border kept around cropped content, in
// pixels, so strokes at the edge do not touch the image border.
const cropMargin = 8

// PNGOptions control PDF rasterization.
type PNGOptions struct {
	// DPI is the render resolution. Zero means DefaultDPI.
	DPI int

	// Crop trims the uniform background margin around the drawing.
	Crop bool

	// MaxWidth scales the result down to at most this many pixels
	// wide, preserving aspect ratio. Zero keeps the rendered size.
	MaxWidth int
}

func (o *PNGOptions) setDefaults() {
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
}

// PDFToPNG rasterizes the first page of a PDF with pdftoppm and
// post-processes the bitmap according to opts.
func PDFToPNG(ctx context.Context, pdf []byte, opts PNGOptions) ([]byte, error) {
	opts.setDefaults()
	pdftoppm, err := findPdftoppm()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(os.TempDir(), "tikzgo-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create scratch dir")
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, jobName+".pdf")
	if err := os.WriteFile(pdfPath, pdf, 0600); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write PDF")
	}

	cmd := exec.CommandContext(ctx, pdftoppm,
		"-png", "-singlefile", "-r", strconv.Itoa(opts.DPI),
		pdfPath, filepath.Join(dir, jobName))

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeConvertFailed, err,
			"pdftoppm: %s", strings.TrimSpace(stderr.String()))
	}

	data, err := os.ReadFile(filepath.Join(dir, jobName+".png"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvertFailed, err, "read rendered PNG")
	}

	if !opts.Crop && opts.MaxWidth == 0 {
		return data, nil
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvertFailed, err, "decode PNG")
	}

	if opts.Crop {
		img = cropBackground(img, cropMargin)
	}
	if opts.MaxWidth > 0 {
		img = scaleToWidth(img, opts.MaxWidth)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvertFailed, err, "encode PNG")
	}
	return buf.Bytes(), nil
}

// cropBackground trims the uniform border around the drawing, keeping
// a margin of background pixels. The background color is sampled from
// the top-left corner. Images that are entirely background are
// returned unchanged.
func cropBackground(img image.Image, margin int) image.Image {
	b := img.Bounds()
	background := img.At(b.Min.X, b.Min.Y)

	content := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if sameColor(img.At(x, y), background) {
				continue
			}
			if x < content.Min.X {
				content.Min.X = x
			}
			if y < content.Min.Y {
				content.Min.Y = y
			}
			if x+1 > content.Max.X {
				content.Max.X = x + 1
			}
			if y+1 > content.Max.Y {
				content.Max.Y = y + 1
			}
		}
	}
	if content.Empty() {
		return img
	}

	content = content.Inset(-margin).Intersect(b)
	out := image.NewRGBA(image.Rect(0, 0, content.Dx(), content.Dy()))
	xdraw.Draw(out, out.Bounds(), img, content.Min, xdraw.Src)
	return out
}

// scaleToWidth shrinks an image to at most maxWidth pixels wide using
// Catmull-Rom resampling. Images already narrow enough pass through.
func scaleToWidth(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	height := b.Dy() * maxWidth / b.Dx()
	if height < 1 {
		height = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
