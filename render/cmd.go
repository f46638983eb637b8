package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"asciify/palette"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Image    string          `arg:"" help:"Image file to convert."`
	Width    int             `short:"l" help:"Target width of the art in characters" default:"80"`
	Inverted bool            `short:"i" help:"Reverse the palette so light pixels render as dense characters" default:"false"`
	Palette  string          `short:"p" help:"Palette name (classic, blocks, minimal) or a file holding a custom character ramp" default:"classic"`
	Output   string          `short:"o" help:"Write the art to this file instead of standard output"`
	Ramp     palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Width <= 0 {
		return fmt.Errorf("invalid width: %d", c.Width)
	}

	ramp, err := palette.Load(c.Palette)
	if err != nil {
		return err
	}
	if c.Inverted {
		ramp = ramp.Reversed()
	}
	c.Ramp = ramp

	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Image)

	imgFile, err := os.Open(c.Image)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not find image %q: %w", c.Image, err)
		}
		return fmt.Errorf("could not open image %q: %w", c.Image, err)
	}
	defer func() {
		if close_err := imgFile.Close(); close_err != nil {
			logger.Error("could not close image", "error", close_err)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image %q: %w", c.Image, err)
	}
	logger.Info("decoded", "format", imgType, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	art := Render(logger, img, c.Width, c.Ramp)

	if c.Output != "" {
		return save(logger, c.Output, art)
	}

	// The art already ends in a newline, the second one leaves a blank
	// line under it.
	if _, err = io.WriteString(os.Stdout, art+"\n"); err != nil {
		return fmt.Errorf("could not write art: %w", err)
	}
	return nil
}

func save(logger *slog.Logger, dest, art string) (err error) {
	outFile, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", dest, err)
	}
	defer func() {
		if defErr := outFile.Sync(); defErr != nil {
			err = fmt.Errorf("could not flush destination file %q: %w", dest, defErr)
		}
		if defErr := outFile.Close(); defErr != nil {
			err = fmt.Errorf("could not close destination file %q: %w", dest, defErr)
		}
	}()

	logger.Info("saving", "dest", dest)
	if _, err = io.WriteString(outFile, art); err != nil {
		return fmt.Errorf("could not write destination file %q: %w", dest, err)
	}
	return err
}
