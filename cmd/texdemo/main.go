// Command texdemo composes a small expression from font glyphs,
// anti-aliases it and writes the result as a PNG.
//
//	texdemo -font goregular -size 32 -smash -output demo.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/texraster"
	"github.com/gogpu/texraster/aa"
	"github.com/gogpu/texraster/glyph"
	"github.com/gogpu/texraster/palette"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func main() {
	var (
		fontName  = flag.String("font", "basic", "glyph face: basic or goregular")
		size      = flag.Float64("size", 24, "goregular size in pixels")
		algorithm = flag.String("aa", "pattern", "anti-aliasing: pattern, lowpass, pnm or none")
		gamma     = flag.Float64("gamma", palette.DefaultGamma, "palette gamma (1 disables)")
		smash     = flag.Bool("smash", false, "kern operands optically")
		magnify   = flag.Int("magnify", 1, "integer magnification before anti-aliasing")
		output    = flag.String("output", "texdemo.png", "output file")
		verbose   = flag.Bool("v", false, "log compositing steps")
	)
	flag.Parse()

	if *verbose {
		texraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	face, err := loadFace(*fontName, *size)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer face.Close()

	alg, err := aa.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatalf("Invalid -aa: %v", err)
	}

	src, err := glyph.NewSource(face)
	if err != nil {
		log.Fatal(err)
	}
	c := texraster.NewComposer(texraster.WithSmash(*smash))

	expr, err := buildExpression(c, src)
	if err != nil {
		log.Fatalf("Failed to compose: %v", err)
	}
	defer expr.Release()

	bitmap := expr.Image()
	if *magnify > 1 {
		if bitmap, err = bitmap.Magnify(*magnify); err != nil {
			log.Fatal(err)
		}
	}

	var stats aa.Stats
	bytemap, err := aa.Antialias(bitmap, aa.NewConfig(aa.WithAlgorithm(alg)), &stats)
	if err != nil {
		log.Fatalf("Failed to anti-alias: %v", err)
	}
	pal, err := palette.Build(bytemap, palette.WithRescale(true), palette.WithGamma(*gamma))
	if err != nil {
		log.Fatal(err)
	}

	if err := writePNG(*output, pal); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d colors, %d followed pixels)\n",
		*output, pal.Width, pal.Height, len(pal.Colors), stats.Followed)
}

func loadFace(name string, size float64) (font.Face, error) {
	switch name {
	case "basic":
		return basicfont.Face7x13, nil
	case "goregular":
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	default:
		return nil, fmt.Errorf("unknown font %q", name)
	}
}

// buildExpression lays out (a+b)/c = x with the fraction drawn as a
// numerator stacked over a rule over a denominator.
func buildExpression(c texraster.Composer, src *glyph.Source) (*texraster.Subraster, error) {
	num, err := row(c, src, "(a+b)")
	if err != nil {
		return nil, err
	}
	den, err := row(c, src, "c")
	if err != nil {
		num.Release()
		return nil, err
	}

	width := max(num.Width(), den.Width()) + 2
	rule, err := texraster.NewSubraster(width, 1, 1)
	if err != nil {
		num.Release()
		den.Release()
		return nil, err
	}
	rule.Image().FillRect(0, 0, width, 1)

	top, err := c.Stack(rule, num, texraster.BaselineLower, 1, true, texraster.ReleaseBoth)
	if err != nil {
		rule.Release()
		num.Release()
		den.Release()
		return nil, err
	}
	frac, err := c.Stack(den, top, texraster.BaselineUpper, 1, true, texraster.ReleaseBoth)
	if err != nil {
		top.Release()
		den.Release()
		return nil, err
	}
	frac.Kind = texraster.KindFraction

	rest, err := row(c, src, "=x")
	if err != nil {
		frac.Release()
		return nil, err
	}
	expr, err := c.Concatenate(frac, rest, texraster.ReleaseBoth)
	if err != nil {
		frac.Release()
		rest.Release()
		return nil, err
	}

	// Frame the result with a one pixel margin.
	framed, err := texraster.NewSubraster(expr.Width()+4, expr.Height()+4, 1)
	if err != nil {
		expr.Release()
		return nil, err
	}
	framed.Image().Frame(1)
	out, err := c.Compose(framed, expr, 0, false, texraster.ReleaseBoth)
	if err != nil {
		framed.Release()
		expr.Release()
		return nil, err
	}
	return out, nil
}

// row concatenates the glyphs of text with math spacing.
func row(c texraster.Composer, src *glyph.Source, text string) (*texraster.Subraster, error) {
	var out *texraster.Subraster
	for _, r := range text {
		sp, err := src.Character(r)
		if err != nil {
			if out != nil {
				out.Release()
			}
			return nil, err
		}
		if out == nil {
			out = sp
			continue
		}
		next, err := c.Concatenate(out, sp, texraster.ReleaseBoth)
		if err != nil {
			out.Release()
			sp.Release()
			return nil, err
		}
		out = next
	}
	return out, nil
}

func writePNG(path string, pal *palette.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, pal.Paletted(true)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
