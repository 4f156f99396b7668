// Command spriteops compiles a spriteops document into a sprite sheet,
// optional per-frame PNGs, an optional animated GIF, and a metadata
// sidecar. Argument parsing and file I/O live entirely here — the
// spriteforge package itself never touches a filesystem path.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bloomberg-sudo-dev/spriteforge"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "spriteops:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("spriteops", flag.ContinueOnError)
	scale := fs.Int("scale", 1, "integer nearest-neighbour scale factor")
	strict := fs.Bool("strict", false, "enable strict validation")
	grid := fs.Int("grid-columns", 0, "grid sheet column count (0 = horizontal strip)")
	gifOut := fs.Bool("gif", false, "also export an animated GIF")
	frames := fs.Bool("frames", false, "also export one PNG per frame")
	out := fs.String("out", ".", "output directory")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: spriteops [flags] <document.json>")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := spriteforge.Load(f)
	if err != nil {
		return err
	}

	if diags := spriteforge.Validate(doc, *strict); len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return fmt.Errorf("%d validation diagnostic(s)", len(diags))
	}

	layout := spriteforge.LayoutHorizontal
	if *grid > 0 {
		layout = spriteforge.LayoutGrid
	}

	output, err := spriteforge.RenderSprite(doc,
		spriteforge.WithScale(*scale),
		spriteforge.WithLayout(layout),
		spriteforge.WithColumns(*grid),
		spriteforge.WithStrict(*strict),
		spriteforge.WithGIF(*gifOut),
		spriteforge.WithFrameExport(*frames),
	)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	sheetPath := filepath.Join(*out, doc.Name+"_sheet.png")
	if err := writePNG(sheetPath, output.Sheet); err != nil {
		return err
	}

	if *frames {
		for i, img := range output.Frames {
			p := filepath.Join(*out, doc.Name+"_frame"+strconv.Itoa(i)+".png")
			if err := writePNG(p, img); err != nil {
				return err
			}
		}
	}

	if *gifOut && output.GIF != nil {
		gifPath := filepath.Join(*out, doc.Name+".gif")
		if err := os.WriteFile(gifPath, output.GIF, 0o644); err != nil {
			return err
		}
	}

	metaPath := filepath.Join(*out, doc.Name+"_meta.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return err
	}
	defer metaFile.Close()
	return output.Metadata.Encode(metaFile)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
