// Команда render читает точки из текстового файла или SVG, строит
// триангуляцию Делоне и сохраняет ее в PNG.
//
//	render points.txt -o out.png --circles
//	render --format=svg drawing.svg --imgcat
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0FACED/go-delaunay/internal/dbg"
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/pointset"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	input    string
	output   string
	format   string
	scale    float64
	circles  bool
	imgcat   bool
	verbose  bool
	validate bool
	dump     bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	app := kingpin.New("render", "Triangulate a point set and render it to PNG.")
	app.Arg("input", "Point file: 'x y' per line or SVG with <circle> elements. '-' reads stdin.").
		Default("-").StringVar(&cfg.input)
	app.Flag("output", "PNG file to write.").Short('o').Default("triangulation.png").StringVar(&cfg.output)
	app.Flag("format", "Input format; auto picks by file extension.").
		Default("auto").EnumVar(&cfg.format, "auto", "text", "svg")
	app.Flag("scale", "Pixels per unit; 0 fits the picture into 800px.").Default("0").Float64Var(&cfg.scale)
	app.Flag("circles", "Draw circumcircles.").BoolVar(&cfg.circles)
	app.Flag("imgcat", "Print the picture to an iTerm2-compatible terminal.").BoolVar(&cfg.imgcat)
	app.Flag("verbose", "Debug logging of every insertion.").Short('v').BoolVar(&cfg.verbose)
	app.Flag("validate", "Check the whole mesh after every insertion.").BoolVar(&cfg.validate)
	app.Flag("dump", "Print the mesh listing.").BoolVar(&cfg.dump)

	_, err := app.Parse(args)
	return cfg, err
}

func readPoints(cfg config, stdin io.Reader) ([]geom.Point, error) {
	in := stdin
	if cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}

	format := cfg.format
	if format == "auto" {
		format = "text"
		if strings.EqualFold(filepath.Ext(cfg.input), ".svg") {
			format = "svg"
		}
	}

	if format == "svg" {
		return pointset.ReadSVG(in)
	}
	return pointset.ReadText(in)
}

func run(cfg config, stdin io.Reader, stdout, stderr io.Writer) error {
	level := zapcore.InfoLevel
	if cfg.verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(stderr, level)
	defer log.Sync()

	points, err := readPoints(cfg, stdin)
	if err != nil {
		if len(points) == 0 {
			return err
		}
		// плохие строки пропускаем, остальное триангулируем
		for _, e := range multierr.Errors(err) {
			log.Warn("[render] Строка пропущена", zap.Error(e))
		}
	}

	tr := delaunay.New(delaunay.WithLogger(log), delaunay.WithValidation(cfg.validate))
	for _, p := range points {
		if err := tr.AddPoint(p); err != nil {
			return errors.Wrapf(err, "add %v", p)
		}
	}

	opts := render.Options{Scale: cfg.scale, Circles: cfg.circles}
	if err := render.SavePNG(cfg.output, tr, opts); err != nil {
		return err
	}

	pal := dbg.NewPalette(true)
	fmt.Fprintf(stdout, "%s points, %s triangles -> %s\n",
		pal.Count(tr.Len()), pal.Count(len(tr.Triangles())), pal.Finite(cfg.output))

	if cfg.dump {
		tr.DumpTo(stdout, true)
	}
	if cfg.imgcat {
		if err := imgcat.CatFile(cfg.output, stdout); err != nil {
			return errors.Wrap(err, "imgcat")
		}
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
