package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ErrUnknownFormat indicates an output format Render cannot produce.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Format is an output image format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	FormatDOT Format = "dot"
)

// ParseFormat accepts a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG, FormatJPG, FormatDOT:
		return f, nil
	case "jpeg":
		return FormatJPG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) graphviz() graphviz.Format {
	switch f {
	case FormatPNG:
		return graphviz.PNG
	case FormatJPG:
		return graphviz.JPG
	case FormatDOT:
		return graphviz.XDOT
	default:
		return graphviz.SVG
	}
}

// Render lays out dot with neato and writes it to w in format f. FormatDOT
// writes dot unchanged.
func Render(ctx context.Context, dot []byte, f Format, w io.Writer) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if f == FormatDOT {
		_, err := w.Write(dot)

		return err
	}

	gv := graphviz.New()
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return fmt.Errorf("render: parse: %w", err)
	}
	defer graph.Close()

	if err := gv.Render(graph, f.graphviz(), w); err != nil {
		return fmt.Errorf("render: %s: %w", f, err)
	}

	return nil
}
