// Command poline prints a color palette generated from a set of anchor
// colors, as terminal swatches with hex and CSS values.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"honnef.co/go/poline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		anchors                         []string
		points                          int
		closed, inverted, triple        bool
		position                        string
		positionX, positionY, positionZ string
		shift                           float64
	)

	cmd := &cobra.Command{
		Use:   "poline",
		Short: "Generate smooth color palettes from anchor colors",
		Long: `Generate a smooth color palette by interpolating between anchor colors
on the HSL disk. Without anchors, a random harmonious pair (or triple,
with --triple) seeds the palette.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := poline.Options{
				NumPoints:         points,
				ClosedLoop:        closed,
				InvertedLightness: inverted,
			}

			for _, a := range anchors {
				c, err := colorful.Hex(a)
				if err != nil {
					return fmt.Errorf("anchor %q: %w", a, err)
				}
				h, s, l := c.Hsl()
				opts.AnchorColors = append(opts.AnchorColors, poline.HSL{H: h, S: s, L: l})
			}
			if len(opts.AnchorColors) == 0 && triple {
				opts.AnchorColors = poline.RandomHSLTriple()
			}

			var err error
			if opts.PositionFunction, err = lookupPosition(position); err != nil {
				return err
			}
			if opts.PositionFunctionX, err = lookupPosition(positionX); err != nil {
				return err
			}
			if opts.PositionFunctionY, err = lookupPosition(positionY); err != nil {
				return err
			}
			if opts.PositionFunctionZ, err = lookupPosition(positionZ); err != nil {
				return err
			}

			p, err := poline.New(opts)
			if err != nil {
				return err
			}
			if shift != 0 {
				p.ShiftHue(shift)
			}

			render(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&anchors, "anchors", "a", nil, "anchor colors as hex codes (e.g. #ff0000,#00ffff)")
	cmd.Flags().IntVarP(&points, "points", "p", 0, "interpolated points per segment (default 4)")
	cmd.Flags().BoolVar(&closed, "closed", false, "connect the last anchor back to the first")
	cmd.Flags().BoolVar(&inverted, "inverted", false, "measure lightness from the rim instead of the center")
	cmd.Flags().BoolVar(&triple, "triple", false, "seed with three random anchors instead of two")
	cmd.Flags().StringVar(&position, "position", "", "easing function for all axes (default sinusoidal)")
	cmd.Flags().StringVar(&positionX, "position-x", "", "easing function for the x axis")
	cmd.Flags().StringVar(&positionY, "position-y", "", "easing function for the y axis")
	cmd.Flags().StringVar(&positionZ, "position-z", "", "easing function for the z axis")
	cmd.Flags().Float64Var(&shift, "shift", 0, "shift every anchor's hue by this many degrees")

	return cmd
}

func lookupPosition(name string) (poline.PositionFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := poline.Positions[name]
	if !ok {
		return nil, fmt.Errorf("unknown position function %q (available: %s)",
			name, strings.Join(poline.PositionNames(), ", "))
	}
	return fn, nil
}

func render(w io.Writer, p *poline.Poline) {
	out := termenv.NewOutput(w)
	for _, c := range p.Colors() {
		hex := poline.HSLToRGB(c).Hex()
		swatch := out.String("        ").Background(termenv.RGBColor(hex))
		fmt.Fprintf(w, "%s  %s  %s\n", swatch, hex, c)
	}
}
