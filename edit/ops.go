package edit

import (
	"fmt"
	"strconv"
	"strings"

	"picedit/ascii"
	"picedit/palette"
	"picedit/picture"
)

// Step is one parsed operation of an edit chain.
type Step struct {
	// Spec is the text the step was parsed from.
	Spec  string
	apply func(*picture.Picture) (*picture.Picture, error)
}

// Apply runs the step on p.
func (s Step) Apply(p *picture.Picture) (*picture.Picture, error) {
	out, err := s.apply(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Spec, err)
	}
	return out, nil
}

type opSpec struct {
	name    string
	args    []string
	minArgs int
	help    string
	build   func(args []string) (func(*picture.Picture) (*picture.Picture, error), error)
}

func (o opSpec) usage() string {
	if len(o.args) == 0 {
		return o.name
	}
	return o.name + ":" + strings.Join(o.args, ",")
}

// total wraps an operation that cannot fail.
func total(fn func(*picture.Picture) *picture.Picture) func(*picture.Picture) (*picture.Picture, error) {
	return func(p *picture.Picture) (*picture.Picture, error) {
		return fn(p), nil
	}
}

func intOp(name, help string, fn func(*picture.Picture, int) *picture.Picture) opSpec {
	return opSpec{
		name:    name,
		args:    []string{"N"},
		minArgs: 1,
		help:    help,
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			n, err := atoi(name, "N", args[0])
			if err != nil {
				return nil, err
			}
			return total(func(p *picture.Picture) *picture.Picture { return fn(p, n) }), nil
		},
	}
}

// ops is the list of operations accepted by --op.
var ops = []opSpec{
	{
		name: "grayscale",
		help: "Replace every color by its gray average",
		build: func([]string) (func(*picture.Picture) (*picture.Picture, error), error) {
			return total((*picture.Picture).Grayscale), nil
		},
	},
	{
		name: "negate",
		help: "Invert red, green and blue",
		build: func([]string) (func(*picture.Picture) (*picture.Picture, error), error) {
			return total((*picture.Picture).Negate), nil
		},
	},
	intOp("lighten", "Add N to every color channel", (*picture.Picture).Lighten),
	intOp("darken", "Subtract N from every color channel", (*picture.Picture).Darken),
	intOp("red", "Add N to the red channel", (*picture.Picture).AddRed),
	intOp("green", "Add N to the green channel", (*picture.Picture).AddGreen),
	intOp("blue", "Add N to the blue channel", (*picture.Picture).AddBlue),
	intOp("rotate", "Rotate by N clockwise quarter turns, negative for counterclockwise", (*picture.Picture).Rotate),
	intOp("blur", "Box blur with radius N", (*picture.Picture).Blur),
	intOp("edges", "Black and white edge map with distance threshold N", (*picture.Picture).ShowEdges),
	{
		name:    "flip",
		args:    []string{"AXIS"},
		minArgs: 1,
		help:    "Mirror about horizontal, vertical, forward-diagonal or backward-diagonal",
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			axis, err := picture.ParseAxis(args[0])
			if err != nil {
				return nil, err
			}
			return func(p *picture.Picture) (*picture.Picture, error) { return p.Flip(axis) }, nil
		},
	},
	{
		name:    "chromakey",
		args:    []string{"X", "Y", "T", "BACKGROUND"},
		minArgs: 4,
		help:    "Replace colors within T of the pixel at X,Y by the BACKGROUND picture",
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			nums, err := atois("chromakey", args[:3], "X", "Y", "T")
			if err != nil {
				return nil, err
			}
			bg, _, err := picture.Load(args[3])
			if err != nil {
				return nil, fmt.Errorf("could not load chroma key background: %w", err)
			}
			return func(p *picture.Picture) (*picture.Picture, error) {
				return p.ChromaKey(nums[0], nums[1], bg, nums[2])
			}, nil
		},
	},
	{
		name:    "bucket",
		args:    []string{"X", "Y", "T", "COLOR"},
		minArgs: 4,
		help:    "Flood fill the region around X,Y within distance T with COLOR (#RRGGBB)",
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			nums, err := atois("bucket", args[:3], "X", "Y", "T")
			if err != nil {
				return nil, err
			}
			c, err := picture.ParseHex(args[3])
			if err != nil {
				return nil, err
			}
			return func(p *picture.Picture) (*picture.Picture, error) {
				return p.PaintBucket(nums[0], nums[1], nums[2], c)
			}, nil
		},
	},
	{
		name: "ascii",
		help: "Render as ASCII art",
		build: func([]string) (func(*picture.Picture) (*picture.Picture, error), error) {
			return total(ascii.Convert), nil
		},
	},
	{
		name:    "scale",
		args:    []string{"H"},
		minArgs: 1,
		help:    "Resample to height H keeping the aspect ratio",
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			h, err := atoi("scale", "H", args[0])
			if err != nil {
				return nil, err
			}
			return func(p *picture.Picture) (*picture.Picture, error) { return p.ScaleToHeight(h) }, nil
		},
	},
	{
		name:    "text",
		args:    []string{"X", "Y", "MESSAGE"},
		minArgs: 3,
		help:    "Write MESSAGE in white with its baseline starting at X,Y",
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			nums, err := atois("text", args[:2], "X", "Y")
			if err != nil {
				return nil, err
			}
			msg := args[2]
			return func(p *picture.Picture) (*picture.Picture, error) { return p.DrawText(msg, nums[0], nums[1]) }, nil
		},
	},
	{
		name:    "quantize",
		args:    []string{"PALETTE", "dither"},
		minArgs: 1,
		help:    "Map colors to a built-in palette or a PAL file, optionally dithered",
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			pal, err := palette.Load(args[0])
			if err != nil {
				return nil, err
			}
			dither := false
			if len(args) > 1 {
				if args[1] != "dither" {
					return nil, fmt.Errorf("%w: quantize option %q, want dither", picture.ErrInvalidArgument, args[1])
				}
				dither = true
			}
			return func(p *picture.Picture) (*picture.Picture, error) { return p.Quantize(pal, dither) }, nil
		},
	},
	{
		name:    "fill",
		args:    []string{"COLOR"},
		minArgs: 1,
		help:    "Paint every pixel with COLOR, keeping alpha",
		build: func(args []string) (func(*picture.Picture) (*picture.Picture, error), error) {
			c, err := picture.ParseHex(args[0])
			if err != nil {
				return nil, err
			}
			return total(func(p *picture.Picture) *picture.Picture { return p.Fill(c) }), nil
		},
	},
}

// ParseStep turns "name" or "name:arg,arg" into a step. The last argument
// takes the remainder of the text, commas included.
func ParseStep(spec string) (Step, error) {
	name, rest, hasArgs := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.ToLower(name)

	for _, op := range ops {
		if op.name != name {
			continue
		}

		var args []string
		if hasArgs && len(op.args) > 0 {
			args = strings.SplitN(rest, ",", len(op.args))
		} else if hasArgs {
			return Step{}, fmt.Errorf("%w: operation %q takes no arguments", picture.ErrInvalidArgument, name)
		}
		if len(args) < op.minArgs {
			return Step{}, fmt.Errorf("%w: operation %q needs %d arguments, usage: %s",
				picture.ErrInvalidArgument, name, op.minArgs, op.usage())
		}

		apply, err := op.build(args)
		if err != nil {
			return Step{}, fmt.Errorf("invalid operation %q: %w", spec, err)
		}
		return Step{Spec: spec, apply: apply}, nil
	}

	return Step{}, fmt.Errorf("%w: unknown operation %q", picture.ErrInvalidArgument, name)
}

// Usage describes every operation, one per line.
func Usage() string {
	var b strings.Builder
	for _, op := range ops {
		fmt.Fprintf(&b, "%-24s %s\n", op.usage(), op.help)
	}
	return b.String()
}

func atoi(op, arg, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s argument %s: %v", picture.ErrInvalidArgument, op, arg, err)
	}
	return n, nil
}

func atois(op string, values []string, names ...string) ([]int, error) {
	res := make([]int, len(values))
	for i, s := range values {
		n, err := atoi(op, names[i], s)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
