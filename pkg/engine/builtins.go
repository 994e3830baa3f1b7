package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/isomarch/pkg/kernel"
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/volume"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites job-script source into something zygomys
// accepts:
//
//  1. :keyword becomes the string literal "__kw_keyword", so keywords need
//     no global bindings.
//  2. kebab-case identifiers become snake_case (raw-volume -> raw_volume);
//     zygomys reads a bare hyphen as subtraction.
//  3. ; line comments become // comments.
//
// String literals pass through untouched.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)

	b := []byte(source)
	for i := 0; i < len(b); {
		switch c := b[i]; {
		case c == '"':
			i = copyQuoted(&out, b, i, '"', true)
		case c == '`':
			i = copyQuoted(&out, b, i, '`', false)
		case c == ';':
			for i < len(b) && b[i] == ';' {
				i++
			}
			out.WriteString("//")
			for i < len(b) && b[i] != '\n' {
				out.WriteByte(b[i])
				i++
			}
		case c == ':' && i+1 < len(b) && b[i+1] == '=':
			out.WriteString(":=")
			i += 2
		case c == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out.WriteByte('"')
			out.WriteString(kwPrefix)
			out.Write(b[i+1 : j])
			out.WriteByte('"')
			i = j
		case c == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			out.WriteByte('_')
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// copyQuoted copies the literal starting at b[start] up to and including
// its closing quote and returns the index after it.
func copyQuoted(out *strings.Builder, b []byte, start int, quote byte, escapes bool) int {
	out.WriteByte(quote)
	i := start + 1
	for i < len(b) && b[i] != quote {
		if escapes && b[i] == '\\' && i+1 < len(b) {
			out.Write(b[i : i+2])
			i += 2
			continue
		}
		out.WriteByte(b[i])
		i++
	}
	if i < len(b) {
		out.WriteByte(quote)
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpVec3 carries a triple of numbers between builtins.
type sexpVec3 struct {
	vec [3]float64
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec[0], v.vec[1], v.vec[2])
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpSolid wraps a kernel solid.
type sexpSolid struct {
	solid kernel.Solid
	desc  string
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	return "(" + s.desc + ")"
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Argument parsing
// ---------------------------------------------------------------------------

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds a parsed mixed positional and keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs splits args into keyword and positional arguments. A keyword
// in last position is recorded with a null value.
func parseArgs(args []zygo.Sexp) kwArgs {
	pa := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			pa.positional = append(pa.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			pa.kw[name] = args[i+1]
			i++
		} else {
			pa.kw[name] = zygo.SexpNull
		}
	}
	return pa
}

// float looks up a numeric keyword, falling back to the positional
// argument at pos (if pos >= 0). ok is false when neither is present.
func (pa kwArgs) float(key string, pos int) (f float64, ok bool, err error) {
	s, found := pa.kw[key]
	if !found && pos >= 0 && pos < len(pa.positional) {
		s, found = pa.positional[pos], true
	}
	if !found {
		return 0, false, nil
	}
	f, err = toFloat64(s)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %w", key, err)
	}
	return f, true, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toInt(s zygo.Sexp) (int, error) {
	f, err := toFloat64(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("expected integer, got %g", f)
	}
	return int(f), nil
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString accepts a preprocessed keyword (:serial) or a plain
// string ("serial").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

func toVec3(s zygo.Sexp) ([3]float64, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return [3]float64{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toDims converts a vec3 of whole numbers into grid dimensions.
func toDims(s zygo.Sexp) (volume.Dims, error) {
	v, err := toVec3(s)
	if err != nil {
		return volume.Dims{}, err
	}
	var n [3]int
	for a, f := range v {
		if f != math.Trunc(f) || f < 1 {
			return volume.Dims{}, fmt.Errorf("dimensions must be positive integers, got %s", s.SexpString(nil))
		}
		n[a] = int(f)
	}
	return volume.Dims{X: n[0], Y: n[1], Z: n[2]}, nil
}

func toSolid(s zygo.Sexp) (*sexpSolid, error) {
	if sol, ok := s.(*sexpSolid); ok {
		return sol, nil
	}
	return nil, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the job-script builtins into env. Settings
// builtins write into job; shape builtins build solids with k.
//
// Source must be run through preprocessSource first: kebab-case builtin
// names are registered in their snake_case form.
func registerBuiltins(env *zygo.Zlisp, k kernel.Kernel, job *Job) {
	registerSettings(env, job)
	registerShapes(env, k, job)
}

func registerSettings(env *zygo.Zlisp, job *Job) {

	// -----------------------------------------------------------------------
	// (raw-volume "head.raw" :dims (vec3 256 256 113))
	// -----------------------------------------------------------------------
	env.AddFunction("raw_volume", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("raw-volume requires a path argument")
		}
		path, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("raw-volume: path: %w", err)
		}
		v, ok := pa.kw["dims"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("raw-volume: missing :dims")
		}
		dims, err := toDims(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("raw-volume: dims: %w", err)
		}
		job.VolumePath = path
		job.Dims = dims
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (isovalue 80)
	// -----------------------------------------------------------------------
	env.AddFunction("isovalue", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("isovalue requires exactly 1 argument, got %d", len(args))
		}
		f, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("isovalue: %w", err)
		}
		job.Isovalue = float32(f)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (exec-mode :serial)
	// -----------------------------------------------------------------------
	env.AddFunction("exec_mode", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("exec-mode requires exactly 1 argument, got %d", len(args))
		}
		s, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("exec-mode: %w", err)
		}
		m, err := parallel.ParseMode(s)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("exec-mode: %w", err)
		}
		job.Mode = m
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (benchmark 20 200 :iters 100 :seed 7)
	// -----------------------------------------------------------------------
	env.AddFunction("benchmark", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("benchmark requires low and high isovalues")
		}
		lo, err := toFloat64(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("benchmark: low: %w", err)
		}
		hi, err := toFloat64(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("benchmark: high: %w", err)
		}
		cfg := job.Bench
		cfg.Low, cfg.High = float32(lo), float32(hi)
		if cfg.Iterations < 2 {
			cfg.Iterations = 100
		}
		if v, ok := pa.kw["iters"]; ok {
			if cfg.Iterations, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("benchmark: iters: %w", err)
			}
		}
		if v, ok := pa.kw["seed"]; ok {
			seed, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("benchmark: seed: %w", err)
			}
			cfg.Seed = int64(seed)
		}
		if err := cfg.Validate(); err != nil {
			return zygo.SexpNull, err
		}
		job.Bench = cfg
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (output-obj "head.obj") and (output-stl "head.stl")
	// -----------------------------------------------------------------------
	for _, out := range []struct {
		name string
		dst  *string
	}{
		{"output_obj", &job.Output},
		{"output_stl", &job.STL},
	} {
		env.AddFunction(out.name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			display := strings.ReplaceAll(out.name, "_", "-")
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires a path argument", display)
			}
			path, err := toString(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", display, err)
			}
			*out.dst = path
			return zygo.SexpNull, nil
		})
	}

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var v sexpVec3
		for a, arg := range args {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %c: %w", "xyz"[a], err)
			}
			v.vec[a] = f
		}
		return &v, nil
	})
}

func registerShapes(env *zygo.Zlisp, k kernel.Kernel, job *Job) {
	// shape wraps a solid constructor so a missing kernel is reported
	// instead of dereferenced.
	shape := func(label string, fn func(pa kwArgs) (*sexpSolid, error)) {
		env.AddFunction(label, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			display := strings.ReplaceAll(label, "_", "-")
			if k == nil {
				return zygo.SexpNull, fmt.Errorf("%s: no geometry kernel configured", display)
			}
			s, err := fn(parseArgs(args))
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", display, err)
			}
			return s, nil
		})
	}

	// (sphere 10) or (sphere :radius 10)
	shape("sphere", func(pa kwArgs) (*sexpSolid, error) {
		r, ok, err := pa.float("radius", 0)
		if err != nil {
			return nil, err
		}
		if !ok || r <= 0 {
			return nil, fmt.Errorf("needs a positive radius")
		}
		return &sexpSolid{solid: k.Sphere(r), desc: fmt.Sprintf("sphere %g", r)}, nil
	})

	// (box 10 20 30) or (box :size (vec3 10 20 30))
	shape("box", func(pa kwArgs) (*sexpSolid, error) {
		var size [3]float64
		if v, ok := pa.kw["size"]; ok {
			var err error
			if size, err = toVec3(v); err != nil {
				return nil, fmt.Errorf("size: %w", err)
			}
		} else {
			if len(pa.positional) != 3 {
				return nil, fmt.Errorf("needs 3 extents or :size")
			}
			for a, arg := range pa.positional {
				f, err := toFloat64(arg)
				if err != nil {
					return nil, err
				}
				size[a] = f
			}
		}
		if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
			return nil, fmt.Errorf("extents must be positive")
		}
		return &sexpSolid{
			solid: k.Box(size[0], size[1], size[2]),
			desc:  fmt.Sprintf("box %g %g %g", size[0], size[1], size[2]),
		}, nil
	})

	// (cylinder :height 20 :radius 5)
	shape("cylinder", func(pa kwArgs) (*sexpSolid, error) {
		h, okH, err := pa.float("height", 0)
		if err != nil {
			return nil, err
		}
		r, okR, err := pa.float("radius", 1)
		if err != nil {
			return nil, err
		}
		if !okH || !okR || h <= 0 || r <= 0 {
			return nil, fmt.Errorf("needs a positive height and radius")
		}
		return &sexpSolid{solid: k.Cylinder(h, r), desc: fmt.Sprintf("cylinder %g %g", h, r)}, nil
	})

	// (union a b ...), (intersection a b ...), (difference a b ...)
	booleans := []struct {
		name string
		op   func(a, b kernel.Solid) kernel.Solid
	}{
		{"union", func(a, b kernel.Solid) kernel.Solid { return k.Union(a, b) }},
		{"intersection", func(a, b kernel.Solid) kernel.Solid { return k.Intersection(a, b) }},
		{"difference", func(a, b kernel.Solid) kernel.Solid { return k.Difference(a, b) }},
	}
	for _, b := range booleans {
		shape(b.name, func(pa kwArgs) (*sexpSolid, error) {
			if len(pa.positional) < 2 {
				return nil, fmt.Errorf("needs at least 2 solids, got %d", len(pa.positional))
			}
			acc, err := toSolid(pa.positional[0])
			if err != nil {
				return nil, err
			}
			descs := []string{"(" + acc.desc + ")"}
			s := acc.solid
			for _, arg := range pa.positional[1:] {
				next, err := toSolid(arg)
				if err != nil {
					return nil, err
				}
				s = b.op(s, next.solid)
				descs = append(descs, "("+next.desc+")")
			}
			return &sexpSolid{solid: s, desc: b.name + " " + strings.Join(descs, " ")}, nil
		})
	}

	// (translate s (vec3 1 2 3)) and (rotate s (vec3 0 90 0))
	transforms := []struct {
		name string
		op   func(s kernel.Solid, x, y, z float64) kernel.Solid
	}{
		{"translate", func(s kernel.Solid, x, y, z float64) kernel.Solid { return k.Translate(s, x, y, z) }},
		{"rotate", func(s kernel.Solid, x, y, z float64) kernel.Solid { return k.Rotate(s, x, y, z) }},
	}
	for _, tr := range transforms {
		shape(tr.name, func(pa kwArgs) (*sexpSolid, error) {
			if len(pa.positional) != 2 {
				return nil, fmt.Errorf("needs a solid and a vec3")
			}
			s, err := toSolid(pa.positional[0])
			if err != nil {
				return nil, err
			}
			v, err := toVec3(pa.positional[1])
			if err != nil {
				return nil, err
			}
			return &sexpSolid{
				solid: tr.op(s.solid, v[0], v[1], v[2]),
				desc:  fmt.Sprintf("%s (%s) %g %g %g", tr.name, s.desc, v[0], v[1], v[2]),
			}, nil
		})
	}

	// (sample-solid s :dims (vec3 64 64 64) :padding 0.1 :scale 12)
	shape("sample_solid", func(pa kwArgs) (*sexpSolid, error) {
		if len(pa.positional) != 1 {
			return nil, fmt.Errorf("needs exactly one solid")
		}
		s, err := toSolid(pa.positional[0])
		if err != nil {
			return nil, err
		}
		v, ok := pa.kw["dims"]
		if !ok {
			return nil, fmt.Errorf("missing :dims")
		}
		dims, err := toDims(v)
		if err != nil {
			return nil, fmt.Errorf("dims: %w", err)
		}
		cfg := volume.Sampling{Dims: dims, Padding: 0.1}
		if p, ok, err := pa.float("padding", -1); err != nil {
			return nil, err
		} else if ok {
			cfg.Padding = p
		}
		if sc, ok, err := pa.float("scale", -1); err != nil {
			return nil, err
		} else if ok {
			cfg.Scale = sc
		}
		job.Shape = s.solid
		job.Sampling = cfg
		return s, nil
	})
}
