package scenario

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/ocarden/wallplan/pkg/plan"
)

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource prepares scenario scripts for zygomys. Two
// transformations run outside of string literals:
//
//  1. :keyword -> "__kw_keyword", so builtins can take keyword arguments
//     without registering keyword symbols as globals.
//  2. ; line comments -> // line comments, which is what zygomys expects.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; comments to //.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword", preserving := assignment.
		if b[i] == ':' && i+1 < len(b) && b[i+1] != '=' && isLetter(b[i+1]) {
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			result = append(result, '"')
			result = append(result, []byte(kwPrefix)...)
			result = append(result, b[i+1:j]...)
			result = append(result, '"')
			i = j
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// kwArgs holds a parsed mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. Keywords
// are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

// isKW checks whether a Sexp is a preprocessed keyword string and returns
// the keyword name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// floatArg fetches a numeric argument by keyword name, falling back to the
// positional argument at pos when the keyword is absent.
func floatArg(pa kwArgs, name string, pos int) (float64, bool, error) {
	if v, ok := pa.kw[name]; ok {
		f, err := toFloat64(v)
		if err != nil {
			return 0, false, fmt.Errorf("%s: %w", name, err)
		}
		return f, true, nil
	}
	if pos < len(pa.positional) {
		f, err := toFloat64(pa.positional[pos])
		if err != nil {
			return 0, false, fmt.Errorf("%s: %w", name, err)
		}
		return f, true, nil
	}
	return 0, false, nil
}

// requireFloatArg is floatArg for arguments that must be present.
func requireFloatArg(pa kwArgs, name string, pos int) (float64, error) {
	f, ok, err := floatArg(pa, name, pos)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("missing argument %q", name)
	}
	return f, nil
}

// registerBuiltins installs the scenario DSL into a zygomys environment.
// The builtins populate the provided scenario during evaluation:
//
//	(wall :width 4 :height 3)
//	(tool :width 0.2)
//	(obstacle :x 1 :y 1 :width 1 :height 1)
//
// Arguments may also be given positionally, e.g. (obstacle 1 1 1 1).
func registerBuiltins(env *zygo.Zlisp, sc *Scenario) {

	env.AddFunction("wall", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		w, err := requireFloatArg(pa, "width", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("wall: %w", err)
		}
		h, err := requireFloatArg(pa, "height", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("wall: %w", err)
		}

		sc.WallWidth = w
		sc.WallHeight = h
		return zygo.SexpNull, nil
	})

	env.AddFunction("tool", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		w, err := requireFloatArg(pa, "width", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("tool: %w", err)
		}

		sc.ToolWidth = w
		return zygo.SexpNull, nil
	})

	env.AddFunction("obstacle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		x, err := requireFloatArg(pa, "x", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("obstacle: %w", err)
		}
		y, err := requireFloatArg(pa, "y", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("obstacle: %w", err)
		}
		w, err := requireFloatArg(pa, "width", 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("obstacle: %w", err)
		}
		h, err := requireFloatArg(pa, "height", 3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("obstacle: %w", err)
		}

		sc.Obstacles = append(sc.Obstacles, plan.Rect{X: x, Y: y, Width: w, Height: h})
		// Return the index so scripts can refer to obstacles they added.
		return &zygo.SexpInt{Val: int64(len(sc.Obstacles) - 1)}, nil
	})
}
