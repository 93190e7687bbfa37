package definition

import (
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/wasm-embed/errors"
)

// Signature is the declared shape of one export, with WIT types for params
// and results. It exists for static shape checking by build tooling; the
// loader never consults it.
type Signature struct {
	Params  []wit.Type
	Results []wit.Type
}

// ParseSignature parses a WIT-style function signature such as
//
//	func(a: u32, b: u32) -> u32
//	func(input: string) -> (u32, u32)
//	func()
//
// Parameter names are optional and discarded; only types are kept.
func ParseSignature(s string) (Signature, error) {
	var sig Signature

	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "func")
	body = strings.TrimSpace(body)

	if !strings.HasPrefix(body, "(") {
		return sig, errors.Shape("signature must start with func(")
	}

	depth := 0
	closeIdx := -1
	for i, ch := range body {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 {
		return sig, errors.Shape("unterminated parameter list")
	}

	params := strings.TrimSpace(body[1:closeIdx])
	rest := strings.TrimSpace(body[closeIdx+1:])

	for _, p := range splitTypeList(params) {
		typ := p
		if idx := strings.LastIndex(p, ":"); idx >= 0 {
			typ = strings.TrimSpace(p[idx+1:])
		}
		t, err := wit.ParseType(typ)
		if err != nil {
			return sig, errors.Wrap(errors.PhaseValidate, errors.KindShape, err, "parse param type "+typ)
		}
		sig.Params = append(sig.Params, t)
	}

	if rest == "" {
		return sig, nil
	}
	if !strings.HasPrefix(rest, "->") {
		return sig, errors.Shape("expected -> before result types")
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "->"))

	if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
		rest = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
		for _, r := range splitTypeList(rest) {
			t, err := wit.ParseType(r)
			if err != nil {
				return sig, errors.Wrap(errors.PhaseValidate, errors.KindShape, err, "parse result type "+r)
			}
			sig.Results = append(sig.Results, t)
		}
		return sig, nil
	}

	t, err := wit.ParseType(rest)
	if err != nil {
		return sig, errors.Wrap(errors.PhaseValidate, errors.KindShape, err, "parse result type "+rest)
	}
	sig.Results = []wit.Type{t}
	return sig, nil
}

// MustSignature is ParseSignature for literals in authoring call sites.
func MustSignature(s string) Signature {
	sig, err := ParseSignature(s)
	if err != nil {
		panic(err)
	}
	return sig
}

// splitTypeList splits a comma-separated type list, respecting nested
// parens and angle brackets in compound types like list<tuple<u32, u32>>.
func splitTypeList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var result []string
	var current strings.Builder
	depth := 0

	for _, ch := range s {
		switch ch {
		case '(', '<':
			depth++
			current.WriteRune(ch)
		case ')', '>':
			depth--
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				if str := strings.TrimSpace(current.String()); str != "" {
					result = append(result, str)
				}
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}

	if str := strings.TrimSpace(current.String()); str != "" {
		result = append(result, str)
	}

	return result
}
