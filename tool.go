package gopoly

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/njchilds90/gopoly/arith"
)

// ============================================================
// MCP Tool Interface
// ============================================================

// ToolRequest is a string-in tool call. Polynomials travel in their text
// form; params.field picks the coefficient type (see Fields).
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty" yaml:"result,omitempty"`
	String string      `json:"string,omitempty" yaml:"string,omitempty"`
	Field  string      `json:"field,omitempty" yaml:"field,omitempty"`
	Error  string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// DefaultField is the coefficient type used when a request names none.
const DefaultField = "int64"

var fields = []string{"int64", "int", "bigint", "rational", "float64", "complex", "int256"}

// Fields lists the coefficient type names accepted in params.field.
func Fields() []string { return append([]string(nil), fields...) }

// ValidField reports whether name is one of Fields.
func ValidField(name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// HandleToolCall runs one tool. Failures are reported in ToolResponse.Error.
func HandleToolCall(req ToolRequest) ToolResponse {
	if req.Tool == "mcp_spec" {
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}
	field := DefaultField
	if v, ok := req.Params["field"]; ok {
		s, ok := v.(string)
		if !ok {
			return ToolResponse{Error: "param field must be a string"}
		}
		field = s
	}
	var resp ToolResponse
	switch field {
	case "int64":
		resp = handle[int64](req)
	case "int":
		resp = handle[int](req)
	case "bigint":
		resp = handle[*big.Int](req)
	case "rational":
		resp = handle[*big.Rat](req)
	case "float64":
		resp = handle[float64](req)
	case "complex":
		resp = handle[complex128](req)
	case "int256":
		resp = handle[uint256.Int](req)
	default:
		return ToolResponse{Error: fmt.Sprintf("unknown field: %s", field)}
	}
	resp.Field = field
	return resp
}

func handle[T any](req ToolRequest) ToolResponse {
	p, err := arith.Lookup[T]()
	if err != nil {
		return ToolResponse{Error: err.Error()}
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getPoly := func(key string) (*Polynomial[T], error) {
		s, err := getString(key)
		if err != nil {
			return nil, err
		}
		return ParseWith(p, s)
	}
	getPair := func() (*Polynomial[T], *Polynomial[T], error) {
		a, err := getPoly("a")
		if err != nil {
			return nil, nil, err
		}
		b, err := getPoly("b")
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}
	getSymbol := func() (rune, error) {
		s, err := getString("var")
		if err != nil {
			return 0, err
		}
		return symbolParam("var", s)
	}
	getBindings := func() (map[rune]string, error) {
		v, ok := req.Params["bindings"]
		if !ok {
			return nil, fmt.Errorf("missing param: bindings")
		}
		raw, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param bindings must be an object")
		}
		out := make(map[rune]string, len(raw))
		for k, val := range raw {
			sym, err := symbolParam("bindings", k)
			if err != nil {
				return nil, err
			}
			switch x := val.(type) {
			case string:
				out[sym] = x
			case float64:
				out[sym] = strconv.FormatFloat(x, 'f', -1, 64)
			default:
				return nil, fmt.Errorf("param bindings.%s must be a string or number", k)
			}
		}
		return out, nil
	}
	respond := func(a *Polynomial[T]) ToolResponse {
		s := a.String()
		return ToolResponse{Result: s, String: s}
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "parse":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		return respond(a)

	case "add", "subtract", "multiply":
		a, b, err := getPair()
		if err != nil {
			return fail(err)
		}
		switch req.Tool {
		case "add":
			return respond(Add(a, b))
		case "subtract":
			return respond(Subtract(a, b))
		}
		return respond(Multiply(a, b))

	case "divide", "gcd":
		a, b, err := getPair()
		if err != nil {
			return fail(err)
		}
		op := Divide[T]
		if req.Tool == "gcd" {
			op = GCD[T]
		}
		r, err := op(a, b)
		if err != nil {
			return fail(err)
		}
		return respond(r)

	case "pow":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		n, ok := intParam(req.Params["n"])
		if !ok {
			return fail(fmt.Errorf("param n must be an integer"))
		}
		r, err := Pow(a, n)
		if err != nil {
			return fail(err)
		}
		return respond(r)

	case "derivative":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		sym, err := getSymbol()
		if err != nil {
			return fail(err)
		}
		return respond(Derivative(a, sym))

	case "integrate":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		sym, err := getSymbol()
		if err != nil {
			return fail(err)
		}
		c := p.Zero
		if s, err := getString("constant"); err == nil {
			if c, err = p.Parse(s); err != nil {
				return fail(formatErr(s, "bad constant: %v", err))
			}
		}
		return respond(IndefiniteIntegral(a, sym, c))

	case "evaluate":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		raw, err := getBindings()
		if err != nil {
			return fail(err)
		}
		bindings := make(map[rune]T, len(raw))
		for sym, s := range raw {
			v, err := p.Parse(s)
			if err != nil {
				return fail(formatErr(s, "bad value for %c: %v", sym, err))
			}
			bindings[sym] = v
		}
		s := p.Format(Evaluate(a, bindings))
		return ToolResponse{Result: s, String: s}

	case "compose":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		raw, err := getBindings()
		if err != nil {
			return fail(err)
		}
		bindings := make(map[rune]*Polynomial[T], len(raw))
		for sym, s := range raw {
			sub, err := ParseWith(p, s)
			if err != nil {
				return fail(err)
			}
			bindings[sym] = sub
		}
		return respond(FunctionalComposition(a, bindings))

	case "factor":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		res, err := FactorDetailed(a)
		if err != nil {
			return fail(err)
		}
		strs := make([]string, len(res.Factors))
		for i, f := range res.Factors {
			strs[i] = "(" + f.String() + ")"
		}
		return ToolResponse{
			Result: map[string]interface{}{
				"factors":   strs,
				"remainder": res.Remainder.String(),
				"complete":  res.Complete,
			},
			String: strings.Join(strs, "*"),
		}

	case "roots":
		a, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		roots, err := NumericRoots(a)
		if err != nil {
			return fail(err)
		}
		out := make([]map[string]float64, len(roots))
		strs := make([]string, len(roots))
		for i, r := range roots {
			out[i] = map[string]float64{"re": real(r), "im": imag(r)}
			strs[i] = arith.Complex128{}.Format(r)
		}
		return ToolResponse{Result: out, String: strings.Join(strs, ", ")}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// intParam accepts a JSON number with no fractional part or a Go int.
func intParam(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n == math.Trunc(n) && math.Abs(n) <= math.MaxInt32 {
			return int(n), true
		}
	}
	return 0, false
}

func symbolParam(key, s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 || !validSymbol(r[0]) {
		return 0, fmt.Errorf("param %s: %q is not a single-letter symbol", key, s)
	}
	return r[0], nil
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("parse", "Parse a polynomial and return its canonical form", []string{"poly"}, map[string]string{"poly": "string", "field": "string"}),
		ts("add", "Add two polynomials a + b", []string{"a", "b"}, map[string]string{"a": "string", "b": "string", "field": "string"}),
		ts("subtract", "Subtract polynomials a - b", []string{"a", "b"}, map[string]string{"a": "string", "b": "string", "field": "string"}),
		ts("multiply", "Multiply polynomials a * b", []string{"a", "b"}, map[string]string{"a": "string", "b": "string", "field": "string"}),
		ts("divide", "Quotient of a / b (remainder discarded)", []string{"a", "b"}, map[string]string{"a": "string", "b": "string", "field": "string"}),
		ts("pow", "Raise a polynomial to a non-negative integer power n", []string{"poly", "n"}, map[string]string{"poly": "string", "n": "integer", "field": "string"}),
		ts("derivative", "Derivative with respect to var", []string{"poly", "var"}, map[string]string{"poly": "string", "var": "string", "field": "string"}),
		ts("integrate", "Indefinite integral in var. Optional constant", []string{"poly", "var"}, map[string]string{"poly": "string", "var": "string", "constant": "string", "field": "string"}),
		ts("evaluate", "Evaluate at bindings {symbol: value}", []string{"poly", "bindings"}, map[string]string{"poly": "string", "bindings": "object", "field": "string"}),
		ts("compose", "Substitute polynomials for symbols. bindings {symbol: polynomial}", []string{"poly", "bindings"}, map[string]string{"poly": "string", "bindings": "object", "field": "string"}),
		ts("gcd", "Greatest common divisor of a and b", []string{"a", "b"}, map[string]string{"a": "string", "b": "string", "field": "string"}),
		ts("factor", "Factor a univariate polynomial over its rational roots", []string{"poly"}, map[string]string{"poly": "string", "field": "string"}),
		ts("roots", "Approximate complex roots of a univariate polynomial", []string{"poly"}, map[string]string{"poly": "string", "field": "string"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools, "fields": fields}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
