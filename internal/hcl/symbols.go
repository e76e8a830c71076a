package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/dfakit/internal/automaton"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext returns the variables available to every attribute.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"alphabet": cty.StringVal(automaton.Alphabet),
			"digits":   cty.StringVal(automaton.Alphabet[:10]),
			"letters":  cty.StringVal(automaton.Alphabet[10:]),
		},
	}
}

// symbolsFromExpr evaluates a transition's `on` attribute. A string
// contributes each of its bytes; a list or tuple of strings contributes the
// concatenation of its elements.
func symbolsFromExpr(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("symbols must be a known, non-null value")
	}

	ty := val.Type()
	logger.Debug("Evaluating transition symbols.", "type", ty.FriendlyName())

	if ty == cty.String {
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		return "", fmt.Errorf("symbols must be a string or a list of strings, got %s", ty.FriendlyName())
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to list of strings: %w", ty.FriendlyName(), err)
	}
	var parts []string
	if err := gocty.FromCtyValue(listVal, &parts); err != nil {
		return "", err
	}
	return strings.Join(parts, ""), nil
}
