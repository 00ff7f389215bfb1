// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/shop-inventory/tools/dashgen/rules"
)

// histogramSuffixes are the series suffixes Prometheus adds to histograms.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation problems. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

type panelJSON struct {
	Title   string       `json:"title"`
	Type    string       `json:"type"`
	Targets []targetJSON `json:"targets"`
	Panels  []panelJSON  `json:"panels"`
}

type targetJSON struct {
	Expr  string `json:"expr"`
	RefID string `json:"refId"`
}

// DashboardJSON validates an encoded Grafana dashboard.
func DashboardJSON(data []byte, known map[string]bool) (*Result, error) {
	var dash struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &dash); err != nil {
		return nil, fmt.Errorf("decoding dashboard: %w", err)
	}

	r := &Result{}
	for i := range dash.Panels {
		checkPanel(r, &dash.Panels[i], known)
	}
	return r, nil
}

func checkPanel(r *Result, p *panelJSON, known map[string]bool) {
	if p.Type == "row" {
		for i := range p.Panels {
			checkPanel(r, &p.Panels[i], known)
		}
		return
	}

	if len(p.Targets) == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("panel %q has no targets", p.Title))
		return
	}
	for _, t := range p.Targets {
		if err := Expr(t.Expr, known); err != nil {
			r.errorf("panel %q target %s: %w", p.Title, t.RefID, err)
		}
	}
}

// Rules validates every expression of a PrometheusRule.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	r := &Result{}
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			if name == "" {
				r.errorf("group %s: rule without record or alert name", g.Name)
				continue
			}
			if err := Expr(rule.Expr, known); err != nil {
				r.errorf("group %s rule %s: %w", g.Name, name, err)
			}
		}
	}
	return r
}

// Expr parses a PromQL expression and checks that every metric it selects
// is known.
func Expr(expr string, known map[string]bool) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("empty expression")
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})

	if len(unknown) > 0 {
		return fmt.Errorf("unknown metrics %v in %q", unknown, expr)
	}
	return nil
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
