// Package analysis - plain-text solution report.
//
// The report layout is fixed: section-delimited, newline-separated,
// suitable for direct file export. Numeric fields use two-decimal
// formatting and the objective value uses thousands grouping, so field
// values round-trip through the text within 0.01.
package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/prodmix/mix"
	"github.com/katalvlaran/prodmix/solver"
)

const ruleWidth = 60

// Interpretation renders the what-if meaning of one shadow price.
//
// A price is meaningful only when it is known and its magnitude exceeds
// ShadowEps; otherwise the resource has no marginal value at the current
// optimum. The wording follows the objective sense: extra capacity
// increases profit when maximizing and decreases cost when minimizing.
func Interpretation(sense mix.Sense, sp ShadowPrice) string {
	if !sp.Known {
		return "Shadow price unavailable"
	}
	if math.Abs(sp.Price) <= ShadowEps {
		return "Not binding (has slack)"
	}
	verb := "increase profit"
	if sense == mix.Minimize {
		verb = "decrease cost"
	}
	return fmt.Sprintf("Gaining 1 more unit would %s by $%.2f", verb, math.Abs(sp.Price))
}

// Report assembles the exportable text report for one analyzed result.
//
// For an Optimal result the sections are: header (problem, objective,
// status), production plan ("{product}: {qty:.2f} units" per line), the
// optimal objective line, resource utilization ("{resource}: {used:.2f} /
// {available:.2f} (Slack: {slack:.2f}) [BINDING]" when binding), and the
// shadow prices whose known magnitude exceeds ShadowEps. Non-optimal
// results produce the header plus a plain-language explanation.
func Report(m *mix.Model, r Result) string {
	eq := strings.Repeat("=", ruleWidth)
	dash := strings.Repeat("-", ruleWidth)

	objective := "Maximize Profit"
	valueLabel := "PROFIT"
	if m.Sense == mix.Minimize {
		objective = "Minimize Cost"
		valueLabel = "COST"
	}

	var b strings.Builder
	b.WriteString("\nLINEAR PROGRAMMING SOLUTION REPORT\n")
	b.WriteString(eq + "\n\n")
	fmt.Fprintf(&b, "Problem: %s\n", m.Name)
	fmt.Fprintf(&b, "Objective: %s\n", objective)
	fmt.Fprintf(&b, "Status: %s\n", r.Status)

	if r.Status != solver.Optimal {
		if why := r.Status.Explain(); why != "" {
			b.WriteString("\n" + why + "\n")
		}
		return b.String()
	}

	b.WriteString("\nOPTIMAL PRODUCTION PLAN:\n")
	b.WriteString(dash + "\n")
	for _, q := range r.Plan {
		fmt.Fprintf(&b, "%s: %.2f units\n", q.Product, q.Units)
	}

	fmt.Fprintf(&b, "\nOPTIMAL %s: %s\n", valueLabel, money(r.Objective))

	b.WriteString("\nRESOURCE UTILIZATION:\n")
	b.WriteString(dash + "\n")
	for _, u := range r.Usage {
		binding := ""
		if u.Binding {
			binding = "[BINDING]"
		}
		fmt.Fprintf(&b, "%s: %.2f / %.2f (Slack: %.2f) %s\n", u.Resource, u.Used, u.Available, u.Slack, binding)
	}

	b.WriteString("\nSHADOW PRICES:\n")
	b.WriteString(dash + "\n")
	for _, sp := range r.Shadow {
		if sp.Known && math.Abs(sp.Price) > ShadowEps {
			fmt.Fprintf(&b, "%s: $%.2f per unit\n", sp.Resource, sp.Price)
		}
	}

	return b.String()
}

// money formats a dollar amount with two decimals and thousands grouping,
// e.g. 3600 → "$3,600.00".
func money(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var grouped strings.Builder
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteByte(whole[i])
	}
	return "$" + sign + grouped.String() + frac
}
