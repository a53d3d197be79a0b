// Package check holds the result model shared by every check: a tagged
// outcome per check and the run-level verdict reduced from them.
package check

import "fmt"

// Kind says whether an outcome's findings can fail the run.
type Kind int

const (
	// Fatal findings fail the run.
	Fatal Kind = iota
	// Advisory findings are reported but never fail the run.
	Advisory
)

func (k Kind) String() string {
	switch k {
	case Fatal:
		return "fatal"
	case Advisory:
		return "advisory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Finding is one reported defect.
type Finding struct {
	Source string // document path or invocation
	Target string // raw reference, pattern, or empty
	Detail string
}

// Outcome is what a single check returns.
type Outcome struct {
	Name     string
	Kind     Kind
	Checked  int // items examined: references, commands, or patterns
	Findings []Finding
}

// NewFatal builds an outcome whose findings fail the run.
func NewFatal(name string, checked int, findings []Finding) Outcome {
	return Outcome{Name: name, Kind: Fatal, Checked: checked, Findings: findings}
}

// NewAdvisory builds an outcome whose findings are warnings only.
func NewAdvisory(name string, checked int, findings []Finding) Outcome {
	return Outcome{Name: name, Kind: Advisory, Checked: checked, Findings: findings}
}

// Count is the number of findings.
func (o Outcome) Count() int {
	return len(o.Findings)
}
