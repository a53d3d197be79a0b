package check

// Process exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
)

// Verdict aggregates the outcomes of one run.
type Verdict struct {
	Outcomes []Outcome
}

// Add appends an outcome.
func (v *Verdict) Add(o Outcome) {
	v.Outcomes = append(v.Outcomes, o)
}

// Errors is the number of fatal findings.
func (v Verdict) Errors() int {
	errs, _ := v.counts()
	return errs
}

// Warnings is the number of advisory findings.
func (v Verdict) Warnings() int {
	_, warns := v.counts()
	return warns
}

func (v Verdict) counts() (errs, warns int) {
	for _, o := range v.Outcomes {
		switch o.Kind {
		case Fatal:
			errs += o.Count()
		case Advisory:
			warns += o.Count()
		}
	}
	return errs, warns
}

// Failed reports whether any fatal finding exists.
func (v Verdict) Failed() bool {
	return v.Errors() > 0
}

// ExitCode maps the verdict to the process exit status.
func (v Verdict) ExitCode() int {
	if v.Failed() {
		return ExitFindings
	}
	return ExitOK
}

// Outcome returns the outcome with the given name, if present.
func (v Verdict) Outcome(name string) (Outcome, bool) {
	for _, o := range v.Outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}
