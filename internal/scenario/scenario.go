// Package scenario holds the demonstrations run by cmd/safecast-demo.
package scenario

import (
	"fmt"
	"io"

	"go.dw1.io/safecast/internal/filter"
	"go.dw1.io/safecast/internal/report"
)

// Scenario is one named demonstration.
type Scenario struct {
	Name  string
	Title string
	run   func(r *Recorder) error
}

// Run executes s, echoing its output to w when w is non-nil.
func (s Scenario) Run(w io.Writer) report.Report {
	r := &Recorder{w: w, rep: report.Report{Name: s.Name, Title: s.Title}}

	r.println(s.Title)
	if err := s.run(r); err != nil {
		r.rep.Err = err.Error()
		r.Printf("error: %v", err)
	}
	r.println("")

	return r.rep
}

// Recorder collects the output and checks of a running scenario.
type Recorder struct {
	w   io.Writer
	rep report.Report
}

// Printf records one output line.
func (r *Recorder) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.rep.Lines = append(r.rep.Lines, line)
	r.println(line)
}

// Check records a named boolean outcome and prints it.
func (r *Recorder) Check(name string, ok bool) {
	if r.rep.Checks == nil {
		r.rep.Checks = make(map[string]bool)
	}
	r.rep.Checks[name] = ok
	r.Printf("%s: %t", name, ok)
}

// Fingerprint records the fingerprint of the scenario's final state.
func (r *Recorder) Fingerprint(sum uint64) {
	r.rep.Fingerprint = sum
}

func (r *Recorder) println(line string) {
	if r.w != nil {
		fmt.Fprintln(r.w, line)
	}
}

// All returns every scenario in presentation order.
func All() []Scenario {
	return []Scenario{
		{Name: "integral", Title: "Checking a conversion of an integral type", run: integral},
		{Name: "structure", Title: "Checking a structure via a reference", run: structure},
		{Name: "scalar", Title: "Try to cast a structure to an integral or float type with the same size", run: scalar},
		{Name: "tuple", Title: "Working with tuples", run: tuple},
		{Name: "mismatch", Title: "Rejecting a reinterpretation between types of different sizes", run: mismatch},
		{Name: "mapped", Title: "Viewing records of a memory-mapped file", run: mappedRecords},
	}
}

// Select returns the scenarios whose name matches f, in presentation order.
func Select(f *filter.Filter) []Scenario {
	var out []Scenario
	for _, s := range All() {
		if f.Match(s.Name) {
			out = append(out, s)
		}
	}

	return out
}
