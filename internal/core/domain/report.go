package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ResolutionResult is one row of the mapping report.
type ResolutionResult struct {
	Source string
	Target string
	Found  bool
	Origin Origin
}

// MappingReport is the artifact of a batch run: the ordered source to target
// mapping plus counters. Partial is set when the batch was canceled before
// finishing.
type MappingReport struct {
	Target    string
	Digest    string
	Results   []ResolutionResult
	Processed int
	Found     int
	NotFound  int
	Partial   bool
}

// NewMappingReport builds an empty report for the given target and inventory.
func NewMappingReport(target string, inventory []string) *MappingReport {
	return &MappingReport{
		Target: target,
		Digest: InventoryDigest(inventory),
	}
}

// Add appends one resolution, keeping input order and counters consistent.
func (r *MappingReport) Add(source string, outcome Outcome) {
	result := ResolutionResult{Source: source, Origin: outcome.Origin}
	if outcome.Found() {
		result.Target = outcome.Target
		result.Found = true
		r.Found++
	} else {
		r.NotFound++
	}
	r.Processed++
	r.Results = append(r.Results, result)
}

// InventoryDigest fingerprints an inventory so reports can be matched to the
// package list they were produced from.
func InventoryDigest(names []string) string {
	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(name)
		_, _ = h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
