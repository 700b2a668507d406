package batch

import (
	"fmt"
	"strings"

	"seeder/internal/core/domain/model/kernel"
)

// Report is the aggregated outcome of one seeding run. It is a pure function
// of the submission and progression results; building it performs no I/O.
type Report struct {
	Attempted int
	Created   int
	Failed    int

	// FailuresByKind counts failed submissions per classification.
	FailuresByKind map[FailureKind]int

	// TotalSeededValue sums the full price of every created order.
	TotalSeededValue kernel.Money

	// AvgDurationSteps is the mean plan duration across created orders,
	// zero when nothing was created.
	AvgDurationSteps float64

	// Progression aggregates.
	StepsPaid           int
	HaltedByStepLimit   int
	FaultedProgressions int

	// FailureLines holds one formatted line per failed submission, in
	// submission order.
	FailureLines []string
}

// BuildReport aggregates a run's results into a Report. Both argument slices
// may be nil or empty; a run with zero successes produces a zero-valued
// report rather than dividing by zero.
func BuildReport(submissions []SubmissionResult, progressions []ProgressionResult) Report {
	report := Report{
		Attempted:      len(submissions),
		FailuresByKind: make(map[FailureKind]int),
	}

	totalValue, _ := kernel.NewMoney(0)
	totalDuration := 0

	for _, sub := range submissions {
		if sub.Succeeded() {
			report.Created++
			totalValue = totalValue.Add(sub.Order().TotalValue())
			totalDuration += sub.Fixture().Plan().DurationSteps()
			continue
		}

		report.Failed++
		failure := *sub.Failure()
		report.FailuresByKind[failure.Kind]++
		report.FailureLines = append(report.FailureLines,
			fmt.Sprintf("fixture %d: %s", sub.Fixture().Index(), failure.String()))
	}

	report.TotalSeededValue = totalValue
	if report.Created > 0 {
		report.AvgDurationSteps = float64(totalDuration) / float64(report.Created)
	}

	for _, prog := range progressions {
		report.StepsPaid += prog.StepsCompleted
		if prog.HaltedByStepLimit {
			report.HaltedByStepLimit++
		}
		if prog.Fault != nil {
			report.FaultedProgressions++
		}
	}

	return report
}

// String renders the report as a multi-line summary for operator output.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "submitted %d, created %d, failed %d\n", r.Attempted, r.Created, r.Failed)
	fmt.Fprintf(&b, "total seeded value: %s\n", r.TotalSeededValue.String())
	fmt.Fprintf(&b, "avg plan duration: %.1f steps\n", r.AvgDurationSteps)
	fmt.Fprintf(&b, "installments paid: %d, halted by daily limit: %d, faulted: %d\n",
		r.StepsPaid, r.HaltedByStepLimit, r.FaultedProgressions)

	for _, line := range r.FailureLines {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	return b.String()
}
