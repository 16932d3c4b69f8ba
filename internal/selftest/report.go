package selftest

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/shizhMSFT/gha/pkg/markdown"
	"github.com/sirupsen/logrus"

	"github.com/shizhMSFT/b3hash/internal/trace"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

// Run executes every case against every backend, writes a markdown report to
// out and returns the failed cases.
func (s *TestSuite) Run(out io.Writer) error {
	ctx := s.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = trace.NewLogger(ctx, out, logrus.DebugLevel)
	primitives := s.primitives()

	// Print title
	fmt.Fprintln(out, "# BLAKE3 Binding Self-Check")

	var results [][]any
	for name := range s.Cases() {
		results = append(results, []any{name})
	}
	var errs *multierror.Error
	for _, primitive := range primitives {
		processor := blake3hash.NewProcessor(primitive)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "## Backend", primitive.Name())
		i := 0
		for name, test := range s.Cases() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "###", name)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "<details>")
			fmt.Fprintln(out, "<summary>Test logs</summary>")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "```")
			caseCtx := trace.WithLogger(ctx, trace.Logger(ctx).WithField("backend", primitive.Name()))
			result := test(caseCtx, processor)
			fmt.Fprintln(out, "```")
			fmt.Fprintln(out, "</details>")
			fmt.Fprintln(out)
			results[i] = append(results[i], result.Symbol())
			switch result {
			case ResultSuccess:
				fmt.Fprintln(out, "✅ Passed")
			case ResultFailure:
				fmt.Fprintln(out, "❌ Failed")
				errs = multierror.Append(errs, fmt.Errorf("%s: %s failed", primitive.Name(), name))
			case ResultNotApplicable:
				fmt.Fprintln(out, "⚠️ Not applicable")
			}
			i++
		}
	}

	// Print summary
	fmt.Fprintln(out)
	fmt.Fprintln(out, "## Summary")
	tableHeaders := []string{"Test"}
	for _, primitive := range primitives {
		tableHeaders = append(tableHeaders, primitive.Name())
	}
	table := markdown.NewTable(tableHeaders...)
	for _, result := range results {
		table.AddRow(result...)
	}
	fmt.Fprintln(out)
	if err := table.Print(out); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}
	return errs.ErrorOrNil()
}
