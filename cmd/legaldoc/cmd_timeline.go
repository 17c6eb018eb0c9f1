// cmd/legaldoc/cmd_timeline.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"legal-workers/internal/legal/timeline"
)

var (
	caseType  string
	startDate string
	deadlines []string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Compute the deadlines of a case",
	Long: `Lists the case start date followed by every deadline, each counted in
calendar days from the start.

Example:
  legaldoc timeline --case-type civil --start 2024-01-15 \
    --deadline "File Response=30" --deadline "Hearing=60"`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVar(&caseType, "case-type", string(timeline.Civil), "civil, criminal, commercial or administrative")
	timelineCmd.Flags().StringVar(&startDate, "start", "", "Case start date (YYYY-MM-DD)")
	timelineCmd.Flags().StringArrayVar(&deadlines, "deadline", nil, "Deadline as name=days (repeatable, default: File Response=30)")
	timelineCmd.MarkFlagRequired("start")
}

// parseDeadline reads name=days; a bare name gets the new-deadline period.
func parseDeadline(s string) (timeline.Deadline, error) {
	name, days, ok := strings.Cut(s, "=")
	if !ok {
		return timeline.Deadline{Name: strings.TrimSpace(s), Days: timeline.NewDeadlineDays}, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		return timeline.Deadline{}, fmt.Errorf("deadline %q: days must be a number", s)
	}
	return timeline.Deadline{Name: strings.TrimSpace(name), Days: n}, nil
}

func runTimeline(cmd *cobra.Command, args []string) error {
	l := language()
	list := timeline.DefaultDeadlines(l)
	if len(deadlines) > 0 {
		list = make([]timeline.Deadline, 0, len(deadlines))
		for _, s := range deadlines {
			d, err := parseDeadline(s)
			if err != nil {
				return err
			}
			list = append(list, d)
		}
	}

	tl, err := timeline.Calculate(timeline.Request{
		CaseType:  timeline.CaseType(caseType),
		StartDate: startDate,
		Deadlines: list,
		Language:  l,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tl.CaseTypeLabel)
	for _, e := range tl.Events {
		fmt.Fprintf(out, "  %-22s %s\n", e.DateText, e.Description)
	}
	return nil
}
