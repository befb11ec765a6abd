// internal/export/summary.go
package export

import (
	"fmt"
	"io"
	"strings"

	"leadscore/internal/models"
)

// WriteSummary prints the batch overview and the top prospects to w. The
// leads are assumed already ranked hottest-first.
func WriteSummary(w io.Writer, result models.BatchResult, topN int) {
	counts := map[models.Tier]int{}
	for _, lead := range result.Leads {
		counts[lead.Tier]++
	}

	fmt.Fprintf(w, "Batch %s: %d leads scored (%d failed)\n",
		result.BatchID, result.Total, result.Failures)
	fmt.Fprintf(w, "  HOT: %d  WARM: %d  COLD: %d\n",
		counts[models.TierHot], counts[models.TierWarm], counts[models.TierCold])

	if topN > len(result.Leads) {
		topN = len(result.Leads)
	}
	if topN == 0 {
		return
	}

	fmt.Fprintf(w, "\nTop %d prospects:\n", topN)
	for i, lead := range result.Leads[:topN] {
		flags := make([]string, 0, 2)
		if lead.NeedsRedesign {
			flags = append(flags, "redesign")
		}
		if lead.NeedsReviews {
			flags = append(flags, "reviews")
		}
		flagNote := ""
		if len(flags) > 0 {
			flagNote = " [" + strings.Join(flags, ", ") + "]"
		}
		fmt.Fprintf(w, "  %2d. %-40s %3d %s %s%s\n",
			i+1, lead.BusinessName, lead.TotalScore, lead.Tier, lead.EstimatedValue, flagNote)
	}
}
