package board

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/baxromumarov/job-board/internal/core"
)

// Render writes the filtered offer list as text. Contact email and extended
// details only appear for the offer whose popup is open.
func Render(w io.Writer, b *Board, searchTerm, location string) error {
	snap := b.Snapshot(searchTerm, location)
	if snap.Loading {
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	}
	if len(snap.Offers) == 0 {
		_, err := fmt.Fprintln(w, "No job offers found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range snap.Offers {
		heart := "♡"
		if snap.Liked.Has(o.ID) {
			heart = "♥"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", heart, o.Title, o.ID)
		fmt.Fprintf(tw, "\tCandidate:\t%s\n", o.CandidateName)
		fmt.Fprintf(tw, "\tSector:\t%s\n", o.Category)
		fmt.Fprintf(tw, "\tSalary:\t%s\n", o.Salary)
		fmt.Fprintf(tw, "\tLocation:\t%s\n", o.Location)

		switch snap.Disclosure.StateOf(o.ID) {
		case core.EmailOpen:
			fmt.Fprintf(tw, "\tEmail:\tmailto:%s\n", o.EmployerEmail)
		case core.DetailsOpen:
			fmt.Fprintf(tw, "\tDescription:\t%s\n", o.Description)
			fmt.Fprintf(tw, "\tResponsibilities:\t%s\n", o.Responsibilities)
			fmt.Fprintf(tw, "\tRequirements:\t%s\n", o.Requirements)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
