package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

func (a *App) cmdDashboard(ctx context.Context) error {
	overview, err := a.Dashboard.Overview(ctx)
	if !overview.SignedIn {
		fmt.Fprintln(a.Out, "Not signed in. Run `algoarena login` to see your dashboard.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s", domain.ErrorMessage(err, "Failed to load submissions"))
	}

	fmt.Fprintf(a.Out, "%s <%s>\n\n", overview.Identity.Username, overview.Identity.Email)
	if overview.Stale {
		fmt.Fprintln(a.Err, "Showing cached submissions; the server could not be reached.")
	}
	if len(overview.Submissions) == 0 {
		fmt.Fprintln(a.Out, "No submissions yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPROBLEM\tSTATUS\tPASSED")
	for _, s := range overview.Submissions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.Problem.Title, s.Status, s.TestCasesPassed, s.TotalTestCases)
	}
	return w.Flush()
}
