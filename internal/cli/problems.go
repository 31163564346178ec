package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

func (a *App) cmdProblems(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("problems requires a subcommand: list, show or delete")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.cmdProblemsList(ctx, rest)
	case "show":
		return a.cmdProblemsShow(ctx, rest)
	case "delete":
		return a.cmdProblemsDelete(ctx, rest)
	default:
		return fmt.Errorf("unknown problems subcommand %q", sub)
	}
}

func (a *App) cmdProblemsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("problems list", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	difficulty := fs.String("difficulty", "", "filter by difficulty (Easy, Medium, Hard)")
	tags := fs.String("tags", "", "comma-separated tag filter")
	search := fs.String("search", "", "free-text title search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	snapshot := a.Catalog.Load(ctx, domain.ProblemFilters{
		Difficulty: domain.Difficulty(*difficulty),
		Tags:       *tags,
		Search:     *search,
	})
	if snapshot.Degraded {
		fmt.Fprintln(a.Err, "Could not reach the problem service; showing an empty listing.")
	}
	if len(snapshot.Problems) == 0 {
		fmt.Fprintln(a.Out, "No problems found.")
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY\tAUTHOR\tYOURS")
	for _, p := range snapshot.Problems {
		yours := ""
		if a.Catalog.CanDelete(p) {
			yours = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Difficulty, p.CreatedBy.Username, yours)
	}
	return w.Flush()
}

func (a *App) cmdProblemsShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("problems show", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	id := fs.String("id", "", "problem id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("problems show requires -id")
	}

	if err := a.Solve.LoadProblem(ctx, *id); err != nil {
		return fmt.Errorf("%s", domain.ErrorMessage(err, "Failed to load problem"))
	}
	problem, _ := a.Solve.Problem()
	printProblem(a.Out, problem, a.Solve.SampleCases())
	return nil
}

func (a *App) cmdProblemsDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("problems delete", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	id := fs.String("id", "", "problem id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("problems delete requires -id")
	}

	snapshot := a.Catalog.Load(ctx, domain.ProblemFilters{})
	var target *domain.Problem
	for i := range snapshot.Problems {
		if snapshot.Problems[i].ID == *id {
			target = &snapshot.Problems[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no problem with id %s", *id)
	}
	if !a.Catalog.CanDelete(*target) {
		return fmt.Errorf("you can only delete problems you created")
	}

	a.Catalog.RequestDelete(target.ID, target.Title)
	intent, _ := a.Catalog.PendingDelete()
	ok, err := a.confirm(fmt.Sprintf("Delete %q? This cannot be undone.", intent.Title))
	if err != nil {
		a.Catalog.CancelDelete()
		return err
	}
	if !ok {
		a.Catalog.CancelDelete()
		fmt.Fprintln(a.Out, "Deletion cancelled.")
		return nil
	}

	if err := a.Catalog.ConfirmDelete(ctx); err != nil {
		return fmt.Errorf("%s", domain.ErrorMessage(err, "Failed to delete problem"))
	}
	fmt.Fprintf(a.Out, "Deleted %q.\n", intent.Title)
	return nil
}

func printProblem(out io.Writer, p domain.Problem, samples []domain.TestCase) {
	fmt.Fprintf(out, "%s  [%s]\n\n", p.Title, p.Difficulty)
	fmt.Fprintln(out, p.Description)
	if p.ProblemStatement != "" {
		fmt.Fprintf(out, "\n%s\n", p.ProblemStatement)
	}
	if p.InputFormat != "" {
		fmt.Fprintf(out, "\nInput:\n%s\n", p.InputFormat)
	}
	if p.OutputFormat != "" {
		fmt.Fprintf(out, "\nOutput:\n%s\n", p.OutputFormat)
	}
	if p.Constraints != "" {
		fmt.Fprintf(out, "\nConstraints:\n%s\n", p.Constraints)
	}
	for i, tc := range samples {
		fmt.Fprintf(out, "\nSample %d:\n  Input: %s\n  Expected: %s\n", i+1, tc.Input, tc.ExpectedOutput)
	}
}
