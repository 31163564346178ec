package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gitlab.com/algoarena-2025.net/internal/domain"
	"gitlab.com/algoarena-2025.net/internal/static/errs"
)

type solveArgs struct {
	problemID string
	language  domain.Language
	code      string
}

func (a *App) parseSolveArgs(name string, args []string) (*solveArgs, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Err)
	id := fs.String("id", "", "problem id")
	lang := fs.String("lang", string(domain.LanguageCPP), "language (cpp, python, java, javascript)")
	file := fs.String("file", "", "path to the source file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *id == "" || *file == "" {
		return nil, fmt.Errorf("%s requires -id and -file", name)
	}

	code, err := os.ReadFile(*file)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	return &solveArgs{
		problemID: *id,
		language:  domain.Language(*lang),
		code:      string(code),
	}, nil
}

func (a *App) prepareSolve(ctx context.Context, sa *solveArgs) error {
	if err := a.Solve.LoadProblem(ctx, sa.problemID); err != nil {
		return fmt.Errorf("%s", domain.ErrorMessage(err, "Failed to load problem"))
	}
	if err := a.Solve.SetLanguage(sa.language); err != nil {
		return fmt.Errorf("unsupported language %q", sa.language)
	}
	a.Solve.SetCode(sa.code)
	return nil
}

func (a *App) cmdRun(ctx context.Context, args []string) error {
	sa, err := a.parseSolveArgs("run", args)
	if err != nil {
		return err
	}
	if err := a.prepareSolve(ctx, sa); err != nil {
		return err
	}

	result, err := a.Solve.Run(ctx)
	if err != nil {
		return fmt.Errorf("%s", domain.ErrorMessage(err, "Failed to run code"))
	}
	printEvaluation(a.Out, result)
	return nil
}

func (a *App) cmdSubmit(ctx context.Context, args []string) error {
	sa, err := a.parseSolveArgs("submit", args)
	if err != nil {
		return err
	}
	if err := a.prepareSolve(ctx, sa); err != nil {
		return err
	}

	confirmed, err := a.confirm("Are you sure you want to submit?")
	if err != nil {
		return err
	}

	receipt, err := a.Solve.Submit(ctx, confirmed)
	if err != nil {
		switch {
		case errors.Is(err, errs.SubmissionNotConfirmed):
			fmt.Fprintln(a.Out, "Submission cancelled.")
			return nil
		case errors.Is(err, errs.AuthenticationRequired):
			fmt.Fprintln(a.Out, "Please login first to submit code.")
			fmt.Fprintln(a.Out, "Run: algoarena login -email <email> -password <password>")
			return nil
		default:
			return fmt.Errorf("%s", domain.ErrorMessage(err, "Failed to submit code"))
		}
	}

	fmt.Fprintf(a.Out, "Submission %s: %s (%d/%d test cases passed)\n",
		receipt.SubmissionID, receipt.Status, receipt.TestCasesPassed, receipt.TotalTestCases)
	if result, ok := a.Solve.Result(); ok {
		printEvaluation(a.Out, result)
	}
	return nil
}

func printEvaluation(out io.Writer, result *domain.EvaluationResult) {
	fmt.Fprintf(out, "Passed %d of %d test cases.\n", result.TotalPassed, result.TotalTestCases)
	for i, c := range result.Results {
		mark := "FAIL"
		if c.Passed {
			mark = "PASS"
		}
		fmt.Fprintf(out, "  case %d: %s\n", i+1, mark)
		if !c.Passed {
			fmt.Fprintf(out, "    input:    %s\n", c.Input)
			fmt.Fprintf(out, "    expected: %s\n", c.ExpectedOutput)
			if c.Error != "" {
				fmt.Fprintf(out, "    error:    %s\n", c.Error)
			} else {
				fmt.Fprintf(out, "    got:      %s\n", c.ActualOutput)
			}
		}
	}
}
