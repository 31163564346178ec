package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

func (a *App) cmdGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	description := fs.String("description", "", "free-text description of the problem to generate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Everything after the flags is also accepted as the description,
	// so `algoarena generate two sum with arrays` reads naturally.
	if *description == "" && fs.NArg() > 0 {
		*description = strings.Join(fs.Args(), " ")
	}

	a.Generate.SetDescription(*description)
	problem, err := a.Generate.Generate(ctx)
	if err != nil {
		return fmt.Errorf("%s", a.Generate.LastError())
	}

	fmt.Fprintf(a.Out, "Generated %q (%s), id %s.\n", problem.Title, problem.Difficulty, problem.ID)
	fmt.Fprintf(a.Out, "Open it with: algoarena problems show -id %s\n", problem.ID)
	return nil
}
