package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gitlab.com/algoarena-2025.net/internal/core/services/auth"
	"gitlab.com/algoarena-2025.net/internal/core/services/catalog"
	"gitlab.com/algoarena-2025.net/internal/core/services/dashboard"
	"gitlab.com/algoarena-2025.net/internal/core/services/generate"
	"gitlab.com/algoarena-2025.net/internal/core/services/session"
	"gitlab.com/algoarena-2025.net/internal/core/services/solve"
)

// App wires the workflow services behind a command dispatcher. All
// terminal I/O goes through In/Out/Err so commands stay testable.
type App struct {
	Auth      auth.IAuthService
	Sessions  session.ISessionService
	Catalog   catalog.ICatalogService
	Generate  generate.IGenerateService
	Solve     solve.ISolveService
	Dashboard dashboard.IDashboardService

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("no command given")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.cmdRegister(ctx, rest)
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "problems":
		return a.cmdProblems(ctx, rest)
	case "generate":
		return a.cmdGenerate(ctx, rest)
	case "run":
		return a.cmdRun(ctx, rest)
	case "submit":
		return a.cmdSubmit(ctx, rest)
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.Err, `Usage: algoarena <command> [flags]

Commands:
  register            Create an account and sign in
  login               Sign in with email and password
  logout              Sign out and clear the stored session
  whoami              Show the signed-in identity
  problems list       List problems (filters: -difficulty, -tags, -search)
  problems show       Show one problem with its sample test cases
  problems delete     Delete a problem you created (asks for confirmation)
  generate            Generate a problem from a free-text description
  run                 Run code against a problem's test cases
  submit              Submit code for a problem (asks for confirmation)
  dashboard           Show your identity and submission history
`)
}

// prompt reads one line from In after printing the given label.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.Out, label)
	r := bufio.NewReader(a.In)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but y/yes is a no.
func (a *App) confirm(question string) (bool, error) {
	answer, err := a.prompt(question + " [y/N] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
