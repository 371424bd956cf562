package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/service"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/utils"
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

const usage = `usage:
  auth-client hello
  auth-client signup <email> <password>
  auth-client login <email> <password>
  auth-client profile
  auth-client logout
  auth-client status`

type App struct {
	services *service.ClientServices
	sessions store.SessionStore
	state    *State

	out    io.Writer
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, sessions store.SessionStore, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		sessions: sessions,
		state:    NewState(),
		out:      out,
		logger:   logger,
	}
}

// Run probes the backend and executes the single command named in args.
// Probe failure is fatal: no command runs against an unreachable backend.
// Command outcomes are printed, not returned — only usage mistakes and the
// probe produce errors.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%s", usage)
	}

	if err := a.services.AuthClient.Probe(ctx, a.state.Apply); err != nil {
		return err
	}

	command := strings.ToLower(args[0])
	switch command {
	case "hello":
		fmt.Fprintln(a.out, a.state.Message())
		return nil

	case "signup":
		if len(args) != 3 {
			return fmt.Errorf("%s", usage)
		}
		result := a.services.AuthClient.Signup(ctx, a.state.Apply, models.Credentials{Email: args[1], Password: args[2]})
		a.printResult(result)
		return nil

	case "login":
		if len(args) != 3 {
			return fmt.Errorf("%s", usage)
		}
		result := a.services.AuthClient.Login(ctx, a.state.Apply, models.Credentials{Email: args[1], Password: args[2]})
		if result.Success {
			fmt.Fprintf(a.out, "Logged in as %s\n", a.state.Session().Email)
			return nil
		}
		a.printResult(result)
		return nil

	case "profile":
		result := a.services.AuthClient.FetchProfile(ctx, a.state.Apply)
		if result.Success {
			a.printProfile()
			return nil
		}
		a.printResult(result)
		return nil

	case "logout":
		result := a.services.AuthClient.Logout(ctx, a.state.Apply)
		a.printResult(result)
		return nil

	case "status":
		a.printStatus()
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func (a *App) printResult(result models.AuthResult) {
	if result.Message != "" {
		fmt.Fprintln(a.out, result.Message)
		return
	}
	if result.Success {
		fmt.Fprintln(a.out, "OK")
	}
}

func (a *App) printProfile() {
	user := a.state.User()
	if user == nil {
		return
	}

	fmt.Fprintf(a.out, "id:        %d\n", user.ID)
	fmt.Fprintf(a.out, "email:     %s\n", user.Email)
	fmt.Fprintf(a.out, "is_active: %t\n", user.IsActive)
}

// printStatus reports the local session without calling the backend. Expiry
// comes from the token's own claims: an expired-but-present token still
// counts as authenticated until a server call rejects it.
func (a *App) printStatus() {
	session, err := a.sessions.Load()
	if err != nil {
		fmt.Fprintln(a.out, "session: stored record is malformed")
		return
	}
	if session == nil {
		fmt.Fprintln(a.out, "session: anonymous")
		return
	}

	fmt.Fprintf(a.out, "session: authenticated as %s (user %d)\n", session.Email, session.UserID)

	if expiry, err := utils.ParseTokenExpiry(session.Token); err == nil {
		fmt.Fprintf(a.out, "token expires: %s\n", expiry.Format("2006-01-02 15:04:05 MST"))
	}
}
