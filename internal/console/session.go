// Package console is the interactive terminal front end of the inventory:
// a login gate followed by line commands over one product store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// MaxLoginAttempts is how many failed logins end the session.
const MaxLoginAttempts = 3

var ErrTooManyAttempts = errors.New("too many failed login attempts")

// errEndOfInput stops the session quietly when the input is exhausted.
var errEndOfInput = errors.New("end of input")

type Deps struct {
	Products      repo.ProductRepository
	Metrics       repo.MetricsRepository
	Authenticator auth.Authenticator
	Log           *logger.Logger
}

// Session runs one console conversation over in and out.
type Session struct {
	products repo.ProductRepository
	metrics  repo.MetricsRepository
	auth     auth.Authenticator
	log      *logger.Logger

	in   *bufio.Scanner
	out  io.Writer
	user models.User
}

func NewSession(d Deps, in io.Reader, out io.Writer) *Session {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		products: d.Products,
		metrics:  d.Metrics,
		auth:     d.Authenticator,
		log:      log,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run logs a user in and executes commands until quit or end of input.
// logout goes back to the login prompt.
func (s *Session) Run(ctx context.Context) error {
	for {
		user, err := s.login(ctx)
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
		s.user = user
		s.printf("Welcome, %s (%s). Type help for commands.\n", user.Username, user.Role)

		quit, err := s.loop(ctx)
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil || quit {
			return err
		}
		s.user = models.User{}
	}
}

func (s *Session) login(ctx context.Context) (models.User, error) {
	for attempt := 1; attempt <= MaxLoginAttempts; attempt++ {
		username, err := s.prompt("Username")
		if err != nil {
			return models.User{}, err
		}
		password, err := s.prompt("Password")
		if err != nil {
			return models.User{}, err
		}

		user, err := s.auth.Authenticate(ctx, strings.TrimSpace(username), password)
		if err == nil {
			s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("console login")
			return user, nil
		}
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			return models.User{}, fmt.Errorf("authenticate: %w", err)
		}
		s.log.Warn().Str("username", username).Int("attempt", attempt).Msg("rejected console login")
		s.print(renderError("Invalid login"))
	}
	return models.User{}, ErrTooManyAttempts
}

// loop reports quit=true when the user asked to leave the program.
func (s *Session) loop(ctx context.Context) (quit bool, err error) {
	for {
		if err := ctx.Err(); err != nil {
			return true, err
		}
		line, err := s.prompt(fmt.Sprintf("inventory(%s)>", strings.ToLower(string(s.user.Role))))
		if err != nil {
			return true, err
		}

		name := strings.ToLower(strings.TrimSpace(line))
		switch name {
		case "":
			continue
		case "quit", "exit":
			return true, nil
		case "logout":
			s.print(renderInfo("Logged out."))
			return false, nil
		}

		cmd, ok := lookup(name)
		if !ok {
			s.print(renderError(fmt.Sprintf("Unknown command %q. Type help for the list.", name)))
			continue
		}
		if cmd.adminOnly && !s.user.Role.IsAdmin() {
			s.print(renderError("The " + cmd.name + " command requires the Admin role."))
			continue
		}
		if err := cmd.run(s); err != nil {
			if errors.Is(err, errEndOfInput) {
				return true, err
			}
			s.printErr(err)
		}
	}
}

func (s *Session) prompt(label string) (string, error) {
	if strings.HasSuffix(label, ">") {
		s.printf("%s ", label)
	} else {
		s.printf("%s: ", label)
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEndOfInput
	}
	return s.in.Text(), nil
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// printErr shows validation messages as they are and anything else generically.
func (s *Session) printErr(err error) {
	if ve, ok := repo.AsValidationError(err); ok {
		s.print(renderError(ve.Message))
		return
	}
	s.log.Error().Err(err).Msg("console command failed")
	s.print(renderError(err.Error()))
}
