package inbound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
	"github.com/shandysiswandi/goatm/internal/atm/usecase"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goatm/internal/pkg/pkglog"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goatm/internal/pkg/pkguid"
)

// Controller drives one session: login once, then the menu loop until exit.
type Controller struct {
	uc     uc
	router *pkgrouter.Router
	prompt prompter
	ids    pkguid.StringID
}

func NewController(uc uc, router *pkgrouter.Router, p prompter, ids pkguid.StringID) *Controller {
	return &Controller{uc: uc, router: router, prompt: p, ids: ids}
}

type sessionContextKey struct{}

// SessionFromContext returns the session the current action runs in.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*entity.Session)
	return s, ok
}

// Run blocks until the user exits, fails to log in, cancels, or ctx is done.
// Only infrastructure failures are returned as errors.
func (c *Controller) Run(ctx context.Context) error {
	session := entity.NewSession(c.ids.Generate())
	ctx = pkglog.SetCorrelationID(ctx, session.ID)
	ctx = context.WithValue(ctx, sessionContextKey{}, session)

	slog.InfoContext(ctx, "session started")

	ok, err := c.login(ctx, session)
	if err != nil || !ok {
		return err
	}

	for session.Active() {
		if err := c.showMenu(); err != nil {
			return err
		}

		choice, err := c.prompt.Line(ctx, "Choose an option:")
		if err != nil {
			if isCanceled(err) {
				return c.uc.End(ctx, session)
			}
			return pkgerror.NewServer(err)
		}

		key := strings.TrimSpace(choice)
		if rt, ok := c.router.Match(choice); ok {
			key = rt.Key
		}

		reply := c.router.Dispatch(ctx, key)
		if reply.Message == "" {
			continue
		}
		if err := c.prompt.Say(reply.Message); err != nil {
			return pkgerror.NewServer(err)
		}
	}

	return nil
}

// login reports whether the menu loop should start.
func (c *Controller) login(ctx context.Context, session *entity.Session) (bool, error) {
	identifier, err := c.prompt.Line(ctx, "Enter Account Number:")
	if err != nil {
		return false, c.abandon(ctx, session, err)
	}

	secret, err := c.prompt.Secret(ctx, "Enter the Password:")
	if err != nil {
		return false, c.abandon(ctx, session, err)
	}

	err = c.uc.Login(ctx, session, identifier, secret)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		if sayErr := c.prompt.Say(pkgerror.Message(err, err.Error())); sayErr != nil {
			return false, pkgerror.NewServer(sayErr)
		}
		return false, c.uc.End(ctx, session)
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// abandon ends a session whose login prompt was canceled.
func (c *Controller) abandon(ctx context.Context, session *entity.Session, err error) error {
	if !isCanceled(err) {
		return pkgerror.NewServer(err)
	}

	slog.InfoContext(ctx, "login canceled")
	return c.uc.End(ctx, session)
}

func (c *Controller) showMenu() error {
	var b strings.Builder
	b.WriteString("\nATM Menu")
	for i, rt := range c.router.Routes() {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, rt.Label)
	}

	if err := c.prompt.Say(b.String()); err != nil {
		return pkgerror.NewServer(err)
	}
	return nil
}
