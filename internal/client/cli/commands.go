package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
)

func (a *App) printSession(s *models.Session) {
	fmt.Fprintf(a.out, "Logged in as %s", s.Email)
	if s.DisplayName != "" {
		fmt.Fprintf(a.out, " (%s)", s.DisplayName)
	}
	fmt.Fprintln(a.out)
	if s.RefreshToken == "" {
		fmt.Fprintln(a.out, "Session is not remembered; log in again when the access token expires.")
	}
}

func (a *App) Register(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	displayName, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetYesNo(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.authService.Register(ctx, email, displayName, password, remember)
	if err != nil {
		return err
	}
	a.printSession(s)
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetYesNo(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.authService.Login(ctx, email, password, remember)
	if err != nil {
		return err
	}
	a.printSession(s)
	return nil
}

func (a *App) Refresh(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.authService.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Tokens refreshed")
	return nil
}

func (a *App) Revoke(ctx context.Context, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.Revoke(ctx, token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Token revoked")
	return nil
}

func (a *App) Token(ctx context.Context, _ []string) error {
	s, err := a.authService.Current(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, s.AccessToken)
	return nil
}

func (a *App) Status(ctx context.Context, _ []string) error {
	s, err := a.authService.Current(ctx)
	if err != nil {
		return err
	}
	a.printSession(s)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
