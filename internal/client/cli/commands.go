package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/client/api"
	"github.com/dmitrijs2005/smartfridge/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// report prints err in user terms and returns it unchanged.
func (a *App) report(err error) error {
	var se *api.StatusError
	switch {
	case errors.Is(err, api.ErrUnavailable):
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Not authorized, please log in")
	case errors.Is(err, api.ErrAlreadyExists):
		fmt.Fprintln(a.out, "Username is already taken")
	case errors.As(err, &se):
		fmt.Fprintf(a.out, "Error: %s\n", se.Message)
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}

func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, userName, string(password)); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, userName, string(password)); err != nil {
		return a.report(err)
	}

	a.userName = userName
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Logged in")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	a.userName = ""
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Session(ctx context.Context) error {
	info, err := a.client.Session(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Logged in as %s until %s\n", info.Username, info.ExpireDate.Local().Format(time.RFC1123))
	return nil
}

func (a *App) Theme(ctx context.Context) error {
	theme, err := a.client.Theme(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Theme: %s\n", theme)
	return nil
}

func (a *App) SetTheme(ctx context.Context, theme string) error {
	if err := a.client.SetTheme(ctx, theme); err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Theme set to %s\n", theme)
	return nil
}
