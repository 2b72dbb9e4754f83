package main

import (
	"fmt"
)

type registerCmd struct {
	Username string `arg:"" help:"Username to register."`
	Password string `arg:"" help:"Password."`
}

func (r *registerCmd) Run(app *appCtx) error {
	id, err := app.client.Register(app.ctx, r.Username, r.Password)
	if err != nil {
		return err
	}
	if err := app.sess.Set(id); err != nil {
		return err
	}
	fmt.Println("registered as", id.UserID)
	return nil
}

type loginCmd struct {
	Username string `arg:"" help:"Username."`
	Password string `arg:"" help:"Password."`
}

func (l *loginCmd) Run(app *appCtx) error {
	id, err := app.client.Login(app.ctx, l.Username, l.Password)
	if err != nil {
		return err
	}
	if err := app.sess.Set(id); err != nil {
		return err
	}
	fmt.Println("logged in as", id.UserID)
	return nil
}

type refreshCmd struct{}

func (r *refreshCmd) Run(app *appCtx) error {
	id, err := app.client.Refresh(app.ctx)
	if err != nil {
		return err
	}
	if err := app.sess.Set(id); err != nil {
		return err
	}
	fmt.Println("session refreshed for", id.UserID)
	return nil
}

type logoutCmd struct{}

func (l *logoutCmd) Run(app *appCtx) error {
	return app.sess.Clear()
}

type meCmd struct{}

func (m *meCmd) Run(app *appCtx) error {
	profile, err := app.client.Me(app.ctx)
	if err != nil {
		return err
	}
	return dump(profile)
}
