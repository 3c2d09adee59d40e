/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"os"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"golang.org/x/crypto/bcrypt"
)

// passphraseHashEnvVar holds the bcrypt hash of the dashboard passphrase.
const passphraseHashEnvVar = "VITALBOARD_PASSPHRASE_HASH"

// LoginForm renders the login page
func LoginForm(c flamego.Context, t template.Template, data template.Data) {
	data["HeaderOnly"] = true
	t.HTML(http.StatusOK, "login")
}

// Login checks the submitted passphrase against the configured hash.
func Login(c flamego.Context, s session.Session) {
	hash := os.Getenv(passphraseHashEnvVar)
	if hash == "" {
		logger.Error("Login attempted without passphrase hash configured", "env", passphraseHashEnvVar)
		SetErrorFlash(s, "Login is not configured")
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	passphrase := c.Request().FormValue("passphrase")
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)); err != nil {
		logAccessDenied(c, s, "bad_passphrase", http.StatusSeeOther, "/login")
		SetErrorFlash(s, "Incorrect passphrase")
		c.Redirect("/login", http.StatusSeeOther)
		return
	}

	if err := s.RegenerateID(c.ResponseWriter(), c.Request().Request); err != nil {
		logger.Warn("Failed to regenerate session ID on login", "error", err)
	}

	s.Set("authenticated", true)
	c.Redirect("/", http.StatusSeeOther)
}

// Logout handles logout request
func Logout(s session.Session, c flamego.Context) {
	s.Delete("authenticated")
	c.Redirect("/login")
}

// RequireAuth is a middleware that checks if user is authenticated
func RequireAuth(s session.Session, c flamego.Context) {
	authenticated, ok := s.Get("authenticated").(bool)
	if !ok || !authenticated {
		c.Redirect("/login")
		return
	}
	c.Next()
}
