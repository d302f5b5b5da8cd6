// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/noldarim/portfolio/internal/archive"
	"github.com/noldarim/portfolio/internal/config"
	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/emailjs"
	"github.com/noldarim/portfolio/internal/logger"
	"github.com/noldarim/portfolio/internal/server"
)

// delivery is the assembled sending pipeline.
type delivery struct {
	Sender contact.Sender
	// Messages is set when the archive is enabled.
	Messages server.MessageLister
	close    func() error
}

func (d *delivery) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// unconfiguredSender rejects every submission. The page still renders, and
// visitors see the ordinary failure message.
var unconfiguredSender = contact.SenderFunc(func(context.Context, contact.Form) error {
	return emailjs.ErrNotConfigured
})

// newDelivery builds the EmailJS sender, wrapped with the message archive
// when the database is enabled.
func newDelivery(cfg *config.AppConfig) (*delivery, error) {
	log := logger.GetLogger("cli")

	var sender contact.Sender = unconfiguredSender
	client, err := emailjs.New(cfg.EmailJS)
	switch {
	case err == nil:
		sender = client
	case errors.Is(err, emailjs.ErrNotConfigured):
		log.Warn().Msg("EmailJS credentials missing, contact submissions will fail")
	default:
		return nil, err
	}

	d := &delivery{Sender: sender}
	if !cfg.Database.Enabled {
		return d, nil
	}

	db, err := archive.NewGormDB(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.ValidateSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w (run `%s migrate` first)", err, appName)
	}
	d.Sender = archive.NewSender(sender, db)
	d.Messages = db
	d.close = db.Close
	return d, nil
}
