// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noldarim/portfolio/internal/contact"
)

// errSendFailed marks a submission that reached the sender and failed. The
// message was already printed.
var errSendFailed = errors.New("message not sent")

func newSendCommand(a *app) *cobra.Command {
	var form contact.Form

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit one contact message through the configured sender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := newDelivery(a.cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			flow := contact.NewFlow()
			flow.Fill(form)
			res, err := flow.Submit(cmd.Context(), d.Sender)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			if res.Status != contact.StatusSuccess {
				return fmt.Errorf("%w: %v", errSendFailed, res.Err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&form.Email, "email", "", "reply-to address")
	cmd.Flags().StringVar(&form.Message, "message", "", "message body")
	return cmd
}
