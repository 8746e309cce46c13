// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package mailing sends transactional email over SMTP.
package mailing

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config is the SMTP endpoint and sender identity.
type Config struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Email    string `koanf:"email"`
	Password string `koanf:"password"`
}

type Sender struct {
	conf Config
}

func NewSender(conf Config) *Sender {
	return &Sender{conf: conf}
}

// SendVerification mails the signed verification link to the user.
func (s *Sender) SendVerification(toEmail string, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.conf.Email)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Verify your MyFridgeAI account")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Welcome to MyFridgeAI!</p><p>Please <a href=%q>verify your email address</a> to start tracking your fridge.</p>",
		link,
	))

	dialer := gomail.NewDialer(s.conf.Host, s.conf.Port, s.conf.Email, s.conf.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailing: sending verification mail: %w", err)
	}
	return nil
}
