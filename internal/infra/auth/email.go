package auth

import (
	"smartfit/internal/domain/service"
)

func verificationEmail(to, link string) *service.Email {
	body := "Welcome to SmartFit. Your email address has been registered."
	if link != "" {
		body = "Welcome to SmartFit. Please verify your email address by opening this link:\n\n" + link
	}

	return &service.Email{
		To:        to,
		Subject:   "Verify your SmartFit email",
		PlainText: body,
	}
}
