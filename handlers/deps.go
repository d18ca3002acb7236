package handlers

import (
	"fastbites-api/mailer"
	"fastbites-api/payments"
	"fastbites-api/upload"
)

// External service clients, wired in main and replaced by stubs in
// tests.
var (
	Mail     mailer.Mailer
	Images   upload.ImageUploader
	Payments payments.Client
)
