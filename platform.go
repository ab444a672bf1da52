package platform

import "embed"

// EmailFS embeds the notification email templates.
//
//go:embed templates/emails
var EmailFS embed.FS
