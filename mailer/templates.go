package mailer

import "fmt"

func verificationEmailHTML(code string) string {
	return fmt.Sprintf(`<html><body>
<h1>Verify your email</h1>
<p>Enter the code below to verify your FastBites account:</p>
<h2 style="letter-spacing:4px">%s</h2>
<p>The code expires in 24 hours.</p>
</body></html>`, code)
}

func welcomeEmailHTML(name string) string {
	return fmt.Sprintf(`<html><body>
<h1>Welcome to FastBites, %s!</h1>
<p>Your email has been verified. Hungry? Your next meal is a few clicks away.</p>
</body></html>`, name)
}

func passwordResetEmailHTML(resetURL string) string {
	return fmt.Sprintf(`<html><body>
<h1>Reset your password</h1>
<p>Click the link below to choose a new password. The link expires in 1 hour.</p>
<p><a href="%s">Reset password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>
</body></html>`, resetURL)
}

func resetSuccessEmailHTML() string {
	return `<html><body>
<h1>Password reset successful</h1>
<p>Your FastBites password has been changed. If this wasn't you, contact support immediately.</p>
</body></html>`
}
