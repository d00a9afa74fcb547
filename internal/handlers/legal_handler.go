package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/littlesous/backend/internal/config"
)

type LegalHandler struct {
	cfg *config.Config
}

func NewLegalHandler(cfg *config.Config) *LegalHandler {
	return &LegalHandler{cfg: cfg}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	appName := h.cfg.AppName

	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - ` + appName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: August 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address and the child profile details you enter (first name, age, and food preferences) to personalize recipes. Child profiles are created and managed entirely by the parent account holder.</p>
<h2>Children's Privacy</h2>
<p>` + appName + ` accounts belong to parents and guardians. We never collect information directly from children, and child profile data is only visible to the parent account that created it.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate ` + appName + `, authenticate your account, and generate personalized recipe cards.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties.</p>
<h2>Account Deletion</h2>
<p>You can delete your account, including all child profiles and recipes, at any time from the app settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@littlesous.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	appName := h.cfg.AppName

	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - ` + appName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: August 2026</p>
<h2>Acceptance</h2>
<p>By using ` + appName + `, you agree to these terms.</p>
<h2>Recipes</h2>
<p>Generated recipes are suggestions for cooking together with your child. Always supervise children in the kitchen and check recipes against your child's allergies and dietary needs before cooking.</p>
<h2>Subscriptions</h2>
<p>Premium features require an active subscription managed through the App Store. Subscriptions auto-renew unless cancelled 24 hours before the end of the current period.</p>
<h2>Termination</h2>
<p>We may suspend or terminate accounts that violate these terms.</p>
<h2>Contact</h2>
<p>For questions, contact us at support@littlesous.app</p>
</body></html>`)
}
