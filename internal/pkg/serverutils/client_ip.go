package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UnknownClient is the fallback bucket when no forwarding header is present.
const UnknownClient = "unknown"

// ClientKey extracts a best-effort client address for rate-limit bucketing.
// Fallback order: x-forwarded-for (first hop) -> x-real-ip ->
// cf-connecting-ip -> "unknown". Headers are spoofable, so this is an
// advisory key, not an authentication mechanism.
func ClientKey(ctx *fiber.Ctx) string {
	if fwd := ctx.Get("x-forwarded-for"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(ctx.Get("x-real-ip")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(ctx.Get("cf-connecting-ip")); ip != "" {
		return ip
	}
	return UnknownClient
}
