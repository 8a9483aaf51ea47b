package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/mileusna/useragent"
)

// ExtractClientMeta derives the client metadata recorded alongside leads and
// visitor sessions. The first X-Forwarded-For entry wins so the original
// client survives proxy chains.
func ExtractClientMeta(c *gin.Context) user.ClientMeta {
	meta := user.ClientMeta{
		IPAddress:       clientIP(c),
		UserAgent:       c.GetHeader("User-Agent"),
		Device:          "Unknown Device",
		Browser:         "Unknown Browser",
		OperatingSystem: "Unknown OS",
	}

	ua := useragent.Parse(meta.UserAgent)
	switch {
	case ua.Mobile:
		meta.Device = "Mobile"
	case ua.Tablet:
		meta.Device = "Tablet"
	case ua.Desktop:
		meta.Device = "Desktop"
	case ua.Bot:
		meta.Device = "Bot"
	}
	if ua.Name != "" {
		meta.Browser = ua.Name
		if ua.Version != "" {
			meta.Browser = ua.Name + " " + ua.Version
		}
	}
	if ua.OS != "" {
		meta.OperatingSystem = ua.OS
		if ua.OSVersion != "" {
			meta.OperatingSystem = ua.OS + " " + ua.OSVersion
		}
	}

	return meta
}

func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if first, _, found := strings.Cut(forwarded, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
