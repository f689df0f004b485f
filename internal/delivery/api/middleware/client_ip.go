package middleware

import (
	"net"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewIPExtractor decides which address c.RealIP reports.
// With no trusted proxies the socket peer is used and forwarding headers are ignored.
// Otherwise X-Forwarded-For is honoured only across hops inside the listed CIDR ranges.
func NewIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy range %q", cidr)
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}
