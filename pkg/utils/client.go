package utils

import (
	"github.com/cloudwego/hertz/pkg/app"
)

// ClientInfo is the coarse device/location snapshot attached to action
// events. City and pincode stay empty until IP geolocation is wired in.
type ClientInfo struct {
	Device  string
	Ip      string
	Country string
}

// GetClientInfo pulls the device and coarse location from request headers.
func GetClientInfo(c *app.RequestContext) ClientInfo {
	ip := string(c.GetHeader("X-Forwarded-For"))
	if ip == "" {
		ip = c.ClientIP()
	}
	return ClientInfo{
		Device:  string(c.UserAgent()),
		Ip:      ip,
		Country: string(c.GetHeader("CF-IPCountry")),
	}
}
