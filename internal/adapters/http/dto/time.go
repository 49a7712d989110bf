package dto

// TimeResponse is the payload of the server-time endpoint.
type TimeResponse struct {
	// NowISO is the current server time in RFC 3339 / ISO 8601 form.
	NowISO string `json:"nowIso"`

	// UptimeSeconds is the number of whole seconds since the process
	// started.
	UptimeSeconds int64 `json:"uptimeSeconds"`
}
