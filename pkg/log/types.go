package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

const (
	ModeProduction = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"
