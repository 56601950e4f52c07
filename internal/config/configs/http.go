package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// SignatureMaxSkew bounds how far a signed request's timestamp may
	// drift from the server clock.
	SignatureMaxSkew time.Duration `env:"SIGNATURE_MAX_SKEW" envDefault:"5m"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"65536"`
}
