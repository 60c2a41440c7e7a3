package server

// ConfigArgs stores bridge server config information.
type ConfigArgs struct {
	ServerAddr string // bind address and port
	Loglevel   string // zap log level
	KeyEnc     string // shared key for HMAC signing, empty disables signing
}
