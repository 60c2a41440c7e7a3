package client

// ConfigArgs stores bridge client config information.
type ConfigArgs struct {
	ServerAddr string // bridge address
	KeyEnc     string // shared key for HMAC signing, empty disables signing
}
