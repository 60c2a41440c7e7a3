// Package models request and answer shapes of the generate_keypair command.
package models

// KeyRequest command payload.
type KeyRequest struct {
	Bits int `json:"bits"` // requested modulus bit-length
}

// KeyPair successful command answer, both keys PEM encoded.
type KeyPair struct {
	PublicKey  string `json:"public_key"`  // SubjectPublicKeyInfo PEM
	PrivateKey string `json:"private_key"` // PKCS#8 PEM
}

// GenerationError structured failure answer, sent when the caller accepts JSON.
type GenerationError struct {
	Message string `json:"message"` // text shown to the user verbatim
	Details string `json:"details"` // failure class, e.g. InvalidKeySize
}
