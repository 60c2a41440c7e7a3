package keypair

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const (
	privateKeyBlockType = "PRIVATE KEY"
	publicKeyBlockType  = "PUBLIC KEY"
)

// Platform default line ending of produced PEM text.
var lineEnding = defaultLineEnding(runtime.GOOS)

func defaultLineEnding(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// encoding/pem always emits LF and wraps base64 at 64 columns.
func encodePEM(blockType string, der []byte) string {
	text := string(pem.EncodeToMemory(&pem.Block{
		Type:  blockType,
		Bytes: der,
	}))
	if lineEnding != "\n" {
		text = strings.ReplaceAll(text, "\n", lineEnding)
	}
	return text
}

func decodePEM(text, blockType string) ([]byte, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}
	return block.Bytes, nil
}

// ParsePrivateKey decode PKCS#8 PEM text into an RSA private key.
func ParsePrivateKey(text string) (*rsa.PrivateKey, error) {
	der, err := decodePEM(text, privateKeyBlockType)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA private key: %T", key)
	}
	return rsaKey, nil
}

// ParsePublicKey decode SubjectPublicKeyInfo PEM text into an RSA public key.
func ParsePublicKey(text string) (*rsa.PublicKey, error) {
	der, err := decodePEM(text, publicKeyBlockType)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key: %T", key)
	}
	return rsaKey, nil
}

// ReencodePrivateKey parse PEM text and encode the key again.
func ReencodePrivateKey(text string) (string, error) {
	key, err := ParsePrivateKey(text)
	if err != nil {
		return "", err
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", err
	}
	return encodePEM(privateKeyBlockType, der), nil
}

// ReencodePublicKey parse PEM text and encode the key again.
func ReencodePublicKey(text string) (string, error) {
	key, err := ParsePublicKey(text)
	if err != nil {
		return "", err
	}
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", err
	}
	return encodePEM(publicKeyBlockType, der), nil
}

// Matches reports whether both PEM documents hold the two halves of one RSA key.
func Matches(publicText, privateText string) (bool, error) {
	pub, err := ParsePublicKey(publicText)
	if err != nil {
		return false, err
	}
	priv, err := ParsePrivateKey(privateText)
	if err != nil {
		return false, err
	}
	return priv.PublicKey.Equal(pub), nil
}
