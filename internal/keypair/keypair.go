// Package keypair generates RSA key pairs and returns them PEM encoded.
//
// A request is accepted only for modulus sizes from the allow-list, any other
// size is rejected before any cryptographic work starts. Each call is
// independent: no key is cached or stored and the returned pair belongs to
// the caller.
package keypair

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"

	"github.com/sourcecd/keypairgen/internal/customerrors"
	"github.com/sourcecd/keypairgen/internal/logging"
	"github.com/sourcecd/keypairgen/internal/models"
)

// Allowed RSA modulus sizes in bits.
var allowedSizes = []int{1024, 2048, 4096}

type (
	// Generator produces RSA key pairs. Zero value is not usable, use NewGenerator.
	Generator struct {
		random         io.Reader
		generateKey    func(random io.Reader, bits int) (*rsa.PrivateKey, error)
		marshalPrivate func(key any) ([]byte, error)
		marshalPublic  func(key any) ([]byte, error)
	}

	// Result outcome of an asynchronous generation, exactly one field is set.
	Result struct {
		Pair *models.KeyPair
		Err  error
	}
)

// NewGenerator init generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{
		random:         rand.Reader,
		generateKey:    rsa.GenerateKey,
		marshalPrivate: x509.MarshalPKCS8PrivateKey,
		marshalPublic:  x509.MarshalPKIXPublicKey,
	}
}

// AllowedSizes returns a copy of the accepted modulus sizes.
func AllowedSizes() []int {
	return slices.Clone(allowedSizes)
}

// AllowedSizes same as package AllowedSizes.
func (g *Generator) AllowedSizes() []int {
	return AllowedSizes()
}

// Generate creates a fresh RSA key pair of the given modulus size.
// Either a complete pair or an error is returned, never both.
func (g *Generator) Generate(bits int) (*models.KeyPair, error) {
	if !slices.Contains(allowedSizes, bits) {
		return nil, customerrors.Newf(customerrors.ErrInvalidKeySize,
			"Invalid key size: %d. Must be %s", bits, sizesText())
	}

	logging.Log.Info("starting key generation", zap.Int("bits", bits))
	start := time.Now()

	privateKey, err := g.generateKey(g.random, bits)
	if err != nil {
		return nil, customerrors.Newf(customerrors.ErrKeyGenerationFailed,
			"Failed to generate private key: %s", err)
	}
	publicKey := &privateKey.PublicKey

	privateDER, err := g.marshalPrivate(privateKey)
	if err != nil {
		return nil, customerrors.Newf(customerrors.ErrEncodingFailed,
			"Failed to convert private key to PEM: %s", err)
	}
	publicDER, err := g.marshalPublic(publicKey)
	if err != nil {
		return nil, customerrors.Newf(customerrors.ErrEncodingFailed,
			"Failed to convert public key to PEM: %s", err)
	}

	pair := &models.KeyPair{
		PublicKey:  encodePEM(publicKeyBlockType, publicDER),
		PrivateKey: encodePEM(privateKeyBlockType, privateDER),
	}

	logging.Log.Info("key generation completed",
		zap.Int("bits", bits),
		zap.Duration("duration", time.Since(start)),
		zap.String("fingerprint", fingerprint(publicKey)),
	)
	return pair, nil
}

// Go runs Generate on its own goroutine. The channel receives exactly one
// Result and is buffered, so an abandoned result does not block the worker.
func (g *Generator) Go(bits int) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		pair, err := g.Generate(bits)
		ch <- Result{Pair: pair, Err: err}
	}()
	return ch
}

// "1024, 2048, or 4096"
func sizesText() string {
	s := make([]string, len(allowedSizes))
	for i, v := range allowedSizes {
		s[i] = strconv.Itoa(v)
	}
	last := len(s) - 1
	if last == 0 {
		return s[0]
	}
	return strings.Join(s[:last], ", ") + ", or " + s[last]
}

// SHA256 fingerprint in ssh notation, empty on failure.
func fingerprint(pub *rsa.PublicKey) string {
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return ""
	}
	return ssh.FingerprintSHA256(sshPub)
}
