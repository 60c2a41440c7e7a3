package server

import "github.com/sourcecd/keypairgen/internal/keypair"

//go:generate mockgen -destination=mock_generator_test.go -package=server . KeyPairGenerator

// KeyPairGenerator backend of the generate_keypair command.
type KeyPairGenerator interface {
	Go(bits int) <-chan keypair.Result
	AllowedSizes() []int
}
