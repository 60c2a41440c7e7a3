// Package retrier retry logic for bridge calls.
package retrier

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/sourcecd/keypairgen/internal/customerrors"
	"github.com/sourcecd/keypairgen/internal/models"
)

type (
	// Retrier type of retry subsystem.
	Retrier struct {
		skippedErrors []error       // non-retriable errors
		maxRetries    uint64        // maximum retry counts
		fiboDuration  time.Duration // base duration between retries by fibonacci algorithm
		timeout       time.Duration // whole call timeout including retries
	}

	// GenerateKeypairType type of function for generate_keypair call retry.
	GenerateKeypairType func(ctx context.Context, bits int) (*models.KeyPair, error)
	// AllowedSizesType type of function for allowed sizes call retry.
	AllowedSizesType func(ctx context.Context) ([]int, error)
)

func (reqRetrier *Retrier) retriable(err error) bool {
	for _, v := range reqRetrier.skippedErrors {
		if errors.Is(err, v) {
			return false
		}
	}
	return true
}

func (reqRetrier *Retrier) do(ctx context.Context, f func(ctx context.Context) error) error {
	// backoff keeps state, so one per call
	bf := retry.WithMaxRetries(reqRetrier.maxRetries, retry.NewFibonacci(reqRetrier.fiboDuration))

	ctx, cancel := context.WithTimeout(ctx, reqRetrier.timeout)
	defer cancel()
	return retry.Do(ctx, bf, func(ctx context.Context) error {
		err := f(ctx)
		if err == nil || !reqRetrier.retriable(err) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// UseRetrierGenerate retry method for GenerateKeypair function.
func (reqRetrier *Retrier) UseRetrierGenerate(f GenerateKeypairType) GenerateKeypairType {
	return func(ctx context.Context, bits int) (*models.KeyPair, error) {
		var pair *models.KeyPair
		err := reqRetrier.do(ctx, func(ctx context.Context) error {
			var err error
			pair, err = f(ctx, bits)
			return err
		})
		if err != nil {
			return nil, err
		}
		return pair, nil
	}
}

// UseRetrierSizes retry method for AllowedSizes function.
func (reqRetrier *Retrier) UseRetrierSizes(f AllowedSizesType) AllowedSizesType {
	return func(ctx context.Context) ([]int, error) {
		var sizes []int
		err := reqRetrier.do(ctx, func(ctx context.Context) error {
			var err error
			sizes, err = f(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
		return sizes, nil
	}
}

// SetParams set retry parameters.
func (reqRetrier *Retrier) SetParams(fibotime, timeout time.Duration, maxretries uint64) {
	reqRetrier.fiboDuration = fibotime
	reqRetrier.maxRetries = maxretries
	reqRetrier.timeout = timeout
}

// NewRetrier init retrier.
// 4096 bit generation may take seconds, so the default timeout is generous.
func NewRetrier() *Retrier {
	return &Retrier{
		fiboDuration: 1 * time.Second,
		maxRetries:   3,
		timeout:      2 * time.Minute,
		skippedErrors: []error{
			customerrors.ErrInvalidKeySize,
			customerrors.ErrKeyGenerationFailed,
			customerrors.ErrEncodingFailed,
			customerrors.ErrBadRequest,
			customerrors.ErrUnknownCommand,
			customerrors.ErrBadSignature,
			context.Canceled,
		},
	}
}

// GetTimeoutCtx current timeout setting.
func (reqRetrier *Retrier) GetTimeoutCtx() time.Duration {
	return reqRetrier.timeout
}
