// Package client calls the key pair bridge over http.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/sourcecd/keypairgen/internal/cryptandsign"
	"github.com/sourcecd/keypairgen/internal/customerrors"
	"github.com/sourcecd/keypairgen/internal/models"
	"github.com/sourcecd/keypairgen/internal/retrier"
	"github.com/sourcecd/keypairgen/internal/server"
)

// Client of the command bridge.
type Client struct {
	resty      *resty.Client
	reqRetrier *retrier.Retrier
	send       cryptandsign.SendFunc
	serverHost string
	keyenc     string
}

func send(r *resty.Request, body, url string) (*resty.Response, error) {
	return r.SetBody(body).Post(url)
}

// New init client from config.
func New(config ConfigArgs) *Client {
	serverHost := config.ServerAddr
	if !strings.HasPrefix(serverHost, "http://") && !strings.HasPrefix(serverHost, "https://") {
		serverHost = "http://" + serverHost
	}
	return &Client{
		resty:      resty.New(),
		reqRetrier: retrier.NewRetrier(),
		send:       cryptandsign.SignNew(send, config.KeyEnc),
		serverHost: serverHost,
		keyenc:     config.KeyEnc,
	}
}

// Retrier access to retry settings.
func (c *Client) Retrier() *retrier.Retrier {
	return c.reqRetrier
}

// Maps a non 200 answer to a classified error keeping the server message verbatim.
func answerError(resp *resty.Response) error {
	var genErr models.GenerationError
	if strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") &&
		json.Unmarshal(resp.Body(), &genErr) == nil && genErr.Message != "" {
		return &customerrors.KindError{
			Kind:    kindFor(resp.StatusCode(), customerrors.ByName(genErr.Details)),
			Message: genErr.Message,
		}
	}
	return &customerrors.KindError{
		Kind:    kindFor(resp.StatusCode(), customerrors.ErrBridgeFailed),
		Message: strings.TrimSuffix(string(resp.Body()), "\n"),
	}
}

// unclassified 4xx answers are never retried
func kindFor(status int, kind error) error {
	if kind == customerrors.ErrBridgeFailed && status >= 400 && status < 500 {
		return customerrors.ErrBadRequest
	}
	return kind
}

func (c *Client) checkSign(resp *resty.Response) error {
	if c.keyenc == "" {
		return nil
	}
	if !cryptandsign.Verify(resp.Body(), resp.Header().Get(cryptandsign.SignHeader), c.keyenc) {
		return customerrors.Newf(customerrors.ErrBadSignature, "answer signature mismatch")
	}
	return nil
}

func (c *Client) generateKeypair(ctx context.Context, bits int) (*models.KeyPair, error) {
	body, err := json.Marshal(models.KeyRequest{Bits: bits})
	if err != nil {
		return nil, err
	}
	r := c.resty.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	resp, err := c.send(r, string(body), c.serverHost+"/invoke/"+server.GenerateKeypairCommand)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, answerError(resp)
	}
	if err := c.checkSign(resp); err != nil {
		return nil, err
	}

	var pair models.KeyPair
	if err := json.Unmarshal(resp.Body(), &pair); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}
	if pair.PublicKey == "" || pair.PrivateKey == "" {
		return nil, customerrors.Newf(customerrors.ErrBridgeFailed, "incomplete key pair in answer")
	}
	return &pair, nil
}

func (c *Client) allowedSizes(ctx context.Context) ([]int, error) {
	resp, err := c.resty.R().SetContext(ctx).Get(c.serverHost + "/sizes")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, answerError(resp)
	}
	var sizes []int
	if err := json.Unmarshal(resp.Body(), &sizes); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}
	return sizes, nil
}

// GenerateKeypair invoke generate_keypair on the bridge, transport failures are retried.
func (c *Client) GenerateKeypair(ctx context.Context, bits int) (*models.KeyPair, error) {
	return c.reqRetrier.UseRetrierGenerate(c.generateKeypair)(ctx, bits)
}

// AllowedSizes key sizes accepted by the bridge.
func (c *Client) AllowedSizes(ctx context.Context) ([]int, error) {
	return c.reqRetrier.UseRetrierSizes(c.allowedSizes)(ctx)
}
