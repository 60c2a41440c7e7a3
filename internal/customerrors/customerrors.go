// Package customerrors failure classes of key pair generation and the command bridge.
package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKeySize      = errors.New("invalid key size")
	ErrKeyGenerationFailed = errors.New("key generation failed")
	ErrEncodingFailed      = errors.New("encoding failed")
	ErrBadRequest          = errors.New("bad request")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrBadSignature        = errors.New("bad signature")
	ErrBridgeFailed        = errors.New("bridge failed")
)

// names used for the "details" field of a structured error answer.
var kindNames = []struct {
	kind error
	name string
}{
	{ErrInvalidKeySize, "InvalidKeySize"},
	{ErrKeyGenerationFailed, "KeyGenerationFailed"},
	{ErrEncodingFailed, "EncodingFailed"},
	{ErrBadRequest, "BadRequest"},
	{ErrUnknownCommand, "UnknownCommand"},
	{ErrBadSignature, "BadSignature"},
	{ErrBridgeFailed, "BridgeFailed"},
}

// KindError carries the verbatim message shown to the user and its failure class.
type KindError struct {
	Kind    error
	Message string
}

func (e *KindError) Error() string {
	return e.Message
}

func (e *KindError) Unwrap() error {
	return e.Kind
}

// Newf build KindError with formatted message.
func Newf(kind error, format string, a ...any) error {
	return &KindError{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

// KindName returns class name of err or empty string for unclassified errors.
func KindName(err error) string {
	for _, v := range kindNames {
		if errors.Is(err, v.kind) {
			return v.name
		}
	}
	return ""
}

// ByName reverse of KindName, unknown names map to ErrBridgeFailed.
func ByName(name string) error {
	for _, v := range kindNames {
		if v.name == name {
			return v.kind
		}
	}
	return ErrBridgeFailed
}
