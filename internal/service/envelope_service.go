package service

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"

	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/pkg/apperror"
)

// RSAEnvelopeCodec implements ports.EnvelopeCodec with RSA-OAEP/SHA-256.
// Each recipient bank gets its own ciphertext of the same payload;
// opening it with the matching private key is the bank's proof of
// authorization.
type RSAEnvelopeCodec struct{}

// NewRSAEnvelopeCodec creates the codec.
func NewRSAEnvelopeCodec() *RSAEnvelopeCodec {
	return &RSAEnvelopeCodec{}
}

// Seal encrypts the payload for the holder of publicKeyPEM and returns
// a base64 ciphertext.
func (c *RSAEnvelopeCodec) Seal(payload domain.VerificationPayload, publicKeyPEM string) (string, error) {
	pub, err := parsePublicKey(publicKeyPEM)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("parsing public key: %w", err))
	}
	plaintext, err := payload.Encode()
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("encoding payload: %w", err))
	}
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, plaintext, nil)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("sealing payload: %w", err))
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Open decrypts a ciphertext with privateKeyPEM. It fails with a
// DecryptionFailure when the ciphertext was not sealed for that key or
// has been corrupted; callers treat that as a negative verification
// result, not a fatal error.
func (c *RSAEnvelopeCodec) Open(ciphertext string, privateKeyPEM string) (*domain.VerificationPayload, error) {
	priv, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parsing private key: %w", err))
	}
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, apperror.ErrDecryptionFailure(fmt.Errorf("decoding ciphertext: %w", err))
	}
	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, raw, nil)
	if err != nil {
		return nil, apperror.ErrDecryptionFailure(err)
	}
	payload, err := domain.DecodeVerificationPayload(plaintext)
	if err != nil {
		return nil, apperror.ErrDecryptionFailure(fmt.Errorf("parsing payload: %w", err))
	}
	return payload, nil
}

// GenerateBankKeys creates a fresh RSA-2048 keypair in PEM form, for
// provisioning bank records and for tests.
func GenerateBankKeys() (domain.BankKeys, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return domain.BankKeys{}, fmt.Errorf("generating keypair: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return domain.BankKeys{}, fmt.Errorf("marshaling private key: %w", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return domain.BankKeys{}, fmt.Errorf("marshaling public key: %w", err)
	}

	return domain.BankKeys{
		PublicKey: string(pem.EncodeToMemory(&pem.Block{
			Type: "PUBLIC KEY", Bytes: pubDER,
		})),
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{
			Type: "PRIVATE KEY", Bytes: privDER,
		})),
	}, nil
}

// parsePublicKey accepts an armored PEM block or a bare base64 body;
// bank record files historically stored keys without armor headers.
func parsePublicKey(keyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(armor(keyPEM, "PUBLIC KEY")))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}
	return rsaPub, nil
}

func parsePrivateKey(keyPEM string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(armor(keyPEM, "PRIVATE KEY")))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaPriv, ok := priv.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA private key")
	}
	return rsaPriv, nil
}

func armor(key, blockType string) string {
	if strings.Contains(key, "-----BEGIN") {
		return key
	}
	return fmt.Sprintf("-----BEGIN %s-----\n%s\n-----END %s-----", blockType, strings.TrimSpace(key), blockType)
}
