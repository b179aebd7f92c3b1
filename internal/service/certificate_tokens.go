package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	tokenAlphabet          = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	certificateSuffixLen   = 8
	verificationCodeLength = 12
)

// TokenGenerator produces the public identifiers of a certificate.
type TokenGenerator interface {
	// CertificateID returns CERT-<YYYYMMDD>-<8 chars> for the UTC date of issuedAt.
	CertificateID(issuedAt time.Time) (string, error)
	VerificationCode() (string, error)
}

type randomTokenGenerator struct{}

func NewTokenGenerator() TokenGenerator {
	return randomTokenGenerator{}
}

func (randomTokenGenerator) CertificateID(issuedAt time.Time) (string, error) {
	suffix, err := randomToken(certificateSuffixLen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CERT-%s-%s", issuedAt.UTC().Format("20060102"), suffix), nil
}

func (randomTokenGenerator) VerificationCode() (string, error) {
	return randomToken(verificationCodeLength)
}

func randomToken(n int) (string, error) {
	bound := big.NewInt(int64(len(tokenAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", fmt.Errorf("failed to read random token: %w", err)
		}
		buf[i] = tokenAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
