package transport

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"time"
)

// certValidityBefore and certValidityAfter bound the self-signed server
// certificate's validity window, matching go-plugin's own generated
// identity (spec §4.8).
const (
	certValidityBefore = -30 * time.Second
	certValidityAfter  = 262_980 * time.Second
)

// generatedIdentity is the server's self-signed mTLS identity: a
// certificate and the private key that signed it.
type generatedIdentity struct {
	tlsCert tls.Certificate
	derCert []byte
}

// generateServerCert builds an ECDSA P-256 self-signed certificate with
// subject CN=localhost, O=HashiCorp, SAN localhost, matching the identity
// go-plugin's clients expect (spec §4.8), grounded on
// terustform/src/server/cert.rs.
func generateServerCert() (generatedIdentity, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return generatedIdentity{}, fmt.Errorf("generating keypair: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return generatedIdentity{}, fmt.Errorf("generating serial number: %w", err)
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			Organization: []string{"HashiCorp"},
			CommonName:   "localhost",
		},
		DNSNames:              []string{"localhost"},
		NotBefore:             now.Add(certValidityBefore),
		NotAfter:              now.Add(certValidityAfter),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment | x509.KeyUsageKeyAgreement | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return generatedIdentity{}, fmt.Errorf("signing certificate: %w", err)
	}

	tlsCert := tls.Certificate{
		Certificate: [][]byte{der},
		PrivateKey:  key,
	}

	return generatedIdentity{tlsCert: tlsCert, derCert: der}, nil
}
