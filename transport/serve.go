// Package transport implements bring-up (spec component C8): environment
// validation, the self-signed mTLS identity, the Unix-domain-socket gRPC
// listener, the go-plugin handshake line, and cooperative shutdown.
//
// Grounded on terustform/src/server/mod.rs; the cancellation token pattern
// (tokio_util::sync::CancellationToken) is replaced by a plain Go
// context.Context, cancelled from the same places the Rust original
// cancels its token.
package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/terustform-go/terustform/handler"
	"github.com/terustform-go/terustform/internal/tfplugin6"
	"github.com/terustform-go/terustform/provider"
)

// controller implements tfplugin6.GRPCControllerServer. Its sole RPC,
// Shutdown, is go-plugin's own way to terminate the child process,
// independent of the provider protocol's StopProvider.
type controller struct {
	cancel context.CancelFunc
}

func (c *controller) Shutdown(context.Context, *tfplugin6.ShutdownRequest) (*tfplugin6.ShutdownResponse, error) {
	c.cancel()
	return &tfplugin6.ShutdownResponse{}, nil
}

// Serve brings up the plugin transport and runs until ctx is cancelled, the
// handler's Shutdown channel closes, or the listener fails. It returns nil
// on a clean shutdown.
func Serve(ctx context.Context, p provider.Provider) error {
	if err := checkPortEnv(); err != nil {
		return fmt.Errorf("bring-up: %w", err)
	}

	clientCertPEM, ok := os.LookupEnv("PLUGIN_CLIENT_CERT")
	if !ok {
		return fmt.Errorf("bring-up: PLUGIN_CLIENT_CERT not found")
	}

	identity, err := generateServerCert()
	if err != nil {
		return fmt.Errorf("bring-up: generating server certificate: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "terustform-plugin-")
	if err != nil {
		return fmt.Errorf("bring-up: creating temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	sockPath := socketPath(tmpDir)
	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return fmt.Errorf("bring-up: binding unix listener: %w", err)
	}

	clientCAs := x509.NewCertPool()
	if !clientCAs.AppendCertsFromPEM([]byte(clientCertPEM)) {
		return fmt.Errorf("bring-up: PLUGIN_CLIENT_CERT did not contain a valid certificate")
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{identity.tlsCert},
		ClientCAs:    clientCAs,
		// Terraform's client does not always present a certificate, so
		// client authentication must remain optional (spec §4.8).
		ClientAuth: tls.VerifyClientCertIfGiven,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := handler.New(p)
	go func() {
		<-h.Shutdown
		cancel()
	}()

	grpcServer := grpc.NewServer(grpc.Creds(credentials.NewTLS(tlsConfig)))
	grpcServer.RegisterService(&tfplugin6.ProviderServiceDesc, handler.NewDispatch(h))
	grpcServer.RegisterService(&tfplugin6.GRPCControllerServiceDesc, &controller{cancel: cancel})

	if err := printHandshakeLine(sockPath, identity.derCert); err != nil {
		return fmt.Errorf("bring-up: writing handshake line: %w", err)
	}

	logrus.WithField("socket", sockPath).Info("listening")

	serveErr := make(chan error, 1)
	go func() { serveErr <- grpcServer.Serve(listener) }()

	select {
	case <-ctx.Done():
		grpcServer.GracefulStop()
		return nil
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	}
}
