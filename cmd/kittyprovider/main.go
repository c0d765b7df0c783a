// Command kittyprovider runs the corsschool demonstration provider as a
// Terraform Plugin Protocol v6 plugin binary.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/terustform-go/terustform/examples/kittyprovider/kittyprovider"
	"github.com/terustform-go/terustform/logging"
	"github.com/terustform-go/terustform/transport"
)

func main() {
	logging.ConfigureLogrusJSON(logrus.StandardLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := transport.Serve(ctx, kittyprovider.New()); err != nil {
		logrus.WithError(err).Fatal("kittyprovider exited")
	}
}
