// Command cropctl applies fixed-size crops to images and videos without the
// desktop UI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dixieflatline76/Cropper/config"
	"github.com/dixieflatline76/Cropper/util/log"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
