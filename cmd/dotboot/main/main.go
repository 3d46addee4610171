package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dotboot/cmd/dotboot"
	"github.com/arthur-debert/dotboot/pkg/output/styles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := dotboot.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !dotboot.IsReported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		stop()
		os.Exit(1)
	}
}
