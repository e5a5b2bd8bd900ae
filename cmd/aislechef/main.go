package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/aislechef-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "aislechef: %v\n", err)
		os.Exit(1)
	}
}
