package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var exit = os.Exit

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		exit(1)
	}
}
