// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", rootCmd.Name(), err)
		os.Exit(1)
	}
}
