// The vahanlens binary is the entrypoint for registration analytics.
package main

import (
	"github.com/vahanlens/vahanlens/cmd"
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/internal/regstore"
)

func main() {
	defer regstore.CloseStore()
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("executing command", err)
	}
}
