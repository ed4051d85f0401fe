/*
 *  main.go
 *  cmd
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/tanghaibao/genegraph"
)

// main is the entrypoint for the entire program, routes to commands
func main() {
	logging.SetBackend(genegraph.BackendFormatter)
	if err := Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
