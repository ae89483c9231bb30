//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/drummonds/goOrders/router"
	"github.com/drummonds/goOrders/webapp"
)

func main() {
	rt, err := webapp.NewRouter(router.WebHistory)
	if err != nil {
		webapp.Logger.Error("Invalid route table", "error", err)
		return
	}

	// This main function is for the WASM build only
	// It initializes the go-app when running in the browser
	if _, err := webapp.Start(webapp.NewApp, rt, webapp.DefaultMountTarget); err != nil {
		webapp.Logger.Error("Unable to start app", "error", err)
	}
}
