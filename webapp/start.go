package webapp

import (
	"errors"
	"fmt"
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/goOrders/router"
)

// DefaultMountTarget is the element id the application renders into
const DefaultMountTarget = "app"

// ErrAlreadyStarted is returned when Start is called more than once
var ErrAlreadyStarted = errors.New("application already started")

var startOnce sync.Once

// Instance is the running application: the router every navigation goes
// through and the element the application is mounted on
type Instance struct {
	Router      *router.Router
	MountTarget string
}

// NewApp is the default root component factory
func NewApp(inst *Instance) app.Composer {
	return &App{Instance: inst}
}

// Start creates the application around the root component, makes rt its
// navigation provider and mounts it. It runs once per process.
func Start(root func(*Instance) app.Composer, rt *router.Router, mountTarget string) (*Instance, error) {
	if rt == nil {
		return nil, fmt.Errorf("start: router is required")
	}
	if mountTarget == "" {
		mountTarget = DefaultMountTarget
	}

	inst := &Instance{Router: rt, MountTarget: mountTarget}
	started := false
	startOnce.Do(func() {
		newRoot := func() app.Composer { return root(inst) }
		for _, route := range rt.Routes() {
			app.Route(route.Path, newRoot)
		}
		// undeclared and non canonical paths still reach the root so it can
		// redirect or show the not found page
		app.RouteWithRegexp("^/.*", newRoot)

		Logger.Info("Starting app", "routes", len(rt.Routes()), "mount", mountTarget, "history", rt.Mode().String())
		app.RunWhenOnBrowser()
		started = true
	})
	if !started {
		return nil, ErrAlreadyStarted
	}
	return inst, nil
}
