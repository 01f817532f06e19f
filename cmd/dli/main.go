package main

import (
	appconfig "github.com/0xa1bed0/dli/internal/apps/dli/config"
	dli "github.com/0xa1bed0/dli/internal/apps/dli/cmds"
	"github.com/0xa1bed0/dli/internal/runtime"
)

func main() {
	var execErr error

	rt := runtime.NewRuntime()
	defer rt.Finalize("dli", "Type 'dli help' to get help.", &execErr)

	if execErr = appconfig.LoadDotEnv(".env"); execErr != nil {
		return
	}
	execErr = dli.Execute(rt)
}
