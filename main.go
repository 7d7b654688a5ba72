package main

import (
	"os"
	"runtime/debug"

	"github.com/siyuan-infoblox/py-imports-check/pkg/cmd"
)

func main() {
	var mainVersion string
	if info, ok := debug.ReadBuildInfo(); ok {
		mainVersion = info.Main.Version
	}
	if err := cmd.Execute(mainVersion); err != nil {
		os.Exit(1)
	}
}
