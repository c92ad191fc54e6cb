package main

import (
	"github.com/mj1618/window-walker/cmd"
	_ "github.com/mj1618/window-walker/internal/platform/windows"
)

func main() {
	cmd.Execute()
}
