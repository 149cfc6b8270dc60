package main

import (
	"flag"
	"fmt"
	"os"

	"mindtrackerd/internal/di"
	"mindtrackerd/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	debugMode := flag.Bool("debug", false, "enable debug output")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debugMode,
	}

	_, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mindtrackerd: %s\n", err)
		os.Exit(1)
	}
}
