package infra

import (
	"fmt"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorCyan  = "\033[36m"
)

// PrintBanner displays the startup banner.
func PrintBanner(cfg *Config, knowledgePath string) {
	fmt.Println()
	fmt.Printf("%s#####################################################%s\n", ColorCyan, ColorReset)
	fmt.Printf("%s#           🤖 %-36s #%s\n", ColorCyan, cfg.App.Name, ColorReset)
	fmt.Printf("%s#   VERSION:   %-36s #%s\n", ColorCyan, cfg.App.Version, ColorReset)
	fmt.Printf("%s#   KNOWLEDGE: %-36s #%s\n", ColorCyan, knowledgePath, ColorReset)
	fmt.Printf("%s#####################################################%s\n", ColorCyan, ColorReset)
	fmt.Println()
}
