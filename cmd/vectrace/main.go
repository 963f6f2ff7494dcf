// Command vectrace replays operation scripts against a vector and reports
// how its size and capacity evolve.
package main

import "github.com/pavanmanishd/vector/internal/cli"

func main() {
	cli.Execute()
}
