// Command abstractfactory renders a widget family for each platform.
package main

import (
	"creational/cli"
	"fmt"
	"os"
)

func main() {
	if err := cli.ExecuteDemo("abstract-factory"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
