// Command factorymethod draws shapes through a factory and a sum type.
package main

import (
	"creational/cli"
	"fmt"
	"os"
)

func main() {
	if err := cli.ExecuteDemo("factory-method"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
