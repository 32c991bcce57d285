// Command builder builds the simple and luxury houses.
package main

import (
	"creational/cli"
	"fmt"
	"os"
)

func main() {
	if err := cli.ExecuteDemo("builder"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
