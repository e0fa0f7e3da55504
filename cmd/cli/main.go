// csvmend - CSV repair tool
//
// csvmend cleans malformed delimited-text files into well-formed, fully
// quoted CSV suitable for relational import.
package main

import (
	"os"

	"github.com/csvmend/csvmend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
