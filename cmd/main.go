// cmd/main.go
package main

import cmd "github.com/mwiater/jmhviz/cmd/jmhviz"

// main starts the jmhviz CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
