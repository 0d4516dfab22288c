// restoctl is the operator CLI: schema migration, admin bootstrap and
// password hashing.
package main

import "restaurante/cmd/restoctl/commands"

func main() {
	commands.Execute()
}
