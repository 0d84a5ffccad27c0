// main.go - Entry point for the usersctl command

package main

import "go-users-backend/cmd"

func main() {
	cmd.Execute()
}
