// Command hashpw reads a password from the terminal without echo and prints
// its bcrypt digest. Useful for seeding accounts out of band.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const bcryptCost = 10

func main() {

	fmt.Fprint(os.Stderr, "Enter password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}
	if len(pw) == 0 {
		log.Fatal("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword(pw, bcryptCost)
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	fmt.Println(string(hash))
}
