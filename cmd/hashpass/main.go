// Command hashpass prints a bcrypt hash suitable for usuarios.password_hash.
//
//	hashpass [-cost N]
//
// The password is read from the terminal without echo, or from the first line
// of stdin when stdin is not a terminal.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"school-api/internal/service"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, os.Stderr, *cost); err != nil {
		fmt.Fprintln(os.Stderr, "hashpass:", err)
		os.Exit(1)
	}
}

func run(stdin *os.File, stdout io.Writer, stderr io.Writer, cost int) error {
	var password string
	if term.IsTerminal(int(stdin.Fd())) {
		fmt.Fprint(stderr, "Password: ")
		raw, err := term.ReadPassword(int(stdin.Fd()))
		fmt.Fprintln(stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	} else {
		line, err := readLine(stdin)
		if err != nil {
			return err
		}
		password = line
	}

	return writeHash(stdout, password, cost)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeHash(w io.Writer, password string, cost int) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	hash, err := service.NewBcryptHasher(cost).Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = fmt.Fprintln(w, hash)
	return err
}
