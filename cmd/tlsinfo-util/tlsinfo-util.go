// tlsinfo-util is a command-line utility for querying the TLS cipher
// suite table.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"blitiri.com.ar/go/tlsinfo/ciphersuite"

	"github.com/docopt/docopt-go"
)

// Usage, which doubles as parameter definitions thanks to docopt.
const usage = `
Usage:
  tlsinfo-util lookup <suite>
  tlsinfo-util grade <suite>
  tlsinfo-util dump [--csv]

<suite> is a cipher suite code in hexadecimal (e.g. 0xc02f), or an
exact IANA name (e.g. TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256).
`

// Command-line arguments.
var args map[string]interface{}

func main() {
	args, _ = docopt.ParseDoc(usage)

	commands := map[string]func(){
		"lookup": lookup,
		"grade":  grade,
		"dump":   dump,
	}

	for cmd, f := range commands {
		if args[cmd].(bool) {
			f()
		}
	}
}

// Fatalf prints the given message, then exits the program with an error code.
func Fatalf(s string, arg ...interface{}) {
	fmt.Printf(s+"\n", arg...)
	os.Exit(1)
}

// findSuite resolves the <suite> argument, which can be a hexadecimal
// code or an exact name.
func findSuite() *ciphersuite.Suite {
	arg := args["<suite>"].(string)

	if s, ok := ciphersuite.ByName(arg); ok {
		return s
	}

	code, err := strconv.ParseUint(
		strings.TrimPrefix(arg, "0x"), 16, 32)
	if err != nil {
		Fatalf("%q is not a known name or a hexadecimal code", arg)
	}

	s, ok := ciphersuite.ByCode(uint32(code))
	if !ok {
		Fatalf("unknown cipher suite %#04x", code)
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func blockSize(s *ciphersuite.Suite) string {
	size, ok := s.BlockSize()
	if !ok {
		return "none"
	}
	return strconv.Itoa(size)
}

// tlsinfo-util lookup <suite>
func lookup() {
	s := findSuite()

	fmt.Printf("Name:          %s\n", s.Name())
	fmt.Printf("Code:          %#04x\n", s.Code())
	fmt.Printf("Key exchange:  %s\n", s.KeyExchange())
	fmt.Printf("Auth:          %s\n", s.Auth())
	fmt.Printf("Cipher:        %s\n", s.Cipher())
	fmt.Printf("Mode:          %s\n", s.Mode())
	fmt.Printf("MAC:           %s (%d bytes)\n", s.MAC(), s.MACSize())
	fmt.Printf("Block size:    %s\n", blockSize(s))
	fmt.Printf("PFS:           %s\n", yesNo(s.PFS()))
	fmt.Printf("AEAD:          %s\n", yesNo(s.AEAD()))
	fmt.Printf("Anonymous:     %s\n", yesNo(s.Anonymous()))
}

// tlsinfo-util grade <suite>
func grade() {
	s := findSuite()
	fmt.Printf("%s: %s\n", s.Name(), s.Grade())
}

// tlsinfo-util dump [--csv]
func dump() {
	if csvOut, ok := args["--csv"].(bool); ok && csvOut {
		dumpCSV()
		return
	}

	for _, s := range ciphersuite.Suites() {
		fmt.Printf("%#06x  %s\n", s.Code(), s.Name())
	}
}

func dumpCSV() {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	w.Write([]string{
		"code", "name", "kx", "auth", "cipher", "mode", "mac", "grade"})
	for _, s := range ciphersuite.Suites() {
		w.Write([]string{
			fmt.Sprintf("%#06x", s.Code()),
			s.Name(),
			s.KeyExchange(),
			s.Auth(),
			s.Cipher(),
			s.Mode(),
			s.MAC(),
			string(s.Grade()),
		})
	}
}
