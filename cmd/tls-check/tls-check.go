// tls-check is a command-line tool for checking the TLS setup of a
// server: it connects, and reports what was negotiated.
package main

import (
	"crypto/tls"
	"flag"
	"net"
	"time"

	"blitiri.com.ar/go/log"
	"blitiri.com.ar/go/tlsinfo/ciphersuite"
	"blitiri.com.ar/go/tlsinfo/tlsconst"

	"golang.org/x/net/idna"
)

var (
	port = flag.String("port", "443",
		"port to use for connecting to the server")
	timeout = flag.Duration("timeout", 5*time.Second,
		"connection timeout")
)

func main() {
	flag.Parse()
	log.Init()

	host := flag.Arg(0)
	if host == "" {
		log.Fatalf("Use: tls-check <host>")
	}

	host, err := idna.ToASCII(host)
	if err != nil {
		log.Fatalf("IDNA conversion failed: %v", err)
	}
	addr := net.JoinHostPort(host, *port)

	dialer := &net.Dialer{Timeout: *timeout}
	config := &tls.Config{
		ServerName: host,

		// We report on the connection, we don't authenticate it; an
		// invalid certificate should not stop the check.
		InsecureSkipVerify: true,
	}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, config)
	if err != nil {
		log.Fatalf("Connection failed: %v", err)
	}
	defer conn.Close()

	state := conn.ConnectionState()
	log.Infof("Connected to %s", addr)
	log.Infof("Version:       %s", tlsconst.VersionName(state.Version))
	log.Infof("Cipher suite:  %s", tlsconst.CipherSuiteName(state.CipherSuite))

	s, ok := ciphersuite.ByCode(uint32(state.CipherSuite))
	if !ok {
		// Can happen for suites newer than our table, e.g. TLS 1.3.
		log.Infof("No further details known for this suite")
		return
	}

	log.Infof("Key exchange:  %s", s.KeyExchange())
	log.Infof("Auth:          %s", s.Auth())
	log.Infof("Forward secrecy: %v", s.PFS())
	log.Infof("AEAD:          %v", s.AEAD())
	log.Infof("Anonymous:     %v", s.Anonymous())
	log.Infof("Grade:         %s", s.Grade())
}
