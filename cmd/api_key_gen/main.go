package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
)

// Prints a random value suitable for DRONE_API_KEY.
func main() {
	size := flag.Int("bytes", 32, "number of random bytes in the key")
	flag.Parse()

	if *size < 16 {
		log.Fatalf("key must be at least 16 bytes, got %d", *size)
	}

	buf := make([]byte, *size)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("read random bytes: %v", err)
	}

	fmt.Fprintln(os.Stdout, "New API Key:", hex.EncodeToString(buf))
}
