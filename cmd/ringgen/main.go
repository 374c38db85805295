// Command ringgen generates ring-signature key material: a signer's
// keypair, or a batch of decoy public keys to seed a ring.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/anupsv/ring-signatures/ring"
)

type keyPairFile struct {
	SecretKey string `json:"secretKey"`
	PublicKey string `json:"publicKey"`
}

type ringFile struct {
	PublicKeys []string `json:"publicKeys"`
}

func main() {
	count := flag.Int("count", 1, "number of keypairs to generate")
	decoys := flag.Int("decoys", 0, "number of decoy public keys to generate instead of keypairs (writes a ring file)")
	outputFile := flag.String("output", "", "output file (defaults to stdout)")
	flag.Parse()

	var data []byte
	var err error
	if *decoys > 0 {
		data, err = generateRing(*decoys)
	} else {
		data, err = generateKeyPairs(*count)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringgen: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, data, 0600); err != nil {
			fmt.Fprintf(os.Stderr, "ringgen: failed to write %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *outputFile)
		return
	}
	fmt.Println(string(data))
}

func generateKeyPairs(n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("count must be at least 1")
	}
	out := make([]keyPairFile, n)
	for i := 0; i < n; i++ {
		secret, err := ring.NewSecret(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generating keypair %d: %w", i, err)
		}
		out[i] = keyPairFile{
			SecretKey: hex.EncodeToString(secret.Bytes()),
			PublicKey: hex.EncodeToString(secret.PublicKey().Bytes()),
		}
	}
	if n == 1 {
		return json.MarshalIndent(out[0], "", "  ")
	}
	return json.MarshalIndent(out, "", "  ")
}

func generateRing(n int) ([]byte, error) {
	decoys, _, err := ring.NewDecoyRing(rand.Reader, n)
	if err != nil {
		return nil, fmt.Errorf("generating decoy ring: %w", err)
	}
	out := ringFile{PublicKeys: make([]string, len(decoys))}
	for i, pk := range decoys {
		out.PublicKeys[i] = hex.EncodeToString(pk.Bytes())
	}
	return json.MarshalIndent(out, "", "  ")
}
