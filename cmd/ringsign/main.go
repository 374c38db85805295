// Command ringsign signs and verifies ring signatures from the command
// line, across all four supported schemes.
package main

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/anupsv/ring-signatures/ring"
)

// command represents a subcommand.
type command struct {
	name        string
	description string
	execute     func(args []string) error
}

func main() {
	commands := []command{
		{"sign", "sign a message under one scheme (-scheme sag|blsag|mlsag|clsag)", cmdSign},
		{"verify", "verify a signature file against a message", cmdVerify},
		{"link", "check whether two BLSAG/MLSAG/CLSAG signatures share a signer", cmdLink},
	}

	if len(os.Args) < 2 {
		showHelp(commands)
		os.Exit(1)
	}

	name := os.Args[1]
	for _, c := range commands {
		if c.name == name {
			if err := c.execute(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "ringsign: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintf(os.Stderr, "ringsign: unknown command %q\n\n", name)
	showHelp(commands)
	os.Exit(1)
}

func showHelp(commands []command) {
	fmt.Println("ringsign - sign and verify linkable ring signatures")
	fmt.Println("\nUsage:\n  ringsign <command> [options]")
	fmt.Println("\nCommands:")
	for _, c := range commands {
		fmt.Printf("  %-10s %s\n", c.name, c.description)
	}
}

type signatureFile struct {
	Scheme    string `json:"scheme"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

func cmdSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	scheme := fs.String("scheme", "sag", "scheme: sag, blsag, mlsag, clsag")
	secretHex := fs.String("secret", "", "signer's secret key, hex encoded (repeat with commas for mlsag/clsag columns)")
	decoyHex := fs.String("decoys", "", "comma-separated hex-encoded decoy public keys (rows separated by ';' for mlsag/clsag)")
	message := fs.String("message", "", "message to sign")
	output := fs.String("output", "", "output file (defaults to stdout)")
	fs.Parse(args)

	if *secretHex == "" {
		return fmt.Errorf("-secret is required")
	}
	if *message == "" {
		return fmt.Errorf("-message is required")
	}

	var encoded []byte
	var err error
	switch *scheme {
	case "sag":
		encoded, err = signSingleColumn(*scheme, *secretHex, *decoyHex, *message)
	case "blsag":
		encoded, err = signSingleColumn(*scheme, *secretHex, *decoyHex, *message)
	case "mlsag", "clsag":
		encoded, err = signMultiColumn(*scheme, *secretHex, *decoyHex, *message)
	default:
		return fmt.Errorf("unknown scheme %q", *scheme)
	}
	if err != nil {
		return err
	}

	out := signatureFile{Scheme: *scheme, Message: *message, Signature: hex.EncodeToString(encoded)}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling signature file: %w", err)
	}
	return writeOutput(*output, data)
}

func signSingleColumn(scheme, secretHex, decoyHex, message string) ([]byte, error) {
	secret, err := decodeSecret(secretHex)
	if err != nil {
		return nil, err
	}
	decoys, err := decodeRing(decoyHex)
	if err != nil {
		return nil, err
	}
	if scheme == "sag" {
		sig, err := ring.SAGSign(rand.Reader, sha512.New, secret, decoys, []byte(message))
		if err != nil {
			return nil, fmt.Errorf("SAGSign: %w", err)
		}
		return sig.Marshal(), nil
	}
	sig, err := ring.BLSAGSign(rand.Reader, sha512.New, secret, decoys, []byte(message))
	if err != nil {
		return nil, fmt.Errorf("BLSAGSign: %w", err)
	}
	return sig.Marshal(), nil
}

func signMultiColumn(scheme, secretHex, decoyHex, message string) ([]byte, error) {
	secrets, err := decodeSecrets(secretHex)
	if err != nil {
		return nil, err
	}
	decoyRows, err := decodeRings(decoyHex)
	if err != nil {
		return nil, err
	}
	if scheme == "mlsag" {
		sig, err := ring.MLSAGSign(rand.Reader, sha512.New, secrets, decoyRows, []byte(message))
		if err != nil {
			return nil, fmt.Errorf("MLSAGSign: %w", err)
		}
		return sig.Marshal(), nil
	}
	sig, err := ring.CLSAGSign(rand.Reader, sha512.New, secrets, decoyRows, []byte(message))
	if err != nil {
		return nil, fmt.Errorf("CLSAGSign: %w", err)
	}
	return sig.Marshal(), nil
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	input := fs.String("input", "", "signature file to verify")
	fs.Parse(args)
	if *input == "" {
		return fmt.Errorf("-input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *input, err)
	}
	var sf signatureFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing %s: %w", *input, err)
	}
	raw, err := hex.DecodeString(sf.Signature)
	if err != nil {
		return fmt.Errorf("decoding signature hex: %w", err)
	}

	ok, err := verify(sf.Scheme, raw, []byte(sf.Message))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("INVALID")
		os.Exit(1)
	}
	fmt.Println("VALID")
	return nil
}

func verify(scheme string, raw, message []byte) (bool, error) {
	switch scheme {
	case "sag":
		sig, ok := ring.UnmarshalSAGSignature(raw)
		if !ok {
			return false, nil
		}
		return sig.Verify(sha512.New, message), nil
	case "blsag":
		sig, ok := ring.UnmarshalBLSAGSignature(raw)
		if !ok {
			return false, nil
		}
		return sig.Verify(sha512.New, message), nil
	case "mlsag":
		sig, ok := ring.UnmarshalMLSAGSignature(raw)
		if !ok {
			return false, nil
		}
		return sig.Verify(sha512.New, message), nil
	case "clsag":
		sig, ok := ring.UnmarshalCLSAGSignature(raw)
		if !ok {
			return false, nil
		}
		return sig.Verify(sha512.New, message), nil
	default:
		return false, fmt.Errorf("unknown scheme %q", scheme)
	}
}

func cmdLink(args []string) error {
	fs := flag.NewFlagSet("link", flag.ExitOnError)
	scheme := fs.String("scheme", "blsag", "scheme: blsag, mlsag, clsag")
	first := fs.String("a", "", "first signature file")
	second := fs.String("b", "", "second signature file")
	fs.Parse(args)
	if *first == "" || *second == "" {
		return fmt.Errorf("-a and -b are required")
	}

	imgA, err := firstImage(*scheme, *first)
	if err != nil {
		return err
	}
	imgB, err := firstImage(*scheme, *second)
	if err != nil {
		return err
	}
	if ring.LinkImages(imgA, imgB) {
		fmt.Println("LINKED")
		return nil
	}
	fmt.Println("NOT LINKED")
	return nil
}

func firstImage(scheme, path string) (ring.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ring.Image{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var sf signatureFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return ring.Image{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	raw, err := hex.DecodeString(sf.Signature)
	if err != nil {
		return ring.Image{}, fmt.Errorf("decoding signature hex: %w", err)
	}
	switch scheme {
	case "blsag":
		sig, ok := ring.UnmarshalBLSAGSignature(raw)
		if !ok {
			return ring.Image{}, fmt.Errorf("%s: malformed BLSAG signature", path)
		}
		return sig.Image, nil
	case "mlsag":
		sig, ok := ring.UnmarshalMLSAGSignature(raw)
		if !ok || len(sig.Images) == 0 {
			return ring.Image{}, fmt.Errorf("%s: malformed MLSAG signature", path)
		}
		return sig.Images[0], nil
	case "clsag":
		sig, ok := ring.UnmarshalCLSAGSignature(raw)
		if !ok || len(sig.Images) == 0 {
			return ring.Image{}, fmt.Errorf("%s: malformed CLSAG signature", path)
		}
		return sig.Images[0], nil
	default:
		return ring.Image{}, fmt.Errorf("unknown scheme %q", scheme)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func decodeSecret(s string) (ring.Secret, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ring.Secret{}, fmt.Errorf("decoding secret hex: %w", err)
	}
	secret, ok := ring.SecretFromCanonical(b)
	if !ok {
		return ring.Secret{}, fmt.Errorf("secret key is not a canonical scalar")
	}
	return secret, nil
}

func decodeSecrets(s string) ([]ring.Secret, error) {
	parts := splitNonEmpty(s, ',')
	if len(parts) == 0 {
		return nil, fmt.Errorf("no secrets given")
	}
	out := make([]ring.Secret, len(parts))
	for i, p := range parts {
		secret, err := decodeSecret(p)
		if err != nil {
			return nil, fmt.Errorf("secret %d: %w", i, err)
		}
		out[i] = secret
	}
	return out, nil
}

func decodeRing(s string) (ring.Ring, error) {
	parts := splitNonEmpty(s, ',')
	out := make(ring.Ring, len(parts))
	for i, p := range parts {
		b, err := hex.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("decoding decoy %d hex: %w", i, err)
		}
		pk, ok := ring.PublicKeyFromBytes(b)
		if !ok {
			return nil, fmt.Errorf("decoy %d is not a canonical public key", i)
		}
		out[i] = pk
	}
	return out, nil
}

func decodeRings(s string) (ring.Rings, error) {
	if s == "" {
		return ring.Rings{}, nil
	}
	rows := splitNonEmpty(s, ';')
	out := make(ring.Rings, len(rows))
	for i, row := range rows {
		r, err := decodeRing(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

func splitNonEmpty(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
