// Command carekeep-keygen mints a fresh encryption key and hash pepper pair
// for a carekeep deployment.
//
// Usage:
//
//	carekeep-keygen            # print export lines to stdout
//	carekeep-keygen -out .env  # write (or update) an env file instead
//
// The two values are generated independently; never reuse one as the other.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/carekeephq/carekeep"
)

func main() {
	out := flag.String("out", "", "write the secrets to this env file instead of stdout")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, "carekeep-keygen:", err)
		os.Exit(1)
	}
}

func run(out string) error {
	key, err := carekeep.GenerateEncryptionKey()
	if err != nil {
		return fmt.Errorf("generating encryption key: %w", err)
	}
	pepper, err := carekeep.GeneratePepper()
	if err != nil {
		return fmt.Errorf("generating pepper: %w", err)
	}

	if out == "" {
		fmt.Printf("export %s=%s\n", carekeep.EnvEncryptionKey, key)
		fmt.Printf("export %s=%s\n", carekeep.EnvHashPepper, pepper)
		return nil
	}

	env := map[string]string{}
	if existing, err := godotenv.Read(out); err == nil {
		env = existing
	}
	env[carekeep.EnvEncryptionKey] = key
	env[carekeep.EnvHashPepper] = pepper

	if err := godotenv.Write(env, out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("wrote %s and %s to %s\n", carekeep.EnvEncryptionKey, carekeep.EnvHashPepper, out)
	return nil
}
