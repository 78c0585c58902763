// Command securepass generates passwords from the terminal. It owns the
// input validation the API's other clients perform: lengths are checked
// against the 4-80 policy range before the composer runs, and validation
// failures are reported on stderr with a nonzero exit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
)

// Config holds the parsed CLI flags.
type Config struct {
	Length int
	Tier   string
	Count  int
}

// ParseFlags registers and parses command-line flags on the provided
// FlagSet so tests can call it without touching global flag state.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config

	fs.IntVar(&cfg.Length, "length", 0, "Password length (default 12)")
	fs.IntVar(&cfg.Length, "l", 0, "Password length (shorthand)")

	fs.StringVar(&cfg.Tier, "tier", "", "Strength tier: low, medium or high (default high)")
	fs.StringVar(&cfg.Tier, "t", "", "Strength tier (shorthand)")

	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&cfg.Count, "c", 1, "Number of passwords (shorthand)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates one or more passwords based on the config.
func Run(svc *service.GeneratorService, cfg Config) ([]string, error) {
	if cfg.Count < 1 {
		cfg.Count = 1
	}

	req := model.ComposeRequest{
		Length: cfg.Length,
		Tier:   cfg.Tier,
	}

	passwords := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		resp, err := svc.Generate(req)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, resp.Password)
	}
	return passwords, nil
}

func main() {
	cfg, err := ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	svc := service.NewGeneratorService(service.DefaultPolicy())

	passwords, err := Run(svc, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, pw := range passwords {
		fmt.Println(pw)
	}
}
