// Package main applies or checks a student profile payload and prints the result as JSON.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nandaardian19/studentprofile/internal/app/models/dto"
	"github.com/nandaardian19/studentprofile/internal/bootstrap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, processes one payload and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var configPath string
	var envFile string
	var inputPath string
	var checkOnly bool

	fs.StringVar(&configPath, "config", "configs/config.yaml", "path to YAML config (skipped when missing)")
	fs.StringVar(&envFile, "env", ".env", "path to dotenv file (skipped when missing)")
	fs.StringVar(&inputPath, "input", "-", "profile payload in YAML or JSON (- reads stdin)")
	fs.BoolVar(&checkOnly, "check", false, "report every problem in the payload without applying it")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath, envFile, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	deps := bootstrap.BuildDependencies(cfg, lgr)

	req, err := readRequest(inputPath, stdin)
	if err != nil {
		return writeError(stdout, stderr, err)
	}

	if checkOnly {
		report, err := deps.UserService.CheckProfile(req)
		if err != nil {
			return writeError(stdout, stderr, err)
		}
		if err := writeJSON(stdout, report); err != nil {
			fmt.Fprintf(stderr, "Error: encode report: %v\n", err)
			return 1
		}
		if !report.Valid {
			return 1
		}
		return 0
	}

	user := deps.UserService.NewUser()
	resp, err := deps.UserService.UpdateProfile(user, req)
	if err != nil {
		lgr.Error().Err(err).Str("userID", user.ID()).Msg("Profile update rejected")
		return writeError(stdout, stderr, err)
	}
	if err := writeJSON(stdout, resp); err != nil {
		fmt.Fprintf(stderr, "Error: encode response: %v\n", err)
		return 1
	}
	return 0
}

func readRequest(path string, stdin io.Reader) (*dto.UpdateProfileRequest, error) {
	if path == "-" || path == "" {
		return dto.DecodeUpdateProfileRequest(stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	return dto.DecodeUpdateProfileRequest(file)
}

func writeError(stdout, stderr io.Writer, err error) int {
	resp := dto.NewErrorResponse(dto.HandleError(err), time.Now().UTC())
	if encErr := writeJSON(stdout, resp); encErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
