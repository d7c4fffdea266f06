// Package register writes this server's launch entry into an MCP client
// configuration file, so "resfind-mcp register project" is all a user needs
// to wire the server up.
package register

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type serverEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// DeriveServerName turns a binary path into a server name by stripping
// .exe and -mcp suffixes.
func DeriveServerName(binaryPath string) string {
	name := filepath.Base(binaryPath)
	name = strings.TrimSuffix(name, ".exe")
	return strings.TrimSuffix(name, "-mcp")
}

// Run executes the register subcommand. args is everything after
// "register": a scope ("project" or "user"), an optional project
// directory, and any server flags after "--".
func Run(serverName string, args []string) {
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	scope := args[0]
	if scope != "project" && scope != "user" {
		fmt.Fprintf(os.Stderr, "Error: unknown scope %q (must be \"project\" or \"user\")\n", scope)
		usage()
		os.Exit(1)
	}

	directory, serverArgs := splitArgs(args[1:])

	exe, err := os.Executable()
	if err == nil {
		exe, err = filepath.EvalSymlinks(exe)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating binary: %v\n", err)
		os.Exit(1)
	}

	configPath, err := configPathFor(scope, directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
		os.Exit(1)
	}

	if err := writeEntry(configPath, serverName, buildEntry(exe, serverArgs)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Registered %q in %s\n", serverName, configPath)
}

func usage() {
	bin := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s register project [directory]  # → <directory>/.mcp.json (default: .)\n", bin)
	fmt.Fprintf(os.Stderr, "  %s register user                 # → ~/.claude.json\n", bin)
	fmt.Fprintf(os.Stderr, "  %s register project . -- -ext .sql  # forward flags to the server\n", bin)
}

// splitArgs separates the optional directory argument from server flags
// following "--".
func splitArgs(args []string) (directory string, serverArgs []string) {
	directory = "."
	for i, a := range args {
		if a == "--" {
			return directory, args[i+1:]
		}
		if i == 0 {
			directory = a
		}
	}
	return directory, nil
}

func configPathFor(scope, directory string) (string, error) {
	if scope == "project" {
		abs, err := filepath.Abs(directory)
		if err != nil {
			return "", fmt.Errorf("resolving directory %s: %w", directory, err)
		}
		return filepath.Join(abs, ".mcp.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".claude.json"), nil
}

func buildEntry(binaryPath string, serverArgs []string) serverEntry {
	if runtime.GOOS == "windows" {
		return serverEntry{Command: "cmd", Args: append([]string{"/C", binaryPath}, serverArgs...)}
	}
	return serverEntry{Command: binaryPath, Args: serverArgs}
}

// writeEntry merges the server entry into an existing client config, or
// creates one.
func writeEntry(configPath, serverName string, entry serverEntry) error {
	config := map[string]any{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing existing config %s: %w", configPath, err)
		}
	}

	servers, ok := config["mcpServers"].(map[string]any)
	if !ok {
		if _, exists := config["mcpServers"]; exists {
			return fmt.Errorf("mcpServers in %s is not an object", configPath)
		}
		servers = map[string]any{}
		config["mcpServers"] = servers
	}
	servers[serverName] = entry

	out, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(configPath, append(out, '\n'), 0644)
}
