package main

import "os"

// fallbackPort reads HTTP_PORT directly; it is used when the typed
// configuration could not be parsed.
func fallbackPort() string {
	if p := os.Getenv("HTTP_PORT"); p != "" {
		return p
	}
	return "8080"
}
