// Command guidgen validates GUID literals written in //guid: directives and
// emits them as Go composite literals. It is meant to run from go generate:
//
//	//go:generate go run github.com/Lzww0608/guid/cmd/guidgen generate
//
// A literal that does not parse makes guidgen exit with status 1, failing the
// generate step before anything depending on it is compiled.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
