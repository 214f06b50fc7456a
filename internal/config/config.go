//
// chesskernel - bitboard chess engine kernel
//
// MIT License
//
// Copyright (c) 2020 chesskernel contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options. It covers the two concerns this module
// actually has knobs for: logging and search depth. There is no
// evaluator configuration - the material+PST evaluator has nothing
// to tune.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file, relative to the
	// working directory.
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file.
	Settings = conf{
		Log:    logConfiguration{Level: "INFO"},
		Search: searchConfiguration{TargetDepth: 6},
	}

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// logConfiguration holds the one knob internal/logging reads: the
// level string handed to op/go-logging's LogLevel parser (e.g.
// "DEBUG", "INFO", "WARNING", "ERROR").
type logConfiguration struct {
	Level string
}

// Setup reads the configuration file and applies its settings on top
// of the defaults above. A missing or malformed file is not an error -
// the defaults stand and a message is logged.
func Setup() {
	if initialized {
		return
	}

	path := resolveConfFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	initialized = true
}

// resolveConfFile resolves path relative to the executable's directory
// when it isn't already found relative to the working directory, so
// the engine can be launched from outside its install directory.
func resolveConfFile(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(exe), path)
}

// String prints out the current configuration settings and values.
// This uses reflection to read variables and their values.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Log Config:\n")
	writeFields(&c, &settings.Log)
	c.WriteString("\nSearch Config:\n")
	writeFields(&c, &settings.Search)
	return c.String()
}

func writeFields(c *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}
