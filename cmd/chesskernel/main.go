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

// Package main wires config, logging, the evaluator, and the adapter
// loop together into the chesskernel executable: no opening book
// flags, no EPD test-suite runner, no nps/perft harness flags (perft
// is exercised by internal/movegen's own tests, not a command-line
// facility here).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/chesskernel/chesskernel/internal/config"
	"github.com/chesskernel/chesskernel/internal/evaluator"
	"github.com/chesskernel/chesskernel/internal/logging"
	"github.com/chesskernel/chesskernel/internal/uci"
)

var buildVersion = "dev"

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level (CRITICAL|ERROR|WARNING|NOTICE|INFO|DEBUG)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a pprof CPU profile of the run to ./cpu.pprof")
	versionInfo := flag.Bool("version", false, "prints version and exits")
	flag.Parse()

	if *versionInfo {
		fmt.Println("chesskernel " + buildVersion)
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.Settings.Log.Level = *logLvl
	}

	log := logging.GetLog()
	log.Infof("chesskernel %s starting", buildVersion)

	handler := uci.NewHandler(evaluator.Material{})
	handler.Loop()

	log.Info("chesskernel exiting")
	os.Exit(0)
}
