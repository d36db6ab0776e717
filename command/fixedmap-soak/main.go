// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/fixedmap/background"
	"github.com/bitmark-inc/fixedmap/fault"
	"github.com/bitmark-inc/fixedmap/soak"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic channel setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	conf := &theConfiguration.Soak
	store, err := soak.NewMap(conf)
	if nil != err {
		log.Criticalf("map create error: %s", err)
		exitwithstatus.Message("%s: map create error: %s", program, err)
	}
	log.Infof("map: %s  capacity: %d", store.Variant(), store.Capacity())

	pool, err := soak.NewPool(store, conf, logger.New("soak"))
	if nil != err {
		log.Criticalf("worker setup error: %s", err)
		exitwithstatus.Message("%s: worker setup error: %s", program, err)
	}

	watcher, err := soak.NewWatcher(configurationFile, logger.New("watcher"))
	if nil != err {
		log.Criticalf("file watcher setup error: %s", err)
		exitwithstatus.Message("%s: file watcher setup error: %s", program, err)
	}

	// start background processes
	watching := background.Start(background.Processes{watcher}, nil)
	defer watching.Stop()

	if err := pool.Start(); nil != err {
		exitwithstatus.Message("%s: worker start error: %s", program, err)
	}

	// wait for the duration or a termination signal
	quiet := len(options["quiet"]) > 0
	timeout := time.After(conf.RunTime())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

loop:
	for {
		select {
		case <-timeout:
			log.Infof("duration: %s reached", conf.RunTime())
			break loop

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
				fmt.Printf("\nshutting down…\n")
			}
			break loop

		case <-watcher.Change():
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration reload error: %s", err)
				continue loop
			}
			pool.SetRate(c.Soak.OperationsPerSecond)
		}
	}

	report, err := pool.Stop()
	if nil != err {
		exitwithstatus.Message("%s: worker stop error: %s", program, err)
	}

	if !quiet {
		t := report.Totals
		fmt.Printf("elapsed:    %s\n", report.Elapsed)
		fmt.Printf("operations: %d\n", t.Sum())
		for op := soak.Operation(0); op < soak.OperationCount; op += 1 {
			fmt.Printf("  %-8s %10d  missed: %d\n", op, t.Operations[op], t.Missed[op])
		}
		fmt.Printf("size:       %d/%d\n", report.Size, report.Capacity)
	}

	if !report.OK() {
		exitwithstatus.Message("%s: map inconsistent: check: %v  mismatched values: %d", program, report.CheckError, report.Totals.Mismatched)
	}
	log.Info("check passed")
}
