// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/oillang/oil/asm"
	"github.com/oillang/oil/value"
	"github.com/oillang/oil/vm"
)

var diagColor = color.New(color.FgYellow)

func init() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		diagColor.DisableColor()
	}
}

// atExit mirrors the reference interpreter's "log then exit(1)" shape: on a
// fatal startup error, print it and exit non-zero; runtime errors never
// reach here, since the language has no surfaced error type.
func atExit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(path string) error {
	t, err := vm.LoadImage(path)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	interp := vm.New(t, vm.WithOutput(out), vm.WithInput(os.Stdin))
	interp.Run()
	return nil
}

func assembleFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer in.Close()

	cells, err := asm.Assemble(src, in)
	if err != nil {
		asmErr, ok := err.(asm.ErrAsm)
		if !ok {
			return errors.Wrapf(err, "assembling %s", src)
		}
		// The assembler never halts on a diagnostic: print it and keep
		// going, writing whatever program it did produce.
		for _, e := range asmErr {
			diagColor.Fprintln(os.Stderr, e.Error())
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for i := 0; i < len(cells); i++ {
		fmt.Fprintln(w, cells[value.Int(int64(i))].Display())
	}
	return w.Flush()
}

func main() {
	app := cli.NewApp()
	app.Name = "oil"
	app.Usage = "run or assemble oil programs"
	app.UsageText = "oil <file>          run numeric program in <file>\n" +
		"   oil <gas> <out>     assemble <gas> into <out>"
	app.HideHelp = false
	app.HideVersion = true
	app.Action = func(c *cli.Context) error {
		var err error
		switch c.NArg() {
		case 0:
			cli.ShowAppHelp(c)
		case 1:
			err = run(c.Args().Get(0))
		default:
			err = assembleFile(c.Args().Get(0), c.Args().Get(1))
		}
		atExit(err)
		return nil
	}
	app.Run(os.Args)
}
