// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/bufbuild/docfmt/printer"
)

// Config is the configuration shared by every command, read from DOCFMT_*
// environment variables.
type Config struct {
	// -- Printer --

	LineWidth   int    `env:"DOCFMT_LINE_WIDTH" envDefault:"80"`
	IndentWidth int    `env:"DOCFMT_INDENT_WIDTH" envDefault:"2"`
	IndentStyle string `env:"DOCFMT_INDENT_STYLE" envDefault:"spaces"`
	LineEnding  string `env:"DOCFMT_LINE_ENDING" envDefault:"lf"`

	// -- Inputs --

	// The extension of document files found by searching directories.
	Extension string `env:"DOCFMT_EXTENSION" envDefault:"doc"`
	// How many documents to print at once. Zero picks a value based on the
	// number of CPUs.
	MaxParallelism int `env:"DOCFMT_MAX_PARALLELISM"`

	// -- HTTP service --

	Host         string `env:"DOCFMT_HOST"`
	Port         int    `env:"DOCFMT_PORT" envDefault:"8080"`
	MaxBodyBytes int64  `env:"DOCFMT_MAX_BODY_BYTES" envDefault:"1048576"`

	LogLevel string `env:"DOCFMT_LOG_LEVEL" envDefault:"info"`
}

type ConfigOptions struct {
	EnvFilePath string
}

// ParseConfig parses environment variables to a Config.
func ParseConfig(opt *ConfigOptions) (*Config, error) {
	if opt != nil && opt.EnvFilePath != "" {
		// Load variables from a file to the environment of the process.
		if err := godotenv.Load(opt.EnvFilePath); err != nil {
			return nil, fmt.Errorf("loading %s: %w", opt.EnvFilePath, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PrinterOptions converts the printer settings of c into printer options.
func (c *Config) PrinterOptions() (printer.Options, error) {
	style, err := printer.ParseIndentStyle(c.IndentStyle)
	if err != nil {
		return printer.Options{}, err
	}
	ending, err := printer.ParseLineEnding(c.LineEnding)
	if err != nil {
		return printer.Options{}, err
	}

	options := printer.Options{
		LineWidth:   c.LineWidth,
		IndentWidth: c.IndentWidth,
		IndentStyle: style,
		LineEnding:  ending,
	}
	return options, options.Validate()
}

// commonFlags are the flags every command accepts. They override the
// corresponding environment variables.
type commonFlags struct {
	envFile string
	width   int
	indent  int
	style   string
	ending  string
}

func newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	c := new(commonFlags)
	fs.StringVar(&c.envFile, "envfile", "", "envfile path")
	fs.IntVar(&c.width, "width", 0, "maximum line width")
	fs.IntVar(&c.indent, "indent", 0, "columns per indentation level")
	fs.StringVar(&c.style, "style", "", "indentation style: spaces or tabs")
	fs.StringVar(&c.ending, "ending", "", "line ending: lf, crlf or cr")
	return fs, c
}

// parse parses args with fs, and then loads the configuration, applying any
// flags that were set on top of it.
func (c *commonFlags) parse(fs *flag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, fmt.Errorf("see docfmt help for usage")
		}
		return nil, err
	}

	cfg, err := ParseConfig(&ConfigOptions{EnvFilePath: c.envFile})
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.LineWidth = c.width
		case "indent":
			cfg.IndentWidth = c.indent
		case "style":
			cfg.IndentStyle = c.style
		case "ending":
			cfg.LineEnding = c.ending
		}
	})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid DOCFMT_LOG_LEVEL %s", strconv.Quote(cfg.LogLevel))
	}
	log.SetLevel(level)
	return cfg, nil
}
