/*
 *  config.go
 *  genegraph
 *
 *  Created by Haibao Tang on 10/19/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package genegraph

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	logging "github.com/op/go-logging"
	"gopkg.in/yaml.v3"
)

// Config holds the knobs shared by all commands. It can be loaded from a
// YAML file, for example:
//
//	k: 5
//	span: gene
//	include_gaps: true
//	log_level: NOTICE
type Config struct {
	K           int    `yaml:"k" validate:"min=1"`
	Span        string `yaml:"span" validate:"oneof=gene window"`
	IncludeGaps bool   `yaml:"include_gaps"`
	Circular    bool   `yaml:"circular"`
	SkipShort   bool   `yaml:"skip_short"`
	Trim        bool   `yaml:"trim"`
	Class       string `yaml:"class" validate:"excludesall=0x7C@"`
	LogLevel    string `yaml:"log_level" validate:"oneof=CRITICAL ERROR WARNING NOTICE INFO DEBUG"`
}

var configValidate = validator.New()

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		K:           DefaultK,
		Span:        "gene",
		IncludeGaps: true,
		Circular:    true,
		SkipShort:   false,
		Trim:        true,
		Class:       "unknown",
		LogLevel:    "NOTICE",
	}
}

// LoadConfig reads a YAML file on top of the defaults
func LoadConfig(configfile string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(configfile)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config `%s`: %w", configfile, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	log.Noticef("Loaded config `%s`", configfile)
	return config, nil
}

// Validate checks the values of the config
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SpanMode converts the span setting
func (c Config) SpanMode() Span {
	span, _ := ParseSpan(c.Span)
	return span
}

// ApplyLogLevel sets the level of the package logger
func (c Config) ApplyLogLevel() error {
	level, err := logging.LogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level, "")
	return nil
}
