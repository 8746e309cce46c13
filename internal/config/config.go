// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package config loads server configuration from embedded yaml defaults
// with MYFRIDGEAI_ environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/ProSnigdho/MyFridgeAI/internal/mailing"
)

const envPrefix = "MYFRIDGEAI_"

// Google is the configuration for Google Cloud resources.
type Google struct {
	// Project is the GCP project hosting Firebase, Firestore and GenAI.
	Project string `koanf:"project"`

	// CapturesBucket is the Cloud Storage bucket for archived scans.
	// Empty disables capture archival.
	CapturesBucket string `koanf:"capturesbucket"`
}

// Server is the HTTP server configuration.
type Server struct {
	// Address is the listen address, e.g. ":8080".
	Address string `koanf:"address"`
}

// Recipes is the configuration for recipe generation.
type Recipes struct {
	// IncludeShoppingList also offers unchecked shopping-list entries to
	// the generator alongside the pantry.
	IncludeShoppingList bool `koanf:"shoppinglist"`
}

type Config struct {
	Google  Google         `koanf:"google"`
	Server  Server         `koanf:"server"`
	Recipes Recipes        `koanf:"recipes"`
	SMTP    mailing.Config `koanf:"smtp"`
}

// Load parses the embedded yaml defaults and applies environment overrides
// of the form MYFRIDGEAI_GOOGLE_PROJECT=my-project.
func Load(defaults []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: parsing defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".")
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config: reading environment: %w", err)
	}

	var conf Config
	if err := k.Unmarshal("", &conf); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	return &conf, nil
}
