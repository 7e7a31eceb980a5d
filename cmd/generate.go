// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 KUNBUS GmbH

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RevolutionPi/revpi-hat-eeprom/pkg/config"
)

const defaultOutput = "out.eep"

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	outputPath := defaultOutput
	if len(args) > 1 {
		outputPath = args[1]
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", configPath, err)
	}

	cfg, err := config.Parse(data, templateDir)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", configPath, err)
	}

	if err := resolveDeviceFields(cfg); err != nil {
		return err
	}

	if exportPath != "" {
		if err := exportConfig(cfg, exportPath); err != nil {
			return err
		}
	}

	stream, err := config.Build(cfg)
	if err != nil {
		return fmt.Errorf("build image: %w", err)
	}

	if err := os.WriteFile(outputPath, stream.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write image %s: %w", outputPath, err)
	}
	return nil
}

// resolveDeviceFields fills in the per-device values from the command line
// flags. Flags win over config file values, the end test date falls back to
// today.
func resolveDeviceFields(cfg *config.Config) error {
	if serialFlag != "" {
		serial, err := parsePrefixedUint(serialFlag, 32)
		if err != nil {
			return fmt.Errorf("invalid serial %q: %w", serialFlag, err)
		}
		if cfg.Serial != nil {
			log.Warnf("overriding serial number %d from config file with %d", *cfg.Serial, serial)
		}
		s := uint32(serial)
		cfg.Serial = &s
	}
	if cfg.Serial == nil {
		return fmt.Errorf("no serial number given, use --serial or the config file")
	}

	if edateFlag != "" {
		edate, err := config.ParseDate(edateFlag)
		if err != nil {
			return fmt.Errorf("invalid end test date %q: %w", edateFlag, err)
		}
		if cfg.EDate != nil {
			log.Warnf("overriding end test date %s from config file with %s", cfg.EDate, edate)
		}
		cfg.EDate = &edate
	}
	if cfg.EDate == nil {
		today := config.Today()
		cfg.EDate = &today
	}

	if macFlag != "" {
		mac, err := config.ParseMac(macFlag)
		if err != nil {
			return fmt.Errorf("invalid MAC address %q: %w", macFlag, err)
		}
		if cfg.Mac != nil {
			log.Warnf("overriding MAC address %s from config file with %s", cfg.Mac, mac)
		}
		cfg.Mac = &mac
	}
	if cfg.Mac == nil {
		return fmt.Errorf("no MAC address given, use --mac or the config file")
	}

	return nil
}

// exportConfig writes the fully resolved config, including template and
// command line values, as pretty printed JSON.
func exportConfig(cfg *config.Config, path string) error {
	out, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("export config: %w", err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("export config %s: %w", path, err)
	}
	return nil
}
