// Package main provides a command-line tool that dumps the camctl
// identifier registry as YAML: control and property identifiers, names,
// control types, and the built-in range descriptors. Binding authors use
// the output to generate static tables for other languages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/camctl"
	"github.com/opd-ai/camctl/registry"
)

// registryEntry is one identifier's worth of YAML output.
type registryEntry struct {
	ID    uint32     `yaml:"id"`
	Name  string     `yaml:"name"`
	Type  string     `yaml:"type"`
	Range *rangeInfo `yaml:"range,omitempty"`
}

// rangeInfo is the YAML form of a control's built-in descriptor.
type rangeInfo struct {
	Min     string   `yaml:"min,omitempty"`
	Max     string   `yaml:"max,omitempty"`
	Default string   `yaml:"default,omitempty"`
	Values  []string `yaml:"values,omitempty"`
}

type dump struct {
	Controls   []registryEntry `yaml:"controls,omitempty"`
	Properties []registryEntry `yaml:"properties,omitempty"`
}

func main() {
	showControls := flag.Bool("controls", true, "Include the control namespace")
	showProperties := flag.Bool("properties", true, "Include the property namespace")
	showRanges := flag.Bool("ranges", false, "Include built-in range descriptors")
	flag.Parse()

	var out dump
	if *showControls {
		out.Controls = controlEntries(*showRanges)
	}
	if *showProperties {
		out.Properties = propertyEntries()
	}

	encoded, err := yaml.Marshal(&out)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("Failed to encode registry")
		os.Exit(1)
	}
	fmt.Print(string(encoded))
}

func controlEntries(withRanges bool) []registryEntry {
	infoMap := registry.ControlInfos()
	entries := make([]registryEntry, 0)
	for _, id := range registry.ControlIDs() {
		name, _ := registry.ControlName(id)
		entry := registryEntry{
			ID:   id,
			Name: name,
			Type: registry.ControlType(id).String(),
		}
		if withRanges {
			if info, ok := infoMap.Get(id); ok {
				entry.Range = describeRange(info)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func propertyEntries() []registryEntry {
	entries := make([]registryEntry, 0)
	for _, id := range registry.PropertyIDs() {
		name, _ := registry.PropertyName(id)
		entries = append(entries, registryEntry{
			ID:   id,
			Name: name,
			Type: registry.PropertyType(id).String(),
		})
	}
	return entries
}

func describeRange(info *camctl.ControlInfo) *rangeInfo {
	r := &rangeInfo{}
	if min := info.Min(); !min.IsNone() {
		r.Min = min.String()
	}
	if max, err := info.Max(); err != nil {
		r.Max = "unbounded"
	} else if !max.IsNone() {
		r.Max = max.String()
	}
	if def := info.Def(); !def.IsNone() {
		r.Default = def.String()
	}
	for _, v := range info.Values() {
		r.Values = append(r.Values, v.String())
	}
	return r
}
