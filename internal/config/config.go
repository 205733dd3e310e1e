// Package config loads the host runtime configuration from the environment
// and provisioning plans from YAML documents.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Host is the runtime configuration of the chirppad binary. Flags override
// these values; the environment provides the defaults.
type Host struct {
	DBPath      string `env:"CHIRPPAD_DB_PATH" envDefault:"chirppad.db"`
	JournalPath string `env:"CHIRPPAD_JOURNAL_PATH" envDefault:"chirppad-journal.db"`
	Signer      string `env:"CHIRPPAD_SIGNER"`
	LogLevel    string `env:"CHIRPPAD_LOG_LEVEL" envDefault:"info"`
}

// ParseHost loads Host from the environment.
func ParseHost() (Host, error) {
	var host Host
	if err := env.Parse(&host); err != nil {
		return Host{}, fmt.Errorf("parse env: %w", err)
	}
	return host, nil
}

// Plan is a provisioning document: the pools, vesting rules, allocations
// and presale targets to install. Entries apply in declared order, one
// transaction per operation.
type Plan struct {
	Pools   []string      `yaml:"pools,omitempty"`
	Vesting []VestingPlan `yaml:"vesting,omitempty"`
	Presale []PresalePlan `yaml:"presale,omitempty"`
}

type VestingPlan struct {
	Project     uint64           `yaml:"project"`
	Rules       []RulePlan       `yaml:"rules,omitempty"`
	Allocations []AllocationPlan `yaml:"allocations,omitempty"`
	MerkleRoot  string           `yaml:"merkleRoot,omitempty"`
}

type RulePlan struct {
	TotalTokens    string `yaml:"totalTokens"`
	IntervalLength uint64 `yaml:"intervalLength"`
	StartTime      uint64 `yaml:"startTime"`
	Repetitions    uint64 `yaml:"repetitions"`
}

type AllocationPlan struct {
	User       string `yaml:"user"`
	Percentage uint64 `yaml:"percentage"`
}

type PresalePlan struct {
	Project             uint64    `yaml:"project"`
	Round1Target        string    `yaml:"round1Target,omitempty"`
	Round1Caps          []CapPlan `yaml:"round1Caps,omitempty"`
	Round2MaxAllocation string    `yaml:"round2MaxAllocation,omitempty"`
}

type CapPlan struct {
	User string `yaml:"user"`
	Cap  string `yaml:"cap"`
}

// LoadPlan reads and decodes a provisioning document. Unknown fields are
// rejected so a typo cannot silently drop an operation.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var plan Plan
	if err := decoder.Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}

	return &plan, nil
}
