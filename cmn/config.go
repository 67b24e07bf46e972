// Package cmn provides common types and utilities for the iomon daemon and its clients
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NVIDIA/iomon/cmn/cos"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindow   = 30
	DefaultSigma    = 3.0
	DefaultListen   = "127.0.0.1:9190"
	DefaultProcRoot = "/proc"
	DefaultSysBlock = "/sys/block"
)

type (
	Config struct {
		Disk    DiskConf    `json:"disk" yaml:"disk"`
		Tasks   TasksConf   `json:"tasks" yaml:"tasks"`
		Journal JournalConf `json:"journal" yaml:"journal"`
		Log     LogConf     `json:"log" yaml:"log"`
		Net     NetConf     `json:"net" yaml:"net"`
	}
	DiskConf struct {
		Device        string       `json:"device" yaml:"device"`       // e.g. "sda"; empty: pick one
		StatPath      string       `json:"stat_path" yaml:"stat_path"` // overrides <sys/block>/<device>/stat; may name /proc/diskstats
		EMMCPath      string       `json:"emmc_path" yaml:"emmc_path"` // ext_csd (debugfs); empty: look up for mmcblk devices
		SysBlock      string       `json:"sys_block" yaml:"sys_block"`
		Window        int          `json:"window" yaml:"window"`
		Sigma         float64      `json:"sigma" yaml:"sigma"`
		Interval      cos.Duration `json:"interval" yaml:"interval"`
		PublishPeriod cos.Duration `json:"publish_period" yaml:"publish_period"`
	}
	TasksConf struct {
		ProcRoot        string       `json:"proc_root" yaml:"proc_root"`
		Interval        cos.Duration `json:"interval" yaml:"interval"`
		PersistPath     string       `json:"persist_path" yaml:"persist_path"`
		PersistInterval cos.Duration `json:"persist_interval" yaml:"persist_interval"`
	}
	JournalConf struct {
		Path string       `json:"path" yaml:"path"` // ":memory:" or a file
		TTL  cos.Duration `json:"ttl" yaml:"ttl"`
	}
	LogConf struct {
		Dir      string `json:"dir" yaml:"dir"`
		Level    string `json:"level" yaml:"level"`
		ToStderr bool   `json:"to_stderr" yaml:"to_stderr"`
	}
	NetConf struct {
		Listen string `json:"listen" yaml:"listen"`
	}
)

// DefaultConfig returns a fully populated configuration
func DefaultConfig() *Config {
	c := newConfig()
	c.SetDefaults()
	return c
}

// knobs for which zero is a valid setting are preset here, so that only
// their omission selects the default
func newConfig() *Config {
	return &Config{Disk: DiskConf{Sigma: DefaultSigma}}
}

// SetDefaults fills in every zero-valued knob except the ones preset by newConfig
func (c *Config) SetDefaults() {
	d := &c.Disk
	if d.SysBlock == "" {
		d.SysBlock = DefaultSysBlock
	}
	if d.Window == 0 {
		d.Window = DefaultWindow
	}
	if d.Interval == 0 {
		d.Interval = cos.Duration(time.Second)
	}
	if d.PublishPeriod == 0 {
		d.PublishPeriod = cos.Duration(time.Minute)
	}
	t := &c.Tasks
	if t.ProcRoot == "" {
		t.ProcRoot = DefaultProcRoot
	}
	if t.Interval == 0 {
		t.Interval = cos.Duration(5 * time.Second)
	}
	if t.PersistPath == "" {
		t.PersistPath = filepath.Join(os.TempDir(), "iomon", "tasks.history")
	}
	if t.PersistInterval == 0 {
		t.PersistInterval = cos.Duration(5 * time.Minute)
	}
	if c.Journal.Path == "" {
		c.Journal.Path = ":memory:"
	}
	if c.Journal.TTL == 0 {
		c.Journal.TTL = cos.Duration(24 * time.Hour)
	}
	if c.Log.Level == "" {
		c.Log.Level = "3"
	}
	if c.Net.Listen == "" {
		c.Net.Listen = DefaultListen
	}
}

func (c *Config) Validate() error {
	if err := c.Disk.Validate(); err != nil {
		return err
	}
	if err := c.Tasks.Validate(); err != nil {
		return err
	}
	return c.Journal.Validate()
}

// StatFile resolves the sysfs stat file of the configured device
func (c *DiskConf) StatFile() string {
	if c.StatPath != "" {
		return c.StatPath
	}
	return filepath.Join(c.SysBlock, c.Device, "stat")
}

func (c *DiskConf) Validate() error {
	if c.Window < 2 {
		return fmt.Errorf("invalid disk.window %d (expecting >= 2)", c.Window)
	}
	if c.Sigma < 0 {
		return fmt.Errorf("invalid disk.sigma %.2f (expecting >= 0)", c.Sigma)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("invalid disk.interval %s", c.Interval)
	}
	if c.PublishPeriod < c.Interval {
		return fmt.Errorf("disk.publish_period %s is shorter than disk.interval %s", c.PublishPeriod, c.Interval)
	}
	return nil
}

func (c *TasksConf) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("invalid tasks.interval %s", c.Interval)
	}
	if c.PersistInterval <= 0 {
		return fmt.Errorf("invalid tasks.persist_interval %s", c.PersistInterval)
	}
	return nil
}

func (c *JournalConf) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("invalid journal.ttl %s", c.TTL)
	}
	return nil
}

// LoadConfig reads JSON or YAML (by extension), applies defaults, and validates
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", path)
	}
	config := newConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, config)
	default:
		err = cos.JSON.Unmarshal(b, config)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %q", path)
	}
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return config, nil
}
