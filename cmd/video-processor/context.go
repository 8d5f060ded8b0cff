package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ytget/video-processor/internal/config"
	"github.com/ytget/video-processor/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	loadOnce    sync.Once
	env         *config.Env
	profile     *config.Profile
	profilePath string
	loadErr     error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// ensureConfig reads the environment and the profile once. The profile path
// comes from --config, then VP_CONFIG, then the user config directory.
func (c *commandContext) ensureConfig(ctx context.Context) (*config.Profile, error) {
	c.loadOnce.Do(func() {
		env, err := config.LoadEnv(ctx)
		if err != nil {
			c.loadErr = err
			return
		}
		c.env = env

		path := c.resolveProfilePath(env)
		c.profilePath = path
		profile, err := config.Load(path)
		if err != nil {
			c.loadErr = fmt.Errorf("load profile: %w", err)
			return
		}
		profile.ApplyEnv(env)
		c.profile = profile
	})
	return c.profile, c.loadErr
}

// resolveProfilePath picks --config, then VP_CONFIG, then the default path.
// It returns "" only when the user config directory is unknown.
func (c *commandContext) resolveProfilePath(env *config.Env) string {
	if path := strings.TrimSpace(deref(c.configFlag)); path != "" {
		return path
	}
	if env != nil {
		if path := strings.TrimSpace(env.ConfigPath); path != "" {
			return path
		}
	}
	path, err := config.DefaultProfilePath()
	if err != nil {
		return ""
	}
	return path
}

func (c *commandContext) envValue() *config.Env {
	if c.env == nil {
		return &config.Env{}
	}
	return c.env
}

// logLevel prefers the flag over VP_LOG_LEVEL
func (c *commandContext) logLevel() string {
	if level := strings.TrimSpace(deref(c.logLevelFlag)); level != "" {
		return level
	}
	return c.envValue().LogLevel
}

// logger builds the process logger writing to out
func (c *commandContext) logger(out io.Writer) (*slog.Logger, error) {
	format := strings.TrimSpace(deref(c.logFormatFlag))
	if format == "" {
		format = c.envValue().LogFormat
	}
	if out == nil {
		out = os.Stderr
	}
	return logging.New(logging.Options{
		Level:  c.logLevel(),
		Format: format,
		Output: out,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
