package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"cssb/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// levelEnabler maps configured level names to the lowest enabled zap level.
func levelEnabler(level string) (zapcore.Level, bool) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, true
	case "normal":
		return zapcore.InfoLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func consoleEncoderConfig(stream *os.File) zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return ec
}

// Prepare returns our standard logger - configured zap logger for use by the program.
// Errors go to stderr, everything below error level to stdout.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {
	consoleCoreLP, consoleCoreHP := zapcore.NewNopCore(), zapcore.NewNopCore()
	if lvl, ok := levelEnabler(conf.ConsoleLogger.Level); ok {
		consoleCoreLP = zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig(os.Stdout)), zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool {
				return lvl <= l && l < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(newEncoder(consoleEncoderConfig(os.Stderr)), zapcore.Lock(os.Stderr),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool {
				return l >= zapcore.ErrorLevel
			}))
	}

	fileCore, newName, err := conf.FileLogger.fileCore()
	if err != nil {
		return nil, err
	}

	core := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller())
	if len(newName) != 0 {
		// log was redirected - we need to report this
		core.Warn("Log file was redirected to new location", zap.String("location", newName))
	}
	return core.Named(misc.GetAppName()), nil
}

// fileCore opens the log destination, falling back to a temporary file when
// the destination is not writable. Name of the fallback file is returned.
func (conf *LoggerConfig) fileCore() (zapcore.Core, string, error) {
	lvl, ok := levelEnabler(conf.Level)
	if !ok {
		return zapcore.NewNopCore(), "", nil
	}

	flags := os.O_CREATE | os.O_WRONLY
	if conf.Mode == "append" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	level := zap.NewAtomicLevelAt(lvl)

	if f, err := os.OpenFile(conf.Destination, flags, 0644); err == nil {
		return zapcore.NewCore(enc, zapcore.Lock(f), level), "", nil
	} else if f, err = os.CreateTemp("", misc.GetAppName()+".*.log"); err == nil {
		return zapcore.NewCore(enc, zapcore.Lock(f), level), f.Name(), nil
	} else {
		return nil, "", fmt.Errorf("unable to access file log destination (%s): %w", conf.Destination, err)
	}
}

// When logging error to console - do not output verbose message.

type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			// wrapped selector errors carry their chain in errorVerbose, keep console short
			e := f.Interface.(error)
			f.Interface = errors.New(e.Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
